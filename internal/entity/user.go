package entity

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleApplicant UserRole = "applicant"
	UserRoleEmployer  UserRole = "employer"
)

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"type:varchar(255);not null"`
	UserName     string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string   `gorm:"type:text;not null"`
	Role         UserRole `gorm:"type:varchar(20);default:'applicant';not null"`
	PhoneNumber  *string  `gorm:"type:varchar(255)"`
	AvatarURL    *string  `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Sessions []Session
}
