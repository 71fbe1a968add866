package entity

import (
	"time"

	"gorm.io/gorm"
)

// Employer extends a user with role employer; it shares the user's id.
type Employer struct {
	ID uint `gorm:"primaryKey"`

	Name                *string `gorm:"type:varchar(255)"`
	Description         *string `gorm:"type:text"`
	AvatarURL           *string `gorm:"type:text"`
	BannerImageURL      *string `gorm:"type:text"`
	OrganizationType    *string `gorm:"type:varchar(100)"`
	TeamSize            *string `gorm:"type:varchar(50)"`
	YearOfEstablishment *int
	WebsiteURL          *string `gorm:"type:varchar(255)"`
	Location            *string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
