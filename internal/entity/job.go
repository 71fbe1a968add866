package entity

import (
	"time"

	"gorm.io/gorm"
)

type JobType string

const (
	JobTypeRemote JobType = "remote"
	JobTypeHybrid JobType = "hybrid"
	JobTypeOnSite JobType = "on-site"
)

type WorkType string

const (
	WorkTypeFullTime  WorkType = "full-time"
	WorkTypePartTime  WorkType = "part-time"
	WorkTypeContract  WorkType = "contract"
	WorkTypeTemporary WorkType = "temporary"
	WorkTypeFreelance WorkType = "freelance"
)

type Job struct {
	ID         uint     `gorm:"primaryKey"`
	Title      string   `gorm:"type:varchar(255);not null"`
	EmployerID uint     `gorm:"not null;index"`
	Employer   Employer `gorm:"constraint:OnDelete:CASCADE"`

	Description    string    `gorm:"type:text;not null"`
	Tags           *string   `gorm:"type:text"`
	MinSalary      *int
	MaxSalary      *int
	SalaryCurrency *string   `gorm:"type:varchar(10)"`
	SalaryPeriod   *string   `gorm:"type:varchar(20)"`
	Location       *string   `gorm:"type:varchar(255)"`
	JobType        *JobType  `gorm:"type:varchar(20)"`
	WorkType       *WorkType `gorm:"type:varchar(20)"`
	JobLevel       *string   `gorm:"type:varchar(50)"`
	Experience     *string   `gorm:"type:text"`
	MinEducation   *string   `gorm:"type:varchar(50)"`
	IsFeatured     bool      `gorm:"default:false;not null"`
	ExpiresAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
