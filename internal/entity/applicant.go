package entity

import (
	"time"

	"gorm.io/gorm"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Applicant extends a user with role applicant; it shares the user's id.
type Applicant struct {
	ID uint `gorm:"primaryKey"`

	Biography     *string        `gorm:"type:text"`
	DateOfBirth   *time.Time     `gorm:"type:date"`
	Nationality   *string        `gorm:"type:varchar(100)"`
	MaritalStatus *MaritalStatus `gorm:"type:varchar(20)"`
	Gender        *Gender        `gorm:"type:varchar(10)"`
	Education     *string        `gorm:"type:varchar(50)"`
	Experience    *string        `gorm:"type:text"`
	WebsiteURL    *string        `gorm:"type:varchar(255)"`
	Location      *string        `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
