package entity

import "time"

type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "applied"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationApplied, ApplicationShortlisted, ApplicationInterviewed,
		ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

// JobApplication carries a contact snapshot alongside the applicant link, so
// an employer sees what was submitted even after the profile changes.
type JobApplication struct {
	ID          uint      `gorm:"primaryKey"`
	JobID       uint      `gorm:"not null;index:idx_job_applicant,unique"`
	Job         Job       `gorm:"constraint:OnDelete:CASCADE"`
	ApplicantID uint      `gorm:"not null;index:idx_job_applicant,unique"`
	Applicant   Applicant `gorm:"constraint:OnDelete:CASCADE"`

	Name        string `gorm:"type:varchar(255);not null"`
	Email       string `gorm:"type:varchar(255);not null"`
	PhoneNumber string `gorm:"type:varchar(255);not null"`
	CoverLetter string `gorm:"type:text;not null"`
	ResumeURL   string `gorm:"type:text;not null"`

	Status ApplicationStatus `gorm:"type:varchar(20);default:'applied';not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
