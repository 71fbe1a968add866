package entity

import "time"

// Session is keyed by the sha256 hex of its bearer token, so validating a
// cookie is a single primary-key read. The raw token never reaches storage.
type Session struct {
	ID     string `gorm:"type:varchar(64);primaryKey"`
	UserID uint   `gorm:"not null;index"`
	User   User   `gorm:"constraint:OnDelete:CASCADE"`

	UserAgent string `gorm:"type:text;not null"`
	IP        string `gorm:"type:varchar(45);not null"`

	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
