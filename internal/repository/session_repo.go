package repository

import (
	"context"
	"errors"
	"time"

	"jobhive/internal/entity"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindWithUser(ctx context.Context, id string) (*entity.Session, error)
	ExtendExpiry(ctx context.Context, id string, expiresAt time.Time) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *entity.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// FindWithUser is a primary-key read on the token hash with the owning user
// preloaded. Expiry is not filtered here; the service decides what an
// expired row means.
func (r *sessionRepository) FindWithUser(ctx context.Context, id string) (*entity.Session, error) {
	var session entity.Session
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&session).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) ExtendExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("id = ?", id).
		Update("expires_at", expiresAt).
		Error
}

// DeleteByID removes a session by its token hash. Deleting an id with no
// row behind it is a success.
func (r *sessionRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Session{}).
		Error
}

func (r *sessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entity.Session{}).
		Error
}
