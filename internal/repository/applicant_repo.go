package repository

import (
	"context"
	"errors"

	"jobhive/internal/entity"

	"gorm.io/gorm"
)

type ApplicantRepository interface {
	Create(ctx context.Context, applicant *entity.Applicant) error
	FindByID(ctx context.Context, id uint) (*entity.Applicant, error)
	Update(ctx context.Context, applicant *entity.Applicant) error
}

type applicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

func (r *applicantRepository) Create(ctx context.Context, applicant *entity.Applicant) error {
	return r.db.WithContext(ctx).Create(applicant).Error
}

func (r *applicantRepository) FindByID(ctx context.Context, id uint) (*entity.Applicant, error) {
	var applicant entity.Applicant
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&applicant).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &applicant, err
}

func (r *applicantRepository) Update(ctx context.Context, applicant *entity.Applicant) error {
	return r.db.WithContext(ctx).Save(applicant).Error
}
