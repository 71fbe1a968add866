package repository

import (
	"context"
	"errors"

	"jobhive/internal/entity"

	"gorm.io/gorm"
)

type EmployerRepository interface {
	Create(ctx context.Context, employer *entity.Employer) error
	FindByID(ctx context.Context, id uint) (*entity.Employer, error)
	Update(ctx context.Context, employer *entity.Employer) error
}

type employerRepository struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &employerRepository{db: db}
}

func (r *employerRepository) Create(ctx context.Context, employer *entity.Employer) error {
	return r.db.WithContext(ctx).Create(employer).Error
}

func (r *employerRepository) FindByID(ctx context.Context, id uint) (*entity.Employer, error) {
	var employer entity.Employer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&employer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employer, err
}

func (r *employerRepository) Update(ctx context.Context, employer *entity.Employer) error {
	return r.db.WithContext(ctx).Save(employer).Error
}
