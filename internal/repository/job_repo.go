package repository

import (
	"context"
	"errors"

	"jobhive/internal/entity"

	"gorm.io/gorm"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	FindByID(ctx context.Context, id uint) (*entity.Job, error)
	FindWithEmployer(ctx context.Context, id uint) (*entity.Job, error)
	ListByEmployer(ctx context.Context, employerID uint) ([]entity.Job, error)
	Search(ctx context.Context, keyword string, limit, offset int) ([]entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	var job entity.Job
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&job).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *jobRepository) FindWithEmployer(ctx context.Context, id uint) (*entity.Job, error) {
	var job entity.Job
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Where("id = ?", id).
		First(&job).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *jobRepository) ListByEmployer(ctx context.Context, employerID uint) ([]entity.Job, error) {
	var jobs []entity.Job
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Search lists live postings newest first, optionally filtered by a keyword
// against title, tags and location.
func (r *jobRepository) Search(ctx context.Context, keyword string, limit, offset int) ([]entity.Job, error) {
	query := r.db.WithContext(ctx).
		Preload("Employer").
		Order("created_at DESC")
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where(
			"title LIKE ? OR tags LIKE ? OR location LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var jobs []entity.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Job{}).
		Error
}
