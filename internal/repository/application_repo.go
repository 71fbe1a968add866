package repository

import (
	"context"
	"errors"

	"jobhive/internal/entity"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.JobApplication) error
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID uint) (*entity.JobApplication, error)
	ListByApplicant(ctx context.Context, applicantID uint, search string) ([]entity.JobApplication, error)
	ListByEmployer(ctx context.Context, employerID uint, search string) ([]entity.JobApplication, error)
	FindForEmployer(ctx context.Context, id, employerID uint) (*entity.JobApplication, error)
	UpdateStatus(ctx context.Context, id uint, status entity.ApplicationStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *entity.JobApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID uint) (*entity.JobApplication, error) {
	var application entity.JobApplication
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&application).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &application, err
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID uint, search string) ([]entity.JobApplication, error) {
	query := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Employer").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC")
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var applications []entity.JobApplication
	if err := query.Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// ListByEmployer returns applications to the employer's own postings only.
func (r *applicationRepository) ListByEmployer(ctx context.Context, employerID uint, search string) ([]entity.JobApplication, error) {
	query := r.db.WithContext(ctx).
		Preload("Job").
		Joins("JOIN jobs ON jobs.id = job_applications.job_id AND jobs.deleted_at IS NULL").
		Where("jobs.employer_id = ?", employerID).
		Order("job_applications.created_at DESC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("job_applications.name LIKE ? OR jobs.title LIKE ?", pattern, pattern)
	}

	var applications []entity.JobApplication
	if err := query.Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) FindForEmployer(ctx context.Context, id, employerID uint) (*entity.JobApplication, error) {
	var application entity.JobApplication
	err := r.db.WithContext(ctx).
		Preload("Job").
		Joins("JOIN jobs ON jobs.id = job_applications.job_id AND jobs.deleted_at IS NULL").
		Where("job_applications.id = ? AND jobs.employer_id = ?", id, employerID).
		First(&application).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &application, err
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status entity.ApplicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.JobApplication{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}
