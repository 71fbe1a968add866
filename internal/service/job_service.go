package service

import (
	"context"
	"strings"
	"time"

	"jobhive/internal/entity"
	"jobhive/internal/repository"
)

type JobInput struct {
	Title          string
	Description    string
	Tags           *string
	MinSalary      *int
	MaxSalary      *int
	SalaryCurrency *string
	SalaryPeriod   *string
	Location       *string
	JobType        *entity.JobType
	WorkType       *entity.WorkType
	JobLevel       *string
	Experience     *string
	MinEducation   *string
	IsFeatured     bool
	ExpiresAt      *time.Time
}

type JobService struct {
	jobs repository.JobRepository
}

func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

func (s *JobService) Create(ctx context.Context, employerID uint, input JobInput) (*entity.Job, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrInvalidInput
	}

	job := &entity.Job{EmployerID: employerID}
	applyJobInput(job, input)
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Search is the public board listing, newest first.
func (s *JobService) Search(ctx context.Context, keyword string, limit, offset int) ([]entity.Job, error) {
	return s.jobs.Search(ctx, strings.TrimSpace(keyword), limit, offset)
}

func (s *JobService) GetWithEmployer(ctx context.Context, id uint) (*entity.Job, error) {
	job, err := s.jobs.FindWithEmployer(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (s *JobService) ListByEmployer(ctx context.Context, employerID uint) ([]entity.Job, error) {
	return s.jobs.ListByEmployer(ctx, employerID)
}

// Update rewrites a posting. Ownership is enforced here, not in the
// handler: a job belonging to another employer reads as not found.
func (s *JobService) Update(ctx context.Context, employerID, jobID uint, input JobInput) (*entity.Job, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrInvalidInput
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.EmployerID != employerID {
		return nil, ErrJobNotFound
	}

	applyJobInput(job, input)
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, employerID, jobID uint) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil || job.EmployerID != employerID {
		return ErrJobNotFound
	}
	return s.jobs.Delete(ctx, jobID)
}

func applyJobInput(job *entity.Job, input JobInput) {
	job.Title = input.Title
	job.Description = input.Description
	job.Tags = input.Tags
	job.MinSalary = input.MinSalary
	job.MaxSalary = input.MaxSalary
	job.SalaryCurrency = input.SalaryCurrency
	job.SalaryPeriod = input.SalaryPeriod
	job.Location = input.Location
	job.JobType = input.JobType
	job.WorkType = input.WorkType
	job.JobLevel = input.JobLevel
	job.Experience = input.Experience
	job.MinEducation = input.MinEducation
	job.IsFeatured = input.IsFeatured
	job.ExpiresAt = input.ExpiresAt
}
