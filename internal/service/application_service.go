package service

import (
	"context"
	"strings"

	"jobhive/internal/entity"
	"jobhive/internal/repository"
)

type ApplicationInput struct {
	JobID       uint
	Name        string
	Email       string
	PhoneNumber string
	CoverLetter string
	ResumeURL   string
}

type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
}

func NewApplicationService(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs}
}

// Apply files one application per applicant per job.
func (s *ApplicationService) Apply(ctx context.Context, user *entity.User, input ApplicationInput) (*entity.JobApplication, error) {
	if user.Role != entity.UserRoleApplicant {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.ResumeURL) == "" {
		return nil, ErrInvalidInput
	}

	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	existing, err := s.applications.FindByJobAndApplicant(ctx, input.JobID, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	application := &entity.JobApplication{
		JobID:       input.JobID,
		ApplicantID: user.ID,
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		CoverLetter: input.CoverLetter,
		ResumeURL:   input.ResumeURL,
		Status:      entity.ApplicationApplied,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantID uint, search string) ([]entity.JobApplication, error) {
	return s.applications.ListByApplicant(ctx, applicantID, strings.TrimSpace(search))
}

// ListCandidates returns applications to the employer's own postings.
func (s *ApplicationService) ListCandidates(ctx context.Context, employerID uint, search string) ([]entity.JobApplication, error) {
	return s.applications.ListByEmployer(ctx, employerID, strings.TrimSpace(search))
}

func (s *ApplicationService) GetCandidate(ctx context.Context, employerID, applicationID uint) (*entity.JobApplication, error) {
	application, err := s.applications.FindForEmployer(ctx, applicationID, employerID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	return application, nil
}

// UpdateStatus moves a candidate through the pipeline. Ownership is checked
// by scoping the lookup to the employer's jobs.
func (s *ApplicationService) UpdateStatus(ctx context.Context, employerID, applicationID uint, status entity.ApplicationStatus) error {
	if !status.Valid() {
		return ErrInvalidInput
	}

	application, err := s.applications.FindForEmployer(ctx, applicationID, employerID)
	if err != nil {
		return err
	}
	if application == nil {
		return ErrApplicationNotFound
	}
	return s.applications.UpdateStatus(ctx, applicationID, status)
}
