package service

import (
	"context"
	"strings"
	"time"

	"jobhive/internal/entity"
	"jobhive/internal/repository"
)

type EmployerProfileInput struct {
	Name                *string
	Description         *string
	AvatarURL           *string
	BannerImageURL      *string
	OrganizationType    *string
	TeamSize            *string
	YearOfEstablishment *int
	WebsiteURL          *string
	Location            *string
}

type ApplicantProfileInput struct {
	Biography     *string
	DateOfBirth   *time.Time
	Nationality   *string
	MaritalStatus *entity.MaritalStatus
	Gender        *entity.Gender
	Education     *string
	Experience    *string
	WebsiteURL    *string
	Location      *string
}

type AccountInput struct {
	Name        string
	PhoneNumber *string
	AvatarURL   *string
}

type ProfileService struct {
	users        repository.UserRepository
	employers    repository.EmployerRepository
	applicants   repository.ApplicantRepository
	sessions     *SessionService
	passwordHash PasswordHasher
}

func NewProfileService(
	users repository.UserRepository,
	employers repository.EmployerRepository,
	applicants repository.ApplicantRepository,
	sessions *SessionService,
	passwordHash PasswordHasher,
) *ProfileService {
	return &ProfileService{
		users:        users,
		employers:    employers,
		applicants:   applicants,
		sessions:     sessions,
		passwordHash: passwordHash,
	}
}

func (s *ProfileService) GetEmployer(ctx context.Context, userID uint) (*entity.Employer, error) {
	employer, err := s.employers.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrProfileNotFound
	}
	return employer, nil
}

func (s *ProfileService) UpdateEmployer(ctx context.Context, userID uint, input EmployerProfileInput) (*entity.Employer, error) {
	employer, err := s.employers.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrProfileNotFound
	}

	employer.Name = input.Name
	employer.Description = input.Description
	employer.AvatarURL = input.AvatarURL
	employer.BannerImageURL = input.BannerImageURL
	employer.OrganizationType = input.OrganizationType
	employer.TeamSize = input.TeamSize
	employer.YearOfEstablishment = input.YearOfEstablishment
	employer.WebsiteURL = input.WebsiteURL
	employer.Location = input.Location

	if err := s.employers.Update(ctx, employer); err != nil {
		return nil, err
	}
	return employer, nil
}

func (s *ProfileService) GetApplicant(ctx context.Context, userID uint) (*entity.Applicant, error) {
	applicant, err := s.applicants.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrProfileNotFound
	}
	return applicant, nil
}

func (s *ProfileService) UpdateApplicant(ctx context.Context, userID uint, input ApplicantProfileInput) (*entity.Applicant, error) {
	applicant, err := s.applicants.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrProfileNotFound
	}

	applicant.Biography = input.Biography
	applicant.DateOfBirth = input.DateOfBirth
	applicant.Nationality = input.Nationality
	applicant.MaritalStatus = input.MaritalStatus
	applicant.Gender = input.Gender
	applicant.Education = input.Education
	applicant.Experience = input.Experience
	applicant.WebsiteURL = input.WebsiteURL
	applicant.Location = input.Location

	if err := s.applicants.Update(ctx, applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}

func (s *ProfileService) UpdateAccount(ctx context.Context, userID uint, input AccountInput) (*entity.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Name = input.Name
	user.PhoneNumber = input.PhoneNumber
	user.AvatarURL = input.AvatarURL
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before rehashing. All
// sessions are evicted afterwards; the user re-authenticates everywhere.
func (s *ProfileService) ChangePassword(ctx context.Context, userID uint, current, updated string) error {
	if strings.TrimSpace(updated) == "" {
		return ErrInvalidInput
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !s.passwordHash.Verify(user.PasswordHash, current) {
		return ErrInvalidCredentials
	}

	hash, err := s.passwordHash.Hash(updated)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	return s.sessions.InvalidateAllForUser(ctx, userID)
}
