package dto

import (
	"time"

	"jobhive/internal/entity"
)

type EmployerProfileRequest struct {
	Name                *string `json:"name" validate:"omitempty,max=255"`
	Description         *string `json:"description"`
	AvatarURL           *string `json:"avatar_url" validate:"omitempty,url"`
	BannerImageURL      *string `json:"banner_image_url" validate:"omitempty,url"`
	OrganizationType    *string `json:"organization_type" validate:"omitempty,max=100"`
	TeamSize            *string `json:"team_size" validate:"omitempty,max=50"`
	YearOfEstablishment *int    `json:"year_of_establishment" validate:"omitempty,min=1800,max=2100"`
	WebsiteURL          *string `json:"website_url" validate:"omitempty,url"`
	Location            *string `json:"location" validate:"omitempty,max=255"`
}

type EmployerProfileResponse struct {
	ID                  uint      `json:"id"`
	Name                *string   `json:"name,omitempty"`
	Description         *string   `json:"description,omitempty"`
	AvatarURL           *string   `json:"avatar_url,omitempty"`
	BannerImageURL      *string   `json:"banner_image_url,omitempty"`
	OrganizationType    *string   `json:"organization_type,omitempty"`
	TeamSize            *string   `json:"team_size,omitempty"`
	YearOfEstablishment *int      `json:"year_of_establishment,omitempty"`
	WebsiteURL          *string   `json:"website_url,omitempty"`
	Location            *string   `json:"location,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func EmployerProfileFromEntity(employer *entity.Employer) EmployerProfileResponse {
	return EmployerProfileResponse{
		ID:                  employer.ID,
		Name:                employer.Name,
		Description:         employer.Description,
		AvatarURL:           employer.AvatarURL,
		BannerImageURL:      employer.BannerImageURL,
		OrganizationType:    employer.OrganizationType,
		TeamSize:            employer.TeamSize,
		YearOfEstablishment: employer.YearOfEstablishment,
		WebsiteURL:          employer.WebsiteURL,
		Location:            employer.Location,
		CreatedAt:           employer.CreatedAt,
		UpdatedAt:           employer.UpdatedAt,
	}
}

type ApplicantProfileRequest struct {
	Biography     *string    `json:"biography"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Nationality   *string    `json:"nationality" validate:"omitempty,max=100"`
	MaritalStatus *string    `json:"marital_status" validate:"omitempty,oneof=single married divorced"`
	Gender        *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	Education     *string    `json:"education" validate:"omitempty,oneof=none 'high school' undergraduate masters phd"`
	Experience    *string    `json:"experience"`
	WebsiteURL    *string    `json:"website_url" validate:"omitempty,url"`
	Location      *string    `json:"location" validate:"omitempty,max=255"`
}

type ApplicantProfileResponse struct {
	ID            uint       `json:"id"`
	Biography     *string    `json:"biography,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Nationality   *string    `json:"nationality,omitempty"`
	MaritalStatus *string    `json:"marital_status,omitempty"`
	Gender        *string    `json:"gender,omitempty"`
	Education     *string    `json:"education,omitempty"`
	Experience    *string    `json:"experience,omitempty"`
	WebsiteURL    *string    `json:"website_url,omitempty"`
	Location      *string    `json:"location,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ApplicantProfileFromEntity(applicant *entity.Applicant) ApplicantProfileResponse {
	response := ApplicantProfileResponse{
		ID:          applicant.ID,
		Biography:   applicant.Biography,
		DateOfBirth: applicant.DateOfBirth,
		Nationality: applicant.Nationality,
		Education:   applicant.Education,
		Experience:  applicant.Experience,
		WebsiteURL:  applicant.WebsiteURL,
		Location:    applicant.Location,
		CreatedAt:   applicant.CreatedAt,
		UpdatedAt:   applicant.UpdatedAt,
	}
	if applicant.MaritalStatus != nil {
		value := string(*applicant.MaritalStatus)
		response.MaritalStatus = &value
	}
	if applicant.Gender != nil {
		value := string(*applicant.Gender)
		response.Gender = &value
	}
	return response
}

type AccountUpdateRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=255"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,url"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
