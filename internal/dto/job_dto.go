package dto

import (
	"time"

	"jobhive/internal/entity"
)

type JobRequest struct {
	Title          string     `json:"title" validate:"required,max=255"`
	Description    string     `json:"description" validate:"required"`
	Tags           *string    `json:"tags"`
	MinSalary      *int       `json:"min_salary" validate:"omitempty,min=0"`
	MaxSalary      *int       `json:"max_salary" validate:"omitempty,min=0"`
	SalaryCurrency *string    `json:"salary_currency" validate:"omitempty,oneof=USD EUR GBP CAD AUD JPY INR NPR"`
	SalaryPeriod   *string    `json:"salary_period" validate:"omitempty,oneof=hourly monthly yearly"`
	Location       *string    `json:"location" validate:"omitempty,max=255"`
	JobType        *string    `json:"job_type" validate:"omitempty,oneof=remote hybrid on-site"`
	WorkType       *string    `json:"work_type" validate:"omitempty,oneof=full-time part-time contract temporary freelance"`
	JobLevel       *string    `json:"job_level" validate:"omitempty,max=50"`
	Experience     *string    `json:"experience"`
	MinEducation   *string    `json:"min_education" validate:"omitempty,oneof=none 'high school' undergraduate masters phd"`
	IsFeatured     bool       `json:"is_featured"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

type JobResponse struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Tags           *string    `json:"tags,omitempty"`
	MinSalary      *int       `json:"min_salary,omitempty"`
	MaxSalary      *int       `json:"max_salary,omitempty"`
	SalaryCurrency *string    `json:"salary_currency,omitempty"`
	SalaryPeriod   *string    `json:"salary_period,omitempty"`
	Location       *string    `json:"location,omitempty"`
	JobType        *string    `json:"job_type,omitempty"`
	WorkType       *string    `json:"work_type,omitempty"`
	JobLevel       *string    `json:"job_level,omitempty"`
	Experience     *string    `json:"experience,omitempty"`
	MinEducation   *string    `json:"min_education,omitempty"`
	IsFeatured     bool       `json:"is_featured"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Employer *EmployerSummary `json:"employer,omitempty"`
}

type EmployerSummary struct {
	ID        uint    `json:"id"`
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Location  *string `json:"location,omitempty"`
}

func JobResponseFromEntity(job *entity.Job) JobResponse {
	response := JobResponse{
		ID:             job.ID,
		Title:          job.Title,
		Description:    job.Description,
		Tags:           job.Tags,
		MinSalary:      job.MinSalary,
		MaxSalary:      job.MaxSalary,
		SalaryCurrency: job.SalaryCurrency,
		SalaryPeriod:   job.SalaryPeriod,
		Location:       job.Location,
		JobLevel:       job.JobLevel,
		Experience:     job.Experience,
		MinEducation:   job.MinEducation,
		IsFeatured:     job.IsFeatured,
		ExpiresAt:      job.ExpiresAt,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
	if job.JobType != nil {
		value := string(*job.JobType)
		response.JobType = &value
	}
	if job.WorkType != nil {
		value := string(*job.WorkType)
		response.WorkType = &value
	}
	if job.Employer.ID != 0 {
		response.Employer = &EmployerSummary{
			ID:        job.Employer.ID,
			Name:      job.Employer.Name,
			AvatarURL: job.Employer.AvatarURL,
			Location:  job.Employer.Location,
		}
	}
	return response
}

func JobResponsesFromEntities(jobs []entity.Job) []JobResponse {
	responses := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, JobResponseFromEntity(&jobs[i]))
	}
	return responses
}
