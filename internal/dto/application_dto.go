package dto

import (
	"time"

	"jobhive/internal/entity"
)

type ApplyRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,max=255"`
	CoverLetter string `json:"cover_letter" validate:"required"`
	ResumeURL   string `json:"resume_url" validate:"required,url"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=applied shortlisted interviewed rejected hired"`
}

type ApplicationResponse struct {
	ID          uint      `json:"id"`
	JobID       uint      `json:"job_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	CoverLetter string    `json:"cover_letter"`
	ResumeURL   string    `json:"resume_url"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`

	Job *JobResponse `json:"job,omitempty"`
}

func ApplicationResponseFromEntity(application *entity.JobApplication) ApplicationResponse {
	response := ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		Name:        application.Name,
		Email:       application.Email,
		PhoneNumber: application.PhoneNumber,
		CoverLetter: application.CoverLetter,
		ResumeURL:   application.ResumeURL,
		Status:      string(application.Status),
		AppliedAt:   application.CreatedAt,
	}
	if application.Job.ID != 0 {
		job := JobResponseFromEntity(&application.Job)
		response.Job = &job
	}
	return response
}

func ApplicationResponsesFromEntities(applications []entity.JobApplication) []ApplicationResponse {
	responses := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, ApplicationResponseFromEntity(&applications[i]))
	}
	return responses
}
