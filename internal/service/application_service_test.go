package service

import (
	"context"
	"testing"

	"jobhive/internal/entity"
	"jobhive/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApplicationService(t *testing.T, db *gorm.DB) *ApplicationService {
	t.Helper()
	return NewApplicationService(
		repository.NewApplicationRepository(db),
		repository.NewJobRepository(db),
	)
}

func createTestJob(t *testing.T, db *gorm.DB, employerID uint, title string) *entity.Job {
	t.Helper()
	require.NoError(t, db.Create(&entity.Employer{ID: employerID}).Error)
	job := &entity.Job{Title: title, EmployerID: employerID, Description: "desc"}
	require.NoError(t, db.Create(job).Error)
	return job
}

func applyInput(jobID uint) ApplicationInput {
	return ApplicationInput{
		JobID:       jobID,
		Name:        "Alice Applicant",
		Email:       "alice@example.com",
		PhoneNumber: "+1-555-0100",
		CoverLetter: "Hello",
		ResumeURL:   "https://example.com/cv.pdf",
	}
}

func TestApply(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	employer := createTestUser(t, db, "acme", entity.UserRoleEmployer)
	applicant := createTestUser(t, db, "alice", entity.UserRoleApplicant)
	require.NoError(t, db.Create(&entity.Applicant{ID: applicant.ID}).Error)
	job := createTestJob(t, db, employer.ID, "Go Developer")
	ctx := context.Background()

	application, err := svc.Apply(ctx, applicant, applyInput(job.ID))
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationApplied, application.Status)
	assert.Equal(t, applicant.ID, application.ApplicantID)

	// One application per job per applicant.
	_, err = svc.Apply(ctx, applicant, applyInput(job.ID))
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestApplyRejectsNonApplicants(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	employer := createTestUser(t, db, "acme", entity.UserRoleEmployer)
	job := createTestJob(t, db, employer.ID, "Go Developer")

	_, err := svc.Apply(context.Background(), employer, applyInput(job.ID))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplyUnknownJob(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	applicant := createTestUser(t, db, "alice", entity.UserRoleApplicant)

	_, err := svc.Apply(context.Background(), applicant, applyInput(9999))
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestCandidatesScopedToEmployer(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	ctx := context.Background()

	employerA := createTestUser(t, db, "acme", entity.UserRoleEmployer)
	employerB := createTestUser(t, db, "globex", entity.UserRoleEmployer)
	applicant := createTestUser(t, db, "alice", entity.UserRoleApplicant)
	require.NoError(t, db.Create(&entity.Applicant{ID: applicant.ID}).Error)

	jobA := createTestJob(t, db, employerA.ID, "Backend Engineer")
	jobB := createTestJob(t, db, employerB.ID, "Frontend Engineer")

	_, err := svc.Apply(ctx, applicant, applyInput(jobA.ID))
	require.NoError(t, err)
	_, err = svc.Apply(ctx, applicant, applyInput(jobB.ID))
	require.NoError(t, err)

	candidates, err := svc.ListCandidates(ctx, employerA.ID, "")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, jobA.ID, candidates[0].JobID)

	// Search matches either candidate name or job title.
	candidates, err = svc.ListCandidates(ctx, employerA.ID, "Backend")
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
	candidates, err = svc.ListCandidates(ctx, employerA.ID, "no-such-thing")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestUpdateStatusEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	ctx := context.Background()

	employerA := createTestUser(t, db, "acme", entity.UserRoleEmployer)
	employerB := createTestUser(t, db, "globex", entity.UserRoleEmployer)
	require.NoError(t, db.Create(&entity.Employer{ID: employerB.ID}).Error)
	applicant := createTestUser(t, db, "alice", entity.UserRoleApplicant)
	require.NoError(t, db.Create(&entity.Applicant{ID: applicant.ID}).Error)
	job := createTestJob(t, db, employerA.ID, "Backend Engineer")

	application, err := svc.Apply(ctx, applicant, applyInput(job.ID))
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, employerB.ID, application.ID, entity.ApplicationShortlisted)
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	require.NoError(t, svc.UpdateStatus(ctx, employerA.ID, application.ID, entity.ApplicationShortlisted))
	updated, err := svc.GetCandidate(ctx, employerA.ID, application.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationShortlisted, updated.Status)

	err = svc.UpdateStatus(ctx, employerA.ID, application.ID, entity.ApplicationStatus("bogus"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByApplicant(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	ctx := context.Background()

	employer := createTestUser(t, db, "acme", entity.UserRoleEmployer)
	applicant := createTestUser(t, db, "alice", entity.UserRoleApplicant)
	require.NoError(t, db.Create(&entity.Applicant{ID: applicant.ID}).Error)
	job := createTestJob(t, db, employer.ID, "Backend Engineer")

	_, err := svc.Apply(ctx, applicant, applyInput(job.ID))
	require.NoError(t, err)

	applications, err := svc.ListByApplicant(ctx, applicant.ID, "")
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, "Backend Engineer", applications[0].Job.Title)
}
