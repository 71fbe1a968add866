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

func newAuthService(t *testing.T, db *gorm.DB) (*AuthService, *SessionService) {
	t.Helper()
	sessions := newSessionService(t, db, newFakeClock())
	auth := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewEmployerRepository(db),
		repository.NewApplicantRepository(db),
		sessions,
		repository.NewSecurityLogRepository(db),
		BcryptPasswordHasher{Cost: 4},
	)
	return auth, sessions
}

func registerInput(userName string, role entity.UserRole) RegisterInput {
	return RegisterInput{
		Name:     "Test " + userName,
		UserName: userName,
		Email:    userName + "@example.com",
		Password: "hunter2hunter2",
		Role:     role,
	}
}

func TestRegisterApplicantEndToEnd(t *testing.T) {
	db := newTestDB(t)
	auth, sessions := newAuthService(t, db)
	ctx := context.Background()

	user, token, err := auth.Register(ctx, registerInput("alice", entity.UserRoleApplicant), SessionMeta{IP: "203.0.113.9"})
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEmpty(t, token)
	assert.Equal(t, entity.UserRoleApplicant, user.Role)

	// Registration logs straight in: the issued token validates.
	authUser, _ := sessions.Validate(ctx, token)
	require.NotNil(t, authUser)
	assert.Equal(t, user.ID, authUser.User.ID)
	assert.Equal(t, entity.UserRoleApplicant, authUser.User.Role)

	var applicant entity.Applicant
	require.NoError(t, db.First(&applicant, user.ID).Error, "applicant profile row must exist")
}

func TestRegisterEmployerCreatesProfileRow(t *testing.T) {
	db := newTestDB(t)
	auth, _ := newAuthService(t, db)

	user, _, err := auth.Register(context.Background(), registerInput("acme", entity.UserRoleEmployer), SessionMeta{})
	require.NoError(t, err)

	var employer entity.Employer
	require.NoError(t, db.First(&employer, user.ID).Error)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	auth, _ := newAuthService(t, db)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, registerInput("bob", entity.UserRoleApplicant), SessionMeta{})
	require.NoError(t, err)

	dupEmail := registerInput("bobby", entity.UserRoleApplicant)
	dupEmail.Email = "bob@example.com"
	_, _, err = auth.Register(ctx, dupEmail, SessionMeta{})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)

	dupName := registerInput("bob", entity.UserRoleApplicant)
	dupName.Email = "other@example.com"
	_, _, err = auth.Register(ctx, dupName, SessionMeta{})
	assert.ErrorIs(t, err, ErrUserNameTaken)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	db := newTestDB(t)
	auth, _ := newAuthService(t, db)

	_, _, err := auth.Register(context.Background(), registerInput("root", entity.UserRoleAdmin), SessionMeta{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginWrongPasswordLeavesNoSession(t *testing.T) {
	db := newTestDB(t)
	auth, _ := newAuthService(t, db)
	ctx := context.Background()

	user, registerToken, err := auth.Register(ctx, registerInput("carol", entity.UserRoleApplicant), SessionMeta{})
	require.NoError(t, err)
	require.NotEmpty(t, registerToken)

	_, _, err = auth.Login(ctx, LoginInput{Email: "carol@example.com", Password: "wrong-password"}, SessionMeta{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.EqualValues(t, 1, sessionCount(t, db, user.ID), "failed login must not touch sessions")
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	auth, _ := newAuthService(t, db)

	_, _, err := auth.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever"}, SessionMeta{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginEvictsPreviousSession(t *testing.T) {
	db := newTestDB(t)
	auth, sessions := newAuthService(t, db)
	ctx := context.Background()

	user, firstToken, err := auth.Register(ctx, registerInput("dave", entity.UserRoleEmployer), SessionMeta{})
	require.NoError(t, err)

	loggedIn, secondToken, err := auth.Login(ctx, LoginInput{Email: "dave@example.com", Password: "hunter2hunter2"}, SessionMeta{})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	authUser, _ := sessions.Validate(ctx, firstToken)
	assert.Nil(t, authUser, "registration session must be evicted by the login")
	authUser, _ = sessions.Validate(ctx, secondToken)
	require.NotNil(t, authUser)
}

func TestLoginNormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	auth, _ := newAuthService(t, db)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, registerInput("erin", entity.UserRoleApplicant), SessionMeta{})
	require.NoError(t, err)

	user, _, err := auth.Login(ctx, LoginInput{Email: "  Erin@Example.COM ", Password: "hunter2hunter2"}, SessionMeta{})
	require.NoError(t, err)
	assert.Equal(t, "erin@example.com", user.Email)
}

func TestLogout(t *testing.T) {
	db := newTestDB(t)
	auth, sessions := newAuthService(t, db)
	ctx := context.Background()

	_, token, err := auth.Register(ctx, registerInput("frank", entity.UserRoleApplicant), SessionMeta{})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, token, "203.0.113.1"))
	authUser, _ := sessions.Validate(ctx, token)
	assert.Nil(t, authUser)

	// Without a cookie there is nothing to do.
	require.NoError(t, auth.Logout(ctx, "", "203.0.113.1"))
	// An already-dead token is still a clean logout.
	require.NoError(t, auth.Logout(ctx, token, "203.0.113.1"))
}

func TestSecurityLogWrittenOnLoginFailure(t *testing.T) {
	db := newTestDB(t)
	auth, _ := newAuthService(t, db)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, registerInput("grace", entity.UserRoleApplicant), SessionMeta{})
	require.NoError(t, err)
	_, _, err = auth.Login(ctx, LoginInput{Email: "grace@example.com", Password: "nope-nope"}, SessionMeta{IP: "198.51.100.5"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	var count int64
	require.NoError(t, db.Model(&entity.SecurityLog{}).
		Where("action = ?", entity.LoginFailed).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAdminRevokeUserSessions(t *testing.T) {
	db := newTestDB(t)
	auth, sessions := newAuthService(t, db)
	ctx := context.Background()

	user, token, err := auth.Register(ctx, registerInput("heidi", entity.UserRoleApplicant), SessionMeta{})
	require.NoError(t, err)

	require.NoError(t, auth.RevokeUserSessions(ctx, user.ID, "203.0.113.2"))
	authUser, _ := sessions.Validate(ctx, token)
	assert.Nil(t, authUser)
}
