package service

import (
	"context"
	"encoding/json"
	"strings"

	"jobhive/internal/entity"
	"jobhive/internal/repository"
	"jobhive/internal/utils"

	"gorm.io/datatypes"
)

// Compared against when login hits an unknown email, so both failure paths
// cost one bcrypt verify.
const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type RegisterInput struct {
	Name        string
	UserName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        entity.UserRole
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthService struct {
	users        repository.UserRepository
	employers    repository.EmployerRepository
	applicants   repository.ApplicantRepository
	sessions     *SessionService
	securityLogs repository.SecurityLogRepository
	passwordHash PasswordHasher
}

func NewAuthService(
	users repository.UserRepository,
	employers repository.EmployerRepository,
	applicants repository.ApplicantRepository,
	sessions *SessionService,
	securityLogs repository.SecurityLogRepository,
	passwordHash PasswordHasher,
) *AuthService {
	return &AuthService{
		users:        users,
		employers:    employers,
		applicants:   applicants,
		sessions:     sessions,
		securityLogs: securityLogs,
		passwordHash: passwordHash,
	}
}

// Register creates the user, its role profile row, and logs the new account
// straight in. The returned token goes into the session cookie.
func (s *AuthService) Register(ctx context.Context, input RegisterInput, meta SessionMeta) (*entity.User, string, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.UserName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Password) == "" {
		return nil, "", ErrInvalidInput
	}
	if input.Role != entity.UserRoleApplicant && input.Role != entity.UserRoleEmployer {
		return nil, "", ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", ErrEmailAlreadyRegistered
	}
	if existing, err := s.users.FindByUserName(ctx, input.UserName); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", ErrUserNameTaken
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Name:         input.Name,
		UserName:     input.UserName,
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if phone := strings.TrimSpace(input.PhoneNumber); phone != "" {
		user.PhoneNumber = &phone
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	switch user.Role {
	case entity.UserRoleEmployer:
		if err := s.employers.Create(ctx, &entity.Employer{ID: user.ID}); err != nil {
			return nil, "", err
		}
	case entity.UserRoleApplicant:
		if err := s.applicants.Create(ctx, &entity.Applicant{ID: user.ID}); err != nil {
			return nil, "", err
		}
	}

	token, err := s.sessions.Create(ctx, user.ID, meta)
	if err != nil {
		return nil, "", err
	}

	_ = s.logSecurity(ctx, &user.ID, meta.IP, entity.Registered, map[string]any{"role": user.Role})
	return user, token, nil
}

// Login verifies credentials and opens a session, evicting any the user
// already holds. Unknown email and wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput, meta SessionMeta) (*entity.User, string, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, "", ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		_ = s.logSecurity(ctx, nil, meta.IP, entity.LoginFailed, map[string]any{"email": email})
		return nil, "", ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(user.PasswordHash, input.Password) {
		_ = s.logSecurity(ctx, &user.ID, meta.IP, entity.LoginFailed, map[string]any{"email": email})
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID, meta)
	if err != nil {
		return nil, "", err
	}

	_ = s.logSecurity(ctx, &user.ID, meta.IP, entity.LoginSuccess, nil)
	return user, token, nil
}

// Logout tears down the session behind rawToken. Without a cookie there is
// nothing to do; with one, a failed delete surfaces to the caller.
func (s *AuthService) Logout(ctx context.Context, rawToken string, ip string) error {
	if rawToken == "" {
		return nil
	}
	if err := s.sessions.InvalidateToken(ctx, rawToken); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, nil, ip, entity.Logout, nil)
	return nil
}

func (s *AuthService) GetUser(ctx context.Context, userID uint) (*entity.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) ListUsers(ctx context.Context, limit, offset int) ([]entity.User, error) {
	return s.users.List(ctx, limit, offset)
}

// RevokeUserSessions force-logs a user out everywhere (admin action).
func (s *AuthService) RevokeUserSessions(ctx context.Context, userID uint, ip string) error {
	if err := s.sessions.InvalidateAllForUser(ctx, userID); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, &userID, ip, entity.SessionEvicted, map[string]any{"scope": "all"})
	return nil
}

func (s *AuthService) logSecurity(
	ctx context.Context,
	userID *uint,
	ip string,
	action entity.SecurityAction,
	metadata map[string]any,
) error {
	if s.securityLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.SecurityLog{
		UserID:   userID,
		Action:   action,
		Metadata: payload,
	}
	if ip != "" {
		log.IPAddress = &ip
	}
	return s.securityLogs.Log(ctx, log)
}
