package service

import (
	"context"
	"time"

	"jobhive/internal/entity"
	"jobhive/internal/repository"
	"jobhive/internal/utils"

	"github.com/sirupsen/logrus"
)

// SessionLifetime is how long a session lives without use. Every validated
// request slides the stored deadline forward by this much.
const SessionLifetime = 30 * 24 * time.Hour

type SessionConfig struct {
	Lifetime time.Duration
}

// SessionMeta is the request context a session records at creation. The
// caller resolves both values; the core never reads ambient request state.
type SessionMeta struct {
	UserAgent string
	IP        string
}

// AuthUser is a validated session joined with its owning user.
type AuthUser struct {
	User    entity.User
	Session entity.Session
}

type SessionService struct {
	sessions repository.SessionRepository
	logger   logrus.FieldLogger
	clock    Clock
	config   SessionConfig
}

func NewSessionService(
	sessions repository.SessionRepository,
	logger logrus.FieldLogger,
	clock Clock,
	config SessionConfig,
) *SessionService {
	return &SessionService{
		sessions: sessions,
		logger:   logger,
		clock:    clock,
		config:   config,
	}
}

// Create issues a fresh bearer token for userID and persists its hash as
// the session row. Any other session the user holds is evicted first: one
// live session per user. The raw token is returned for the cookie and
// exists nowhere else.
//
// The delete and the insert are separate statements, as in the original
// flow. Two concurrent logins for the same user can interleave them and
// briefly leave both rows behind; the next login clears both.
func (s *SessionService) Create(ctx context.Context, userID uint, meta SessionMeta) (string, error) {
	token, err := utils.GenerateToken()
	if err != nil {
		return "", err
	}

	if err := s.sessions.DeleteByUserID(ctx, userID); err != nil {
		return "", err
	}

	session := &entity.Session{
		ID:        utils.HashToken(token),
		UserID:    userID,
		UserAgent: meta.UserAgent,
		IP:        meta.IP,
		ExpiresAt: s.now().Add(s.lifetime()),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}

// Validate resolves a raw bearer token to its user. A live session has its
// deadline slid forward to now+lifetime before returning. An expired row is
// deleted on sight; the second return tells the caller to drop the cookie.
//
// Validation fails closed: storage errors are logged and reported as
// unauthenticated, never surfaced. A transient database blip silently drops
// the user to anonymous instead of breaking the page.
func (s *SessionService) Validate(ctx context.Context, rawToken string) (user *AuthUser, expired bool) {
	if rawToken == "" {
		return nil, false
	}

	session, err := s.sessions.FindWithUser(ctx, utils.HashToken(rawToken))
	if err != nil {
		s.logger.WithError(err).Error("session lookup failed")
		return nil, false
	}
	if session == nil {
		return nil, false
	}

	if session.ExpiresAt.Before(s.now()) {
		if err := s.sessions.DeleteByID(ctx, session.ID); err != nil {
			s.logger.WithError(err).Error("expired session cleanup failed")
		}
		return nil, true
	}

	// Owner soft-deleted out from under the session.
	if session.User.ID == 0 {
		return nil, false
	}

	expiresAt := s.now().Add(s.lifetime())
	if err := s.sessions.ExtendExpiry(ctx, session.ID, expiresAt); err != nil {
		s.logger.WithError(err).Error("session renewal failed")
		return nil, false
	}
	session.ExpiresAt = expiresAt

	return &AuthUser{User: session.User, Session: *session}, false
}

// Invalidate deletes the session stored under id (a token hash). Unlike
// Validate this fails loud: a logout that did not happen must not look like
// one that did. Invalidating an absent id is a success.
func (s *SessionService) Invalidate(ctx context.Context, id string) error {
	return s.sessions.DeleteByID(ctx, id)
}

// InvalidateAllForUser evicts every session the user holds.
func (s *SessionService) InvalidateAllForUser(ctx context.Context, userID uint) error {
	return s.sessions.DeleteByUserID(ctx, userID)
}

// InvalidateToken is Invalidate for callers holding the raw cookie value.
func (s *SessionService) InvalidateToken(ctx context.Context, rawToken string) error {
	return s.sessions.DeleteByID(ctx, utils.HashToken(rawToken))
}

// Lifetime is exposed so the cookie layer can match maxAge to the DB
// deadline at issuance. The cookie is not re-issued on renewal, so the two
// drift over a long-lived browser session.
func (s *SessionService) Lifetime() time.Duration {
	return s.lifetime()
}

func (s *SessionService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *SessionService) lifetime() time.Duration {
	if s.config.Lifetime > 0 {
		return s.config.Lifetime
	}
	return SessionLifetime
}
