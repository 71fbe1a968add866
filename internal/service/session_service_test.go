package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobhive/internal/entity"
	"jobhive/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateThenValidate(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock()
	svc := newSessionService(t, db, clock)
	user := createTestUser(t, db, "alice", entity.UserRoleApplicant)
	ctx := context.Background()

	meta := SessionMeta{UserAgent: "curl/8.0", IP: "203.0.113.7"}
	token, err := svc.Create(ctx, user.ID, meta)
	require.NoError(t, err)
	require.Len(t, token, 96)

	auth, expired := svc.Validate(ctx, token)
	require.NotNil(t, auth)
	assert.False(t, expired)
	assert.Equal(t, user.ID, auth.User.ID)
	assert.Equal(t, entity.UserRoleApplicant, auth.User.Role)
	assert.Equal(t, "curl/8.0", auth.Session.UserAgent)
	assert.Equal(t, "203.0.113.7", auth.Session.IP)
	assert.Equal(t, utils.HashToken(token), auth.Session.ID)
}

func TestSessionStoresHashNotToken(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db, newFakeClock())
	user := createTestUser(t, db, "bob", entity.UserRoleEmployer)

	token, err := svc.Create(context.Background(), user.ID, SessionMeta{})
	require.NoError(t, err)

	var session entity.Session
	require.NoError(t, db.First(&session).Error)
	assert.Equal(t, utils.HashToken(token), session.ID)
	assert.NotContains(t, session.ID, token)
}

func TestValidateUnknownToken(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db, newFakeClock())

	auth, expired := svc.Validate(context.Background(), "deadbeef")
	assert.Nil(t, auth)
	assert.False(t, expired)

	auth, _ = svc.Validate(context.Background(), "")
	assert.Nil(t, auth)
}

func TestSecondSessionEvictsFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db, newFakeClock())
	user := createTestUser(t, db, "carol", entity.UserRoleApplicant)
	ctx := context.Background()

	tokenA, err := svc.Create(ctx, user.ID, SessionMeta{IP: "198.51.100.1"})
	require.NoError(t, err)
	tokenB, err := svc.Create(ctx, user.ID, SessionMeta{IP: "198.51.100.2"})
	require.NoError(t, err)

	auth, _ := svc.Validate(ctx, tokenA)
	assert.Nil(t, auth, "first token must be dead after the second login")

	auth, _ = svc.Validate(ctx, tokenB)
	require.NotNil(t, auth)
	assert.Equal(t, user.ID, auth.User.ID)
	assert.EqualValues(t, 1, sessionCount(t, db, user.ID))
}

func TestExpiredSessionLazyCleanup(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock()
	svc := newSessionService(t, db, clock)
	user := createTestUser(t, db, "dave", entity.UserRoleApplicant)
	ctx := context.Background()

	token, err := svc.Create(ctx, user.ID, SessionMeta{})
	require.NoError(t, err)

	clock.Advance(SessionLifetime + time.Minute)

	auth, expired := svc.Validate(ctx, token)
	assert.Nil(t, auth)
	assert.True(t, expired, "first validation after the deadline cleans up")
	assert.EqualValues(t, 0, sessionCount(t, db, user.ID))

	// Second validation of the same token finds nothing left to clean.
	auth, expired = svc.Validate(ctx, token)
	assert.Nil(t, auth)
	assert.False(t, expired)
}

func TestValidateSlidesExpiry(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock()
	svc := newSessionService(t, db, clock)
	user := createTestUser(t, db, "erin", entity.UserRoleApplicant)
	ctx := context.Background()

	token, err := svc.Create(ctx, user.ID, SessionMeta{})
	require.NoError(t, err)
	id := utils.HashToken(token)

	clock.Advance(time.Hour)
	auth, _ := svc.Validate(ctx, token)
	require.NotNil(t, auth)

	var session entity.Session
	require.NoError(t, db.First(&session, "id = ?", id).Error)
	firstDeadline := session.ExpiresAt
	assert.WithinDuration(t, clock.Now().Add(SessionLifetime), firstDeadline, time.Second)

	clock.Advance(2 * time.Hour)
	auth, _ = svc.Validate(ctx, token)
	require.NotNil(t, auth)

	require.NoError(t, db.First(&session, "id = ?", id).Error)
	assert.True(t, session.ExpiresAt.After(firstDeadline),
		"deadline must reflect the latest validation, not the first")
	assert.WithinDuration(t, clock.Now().Add(SessionLifetime), session.ExpiresAt, time.Second)
}

func TestInvalidateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db, newFakeClock())
	user := createTestUser(t, db, "frank", entity.UserRoleApplicant)
	ctx := context.Background()

	token, err := svc.Create(ctx, user.ID, SessionMeta{})
	require.NoError(t, err)

	require.NoError(t, svc.InvalidateToken(ctx, token))
	auth, _ := svc.Validate(ctx, token)
	assert.Nil(t, auth)

	// Deleting zero rows is a success, not an error.
	require.NoError(t, svc.InvalidateToken(ctx, token))
	require.NoError(t, svc.Invalidate(ctx, utils.HashToken("never-issued")))
}

func TestValidateSoftDeletedOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db, newFakeClock())
	user := createTestUser(t, db, "gone", entity.UserRoleApplicant)
	ctx := context.Background()

	token, err := svc.Create(ctx, user.ID, SessionMeta{})
	require.NoError(t, err)
	require.NoError(t, db.Delete(&entity.User{}, user.ID).Error)

	auth, _ := svc.Validate(ctx, token)
	assert.Nil(t, auth)
}

type failingSessionRepo struct{}

var errStorage = errors.New("storage down")

func (failingSessionRepo) Create(context.Context, *entity.Session) error { return errStorage }
func (failingSessionRepo) FindWithUser(context.Context, string) (*entity.Session, error) {
	return nil, errStorage
}
func (failingSessionRepo) ExtendExpiry(context.Context, string, time.Time) error { return errStorage }
func (failingSessionRepo) DeleteByID(context.Context, string) error              { return errStorage }
func (failingSessionRepo) DeleteByUserID(context.Context, uint) error            { return errStorage }

func TestValidateFailsClosedOnStorageError(t *testing.T) {
	svc := NewSessionService(failingSessionRepo{}, newTestLogger(), newFakeClock(), SessionConfig{})

	auth, expired := svc.Validate(context.Background(), "aaaa")
	assert.Nil(t, auth)
	assert.False(t, expired)
}

func TestMutationsFailLoudOnStorageError(t *testing.T) {
	svc := NewSessionService(failingSessionRepo{}, newTestLogger(), newFakeClock(), SessionConfig{})
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, SessionMeta{})
	assert.ErrorIs(t, err, errStorage)
	assert.ErrorIs(t, svc.Invalidate(ctx, "aaaa"), errStorage)
}

func TestLifetimeDefaultAndOverride(t *testing.T) {
	svc := NewSessionService(failingSessionRepo{}, newTestLogger(), nil, SessionConfig{})
	assert.Equal(t, SessionLifetime, svc.Lifetime())

	svc = NewSessionService(failingSessionRepo{}, newTestLogger(), nil, SessionConfig{Lifetime: time.Hour})
	assert.Equal(t, time.Hour, svc.Lifetime())
}
