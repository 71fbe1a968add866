package service

import (
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"jobhive/config"
	"jobhive/internal/entity"
	"jobhive/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

// newTestDB opens a private in-memory database with the full schema. The
// shared cache keeps it alive across pooled connections within one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func newSessionService(t *testing.T, db *gorm.DB, clock Clock) *SessionService {
	t.Helper()
	return NewSessionService(
		repository.NewSessionRepository(db),
		newTestLogger(),
		clock,
		SessionConfig{},
	)
}

func createTestUser(t *testing.T, db *gorm.DB, userName string, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{
		Name:         "Test " + userName,
		UserName:     userName,
		Email:        userName + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func sessionCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.Session{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}
