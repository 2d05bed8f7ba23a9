package services

import (
	"testing"
	"time"

	"sahyogjeevan/database"
	"sahyogjeevan/internal/models"
	"sahyogjeevan/internal/repositories"
	"sahyogjeevan/internal/services/dto"
	"sahyogjeevan/internal/session"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// captureSMS records the last message instead of sending it.
type captureSMS struct {
	phone   string
	message string
}

func (c *captureSMS) Send(phone, message string) error {
	c.phone = phone
	c.message = message
	return nil
}

// captureEmail records sent mail for assertions.
type captureEmail struct {
	to      string
	subject string
	body    string
	count   int
}

func (c *captureEmail) Send(to, subject, body string) error {
	c.to = to
	c.subject = subject
	c.body = body
	c.count++
	return nil
}

func newAuthService(t *testing.T, db *gorm.DB) (AuthService, *captureSMS, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore(0)
	t.Cleanup(store.Close)
	sms := &captureSMS{}
	svc := NewAuthService(db, repositories.NewUserRepository(db), sms, store, time.Hour)
	return svc, sms, store
}

// createEmployer registers an employer and returns the user.
func createEmployer(t *testing.T, svc AuthService, username string) *models.User {
	t.Helper()
	user, err := svc.Register(&dto.RegisterRequest{
		Role:     string(models.UserRoleEmployer),
		Username: username,
		Password: "super_password123",
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return user
}

// createWorker registers a worker by phone and returns the user.
func createWorker(t *testing.T, svc AuthService, phone string) *models.User {
	t.Helper()
	user, err := svc.Register(&dto.RegisterRequest{
		Role:  string(models.UserRoleWorker),
		Phone: phone,
	})
	require.NoError(t, err)
	return user
}
