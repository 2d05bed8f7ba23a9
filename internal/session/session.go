package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"sahyogjeevan/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired tokens.
var ErrNotFound = errors.New("session not found")

// Session binds an opaque token to an authenticated user.
type Session struct {
	Token     string          `json:"token"`
	UserID    uint            `json:"user_id"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store is the injectable session backend. The in-memory implementation is
// the default; Redis backs deployments that need sessions to survive
// restarts.
type Store interface {
	Create(ctx context.Context, sess *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID uint) error
}

// New builds a Session for the user with a fresh token.
func New(userID uint, role models.UserRole, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		Token:     NewToken(),
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// NewToken returns an opaque 64-character token.
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
