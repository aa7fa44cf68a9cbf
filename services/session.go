package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jinu2024/TrainBookingSystem/database"
	"github.com/jinu2024/TrainBookingSystem/models"
)

// DefaultSessionTTL is used when no positive TTL is configured
const DefaultSessionTTL = 24 * time.Hour

// Authenticator verifies credentials and returns the matching account
type Authenticator interface {
	AuthenticateUser(ctx context.Context, identifier, password string) (*models.User, error)
}

// SessionService issues and checks login tokens. Expired sessions are swept
// lazily on lookup rather than by a timer.
type SessionService struct {
	store SessionStore
	auth  Authenticator
	ttl   time.Duration
	log   *logrus.Logger
	now   func() time.Time
}

func NewSessionService(store SessionStore, auth Authenticator, ttl time.Duration, log *logrus.Logger) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{store: store, auth: auth, ttl: ttl, log: log, now: time.Now}
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// CreateSessionForUser mints a token valid for the configured TTL
func (s *SessionService) CreateSessionForUser(ctx context.Context, userID int) (*models.Session, error) {
	now := s.now()
	ss := &models.Session{
		Token:     newToken(),
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.store.CreateSession(ctx, ss); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "expires_at": ss.ExpiresAt}).Info("session created")
	return ss, nil
}

// SweepExpired deletes every expired session
func (s *SessionService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.WithField("count", n).Debug("expired sessions swept")
	}
	return n, nil
}

// ValidateSession sweeps expired sessions and then looks the token up
func (s *SessionService) ValidateSession(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	if _, err := s.SweepExpired(ctx); err != nil {
		return nil, err
	}

	ss, err := s.store.GetSession(ctx, token)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !ss.ExpiresAt.After(s.now()) || !ss.User.IsActive() {
		return nil, ErrUnauthorized
	}
	return ss, nil
}

// InvalidateSession deletes a token; unknown tokens are ignored
func (s *SessionService) InvalidateSession(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

// ResumeLatestSession returns the newest live session owned by an active
// customer, for auto-login.
func (s *SessionService) ResumeLatestSession(ctx context.Context) (*models.Session, error) {
	if _, err := s.SweepExpired(ctx); err != nil {
		return nil, err
	}

	ss, err := s.store.LatestCustomerSession(ctx, s.now())
	if err != nil {
		return nil, lookup(err, "active session")
	}

	s.log.WithField("username", ss.User.Username).Info("session resumed")
	return ss, nil
}

// Login authenticates and opens a new session
func (s *SessionService) Login(ctx context.Context, identifier, password string) (*models.LoginResponse, error) {
	user, err := s.auth.AuthenticateUser(ctx, identifier, password)
	if err != nil {
		return nil, err
	}

	ss, err := s.CreateSessionForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: ss.Token, ExpiresAt: ss.ExpiresAt, User: *user}, nil
}

// Logout ends the session behind token
func (s *SessionService) Logout(ctx context.Context, token string) error {
	return s.InvalidateSession(ctx, token)
}
