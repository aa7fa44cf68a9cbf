package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jinu2024/TrainBookingSystem/database"
	"github.com/jinu2024/TrainBookingSystem/models"
	"github.com/jinu2024/TrainBookingSystem/services/mocks"
)

var sessionNow = time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)

type stubAuth struct {
	user *models.User
	err  error
}

func (a stubAuth) AuthenticateUser(ctx context.Context, identifier, password string) (*models.User, error) {
	return a.user, a.err
}

func newSessionService(store *mocks.Store, auth Authenticator) *SessionService {
	svc := NewSessionService(store, auth, 24*time.Hour, quietLogger())
	svc.now = fixedClock(sessionNow)
	return svc
}

func liveSession(user models.User) *models.Session {
	return &models.Session{
		Token:     "abc",
		UserID:    user.ID,
		ExpiresAt: sessionNow.Add(time.Hour),
		CreatedAt: sessionNow.Add(-time.Hour),
		User:      user,
	}
}

func TestCreateSessionForUser(t *testing.T) {
	store := new(mocks.Store)
	store.On("CreateSession", mock.Anything, mock.Anything).Return(nil)
	svc := newSessionService(store, nil)

	ss, err := svc.CreateSessionForUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{32}$`, ss.Token)
	assert.Equal(t, 7, ss.UserID)
	assert.Equal(t, sessionNow.Add(24*time.Hour), ss.ExpiresAt)
}

func TestNewSessionService_DefaultTTL(t *testing.T) {
	svc := NewSessionService(new(mocks.Store), nil, 0, quietLogger())
	assert.Equal(t, DefaultSessionTTL, svc.ttl)
}

func TestValidateSession(t *testing.T) {
	t.Run("sweeps before lookup", func(t *testing.T) {
		store := new(mocks.Store)
		sweep := store.On("DeleteExpiredSessions", mock.Anything, sessionNow).Return(int64(2), nil)
		store.On("GetSession", mock.Anything, "abc").Return(liveSession(*alice()), nil).NotBefore(sweep)
		svc := newSessionService(store, nil)

		ss, err := svc.ValidateSession(context.Background(), "abc")

		require.NoError(t, err)
		assert.Equal(t, "alice", ss.User.Username)
		store.AssertExpectations(t)
	})

	t.Run("unknown or swept token", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("DeleteExpiredSessions", mock.Anything, sessionNow).Return(int64(1), nil)
		store.On("GetSession", mock.Anything, "gone").Return(nil, database.ErrNotFound)
		svc := newSessionService(store, nil)

		_, err := svc.ValidateSession(context.Background(), "gone")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("inactive owner", func(t *testing.T) {
		store := new(mocks.Store)
		user := *alice()
		user.Status = models.UserStatusInactive
		store.On("DeleteExpiredSessions", mock.Anything, sessionNow).Return(int64(0), nil)
		store.On("GetSession", mock.Anything, "abc").Return(liveSession(user), nil)
		svc := newSessionService(store, nil)

		_, err := svc.ValidateSession(context.Background(), "abc")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("empty token", func(t *testing.T) {
		store := new(mocks.Store)
		svc := newSessionService(store, nil)

		_, err := svc.ValidateSession(context.Background(), "")

		assert.ErrorIs(t, err, ErrUnauthorized)
		store.AssertNotCalled(t, "DeleteExpiredSessions", mock.Anything, mock.Anything)
	})
}

func TestResumeLatestSession(t *testing.T) {
	t.Run("returns the newest customer session", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("DeleteExpiredSessions", mock.Anything, sessionNow).Return(int64(0), nil)
		store.On("LatestCustomerSession", mock.Anything, sessionNow).Return(liveSession(*alice()), nil)
		svc := newSessionService(store, nil)

		ss, err := svc.ResumeLatestSession(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "abc", ss.Token)
	})

	t.Run("nothing to resume", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("DeleteExpiredSessions", mock.Anything, sessionNow).Return(int64(0), nil)
		store.On("LatestCustomerSession", mock.Anything, sessionNow).Return(nil, database.ErrNotFound)
		svc := newSessionService(store, nil)

		_, err := svc.ResumeLatestSession(context.Background())

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLogin(t *testing.T) {
	t.Run("opens a session", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("CreateSession", mock.Anything, mock.Anything).Return(nil)
		svc := newSessionService(store, stubAuth{user: alice()})

		resp, err := svc.Login(context.Background(), "alice", "Secret#123")

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice", resp.User.Username)
	})

	t.Run("bad credentials", func(t *testing.T) {
		store := new(mocks.Store)
		svc := newSessionService(store, stubAuth{err: errInvalidCredentials})

		_, err := svc.Login(context.Background(), "alice", "wrong")

		assert.ErrorIs(t, err, ErrUnauthorized)
		store.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})
}

func TestLogout_IsIdempotent(t *testing.T) {
	store := new(mocks.Store)
	store.On("DeleteSession", mock.Anything, "abc").Return(nil).Twice()
	svc := newSessionService(store, nil)

	require.NoError(t, svc.Logout(context.Background(), "abc"))
	require.NoError(t, svc.Logout(context.Background(), "abc"))
	store.AssertExpectations(t)
}
