package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jinu2024/TrainBookingSystem/database"
	"github.com/jinu2024/TrainBookingSystem/models"
	"github.com/jinu2024/TrainBookingSystem/services/mocks"
)

func newUserService(store *mocks.Store) *UserService {
	svc := NewUserService(store, &BcryptHasher{Cost: bcrypt.MinCost}, quietLogger())
	svc.now = fixedClock(time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC))
	return svc
}

func validCustomer() models.CustomerRequest {
	return models.CustomerRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "Secret#123",
		FullName: "Alice Doe",
		DOB:      "1990-05-01",
		Gender:   "Female",
	}
}

func TestPasswordPolicy(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"Secret#123", true},
		{"S3cr#t", false},
		{"secret#123", false},
		{"SECRET#123", false},
		{"Secret#abc", false},
		{"Secret1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := checkPassword(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestCreateCustomer(t *testing.T) {
	t.Run("hashes the password and normalizes fields", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("GetUserByUsername", mock.Anything, "alice").Return(nil, database.ErrNotFound)
		store.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(nil, database.ErrNotFound)
		store.On("CreateUser", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*models.User).ID = 7 }).
			Return(nil)
		svc := newUserService(store)

		user, err := svc.CreateCustomer(context.Background(), validCustomer())

		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.Equal(t, models.RoleCustomer, user.Role)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "female", user.Gender)
		assert.NotEqual(t, "Secret#123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secret#123")))
	})

	tests := []struct {
		name   string
		modify func(*models.CustomerRequest)
	}{
		{"no contact", func(r *models.CustomerRequest) { r.Email = "" }},
		{"bad email", func(r *models.CustomerRequest) { r.Email = "alice@" }},
		{"short mobile", func(r *models.CustomerRequest) { r.Mobile = "98765" }},
		{"bad username", func(r *models.CustomerRequest) { r.Username = "a!" }},
		{"weak password", func(r *models.CustomerRequest) { r.Password = "password" }},
		{"future dob", func(r *models.CustomerRequest) { r.DOB = "2030-01-01" }},
		{"unknown gender", func(r *models.CustomerRequest) { r.Gender = "robot" }},
		{"bad national id", func(r *models.CustomerRequest) { r.NationalID = "1234" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.Store)
			svc := newUserService(store)

			req := validCustomer()
			tt.modify(&req)
			_, err := svc.CreateCustomer(context.Background(), req)

			assert.ErrorIs(t, err, ErrValidation)
			store.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		})
	}

	t.Run("mobile alone is enough", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("GetUserByUsername", mock.Anything, "alice").Return(nil, database.ErrNotFound)
		store.On("GetUserByMobile", mock.Anything, "9876543210").Return(nil, database.ErrNotFound)
		store.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
		svc := newUserService(store)

		req := validCustomer()
		req.Email = ""
		req.Mobile = "9876543210"
		_, err := svc.CreateCustomer(context.Background(), req)

		require.NoError(t, err)
	})

	t.Run("taken email", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("GetUserByUsername", mock.Anything, "alice").Return(nil, database.ErrNotFound)
		store.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(&models.User{ID: 3}, nil)
		svc := newUserService(store)

		_, err := svc.CreateCustomer(context.Background(), validCustomer())

		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "email already registered")
	})
}

func TestCreateAdmin(t *testing.T) {
	store := new(mocks.Store)
	store.On("GetUserByUsername", mock.Anything, "root").Return(nil, database.ErrNotFound)
	store.On("GetUserByEmail", mock.Anything, "root@example.com").Return(nil, database.ErrNotFound)
	store.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
	svc := newUserService(store)

	user, err := svc.CreateAdmin(context.Background(), models.AdminRequest{
		Username: "root", Email: "root@example.com", Password: "Admin#1234",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestEnsureAdmin_SkipsExisting(t *testing.T) {
	store := new(mocks.Store)
	store.On("GetUserByUsername", mock.Anything, "root").Return(&models.User{ID: 1, Username: "root"}, nil)
	svc := newUserService(store)

	created, err := svc.EnsureAdmin(context.Background(), models.AdminRequest{
		Username: "root", Email: "root@example.com", Password: "Admin#1234",
	})

	require.NoError(t, err)
	assert.False(t, created)
	store.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestAuthenticateUser(t *testing.T) {
	hasher := &BcryptHasher{Cost: bcrypt.MinCost}
	digest, err := hasher.Hash("Secret#123")
	require.NoError(t, err)

	active := &models.User{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: digest,
		Role: models.RoleCustomer, Status: models.UserStatusActive}
	inactive := *active
	inactive.Status = models.UserStatusInactive

	t.Run("by username", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("GetUserByUsername", mock.Anything, "alice").Return(active, nil)
		svc := newUserService(store)

		user, err := svc.AuthenticateUser(context.Background(), "alice", "Secret#123")

		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
	})

	t.Run("falls back to email", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("GetUserByUsername", mock.Anything, "Alice@Example.com").Return(nil, database.ErrNotFound)
		store.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(active, nil)
		svc := newUserService(store)

		_, err := svc.AuthenticateUser(context.Background(), "Alice@Example.com", "Secret#123")

		require.NoError(t, err)
	})

	failures := []struct {
		name  string
		setup func(*mocks.Store)
		pw    string
	}{
		{"unknown user", func(s *mocks.Store) {
			s.On("GetUserByUsername", mock.Anything, "alice").Return(nil, database.ErrNotFound)
			s.On("GetUserByEmail", mock.Anything, "alice").Return(nil, database.ErrNotFound)
		}, "Secret#123"},
		{"wrong password", func(s *mocks.Store) {
			s.On("GetUserByUsername", mock.Anything, "alice").Return(active, nil)
		}, "Secret#999"},
		{"inactive account", func(s *mocks.Store) {
			s.On("GetUserByUsername", mock.Anything, "alice").Return(&inactive, nil)
		}, "Secret#123"},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.Store)
			tt.setup(store)
			svc := newUserService(store)

			_, err := svc.AuthenticateUser(context.Background(), "alice", tt.pw)

			assert.ErrorIs(t, err, ErrUnauthorized)
			assert.EqualError(t, err, "unauthorized: invalid credentials")
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Run("email held by someone else", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("GetUser", mock.Anything, 7).Return(alice(), nil)
		store.On("GetUserByEmail", mock.Anything, "bob@example.com").Return(&models.User{ID: 8}, nil)
		svc := newUserService(store)

		_, err := svc.UpdateProfile(context.Background(), 7, models.ProfileUpdateRequest{
			Email: "bob@example.com", FullName: "Alice Doe", DOB: "1990-05-01", Gender: "female",
		})

		assert.ErrorIs(t, err, ErrValidation)
		store.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("keeps username and role", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("GetUser", mock.Anything, 7).Return(alice(), nil)
		store.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(alice(), nil)
		store.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)
		svc := newUserService(store)

		user, err := svc.UpdateProfile(context.Background(), 7, models.ProfileUpdateRequest{
			Email: "alice@example.com", FullName: "Alice Smith", DOB: "1990-05-01", Gender: "female",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, models.RoleCustomer, user.Role)
		assert.Equal(t, "Alice Smith", user.FullName)
	})
}

func TestDeactivateUser(t *testing.T) {
	store := new(mocks.Store)
	store.On("GetUser", mock.Anything, 7).Return(alice(), nil)
	store.On("SetUserStatus", mock.Anything, 7, models.UserStatusInactive).Return(nil).Once()
	svc := newUserService(store)

	require.NoError(t, svc.DeactivateUser(context.Background(), 7))
	store.AssertExpectations(t)
}
