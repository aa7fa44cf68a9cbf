package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jinu2024/TrainBookingSystem/database"
	"github.com/jinu2024/TrainBookingSystem/models"
)

// UserService handles account creation, credentials and profiles
type UserService struct {
	store  UserStore
	hasher PasswordHasher
	log    *logrus.Logger
	now    func() time.Time
}

func NewUserService(store UserStore, hasher PasswordHasher, log *logrus.Logger) *UserService {
	return &UserService{store: store, hasher: hasher, log: log, now: time.Now}
}

// CreateAdmin registers an administrator account
func (s *UserService) CreateAdmin(ctx context.Context, req models.AdminRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := check(username, tagUsername, "username must be 3-30 letters, digits or underscores"); err != nil {
		return nil, err
	}
	if err := check(email, tagEmail, "invalid email address"); err != nil {
		return nil, err
	}
	if err := checkPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, 0, username, email, ""); err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Role:     models.RoleAdmin,
		Status:   models.UserStatusActive,
	}
	if err := s.create(ctx, user, req.Password); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCustomer registers a customer account with its profile
func (s *UserService) CreateCustomer(ctx context.Context, req models.CustomerRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if err := check(username, tagUsername, "username must be 3-30 letters, digits or underscores"); err != nil {
		return nil, err
	}
	if err := checkPassword(req.Password); err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Role:     models.RoleCustomer,
		Status:   models.UserStatusActive,
	}
	applyProfile(user, models.ProfileUpdateRequest{
		Email:       req.Email,
		Mobile:      req.Mobile,
		FullName:    req.FullName,
		DOB:         req.DOB,
		Gender:      req.Gender,
		NationalID:  req.NationalID,
		Nationality: req.Nationality,
		Address:     req.Address,
	})
	if err := s.validateProfile(user); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, 0, username, user.Email, user.Mobile); err != nil {
		return nil, err
	}

	if err := s.create(ctx, user, req.Password); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin creates the admin account when no user has that username yet
func (s *UserService) EnsureAdmin(ctx context.Context, req models.AdminRequest) (bool, error) {
	_, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return false, err
	}

	if _, err := s.CreateAdmin(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserService) create(ctx context.Context, user *models.User, password string) error {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = digest

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return invalid("username, email or mobile already registered")
		}
		return err
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username, "role": user.Role}).Info("user created")
	return nil
}

// AuthenticateUser resolves identifier as a username and then as an email
// and checks the password. Every failure reads as invalid credentials.
func (s *UserService) AuthenticateUser(ctx context.Context, identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, errInvalidCredentials
	}

	user, err := s.store.GetUserByUsername(ctx, identifier)
	if errors.Is(err, database.ErrNotFound) {
		user, err = s.store.GetUserByEmail(ctx, strings.ToLower(identifier))
	}
	if errors.Is(err, database.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive() || !s.hasher.Verify(password, user.PasswordHash) {
		s.log.WithField("username", user.Username).Warn("failed sign-in")
		return nil, errInvalidCredentials
	}
	return user, nil
}

// GetProfile returns an account with its saved passengers
func (s *UserService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, lookup(err, "user %d", userID)
	}

	passengers, err := s.store.ListPassengers(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Passengers = passengers
	return user, nil
}

// UpdateProfile re-validates and stores the editable profile fields.
// Username and role never change.
func (s *UserService) UpdateProfile(ctx context.Context, userID int, req models.ProfileUpdateRequest) (*models.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, lookup(err, "user %d", userID)
	}

	applyProfile(user, req)
	if err := s.validateProfile(user); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, user.ID, "", user.Email, user.Mobile); err != nil {
		return nil, err
	}

	if err := s.store.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, invalid("email or mobile already registered")
		}
		return nil, lookup(err, "user %d", userID)
	}

	s.log.WithField("user_id", userID).Info("profile updated")
	return user, nil
}

// DeactivateUser blocks an account from signing in; its sessions stop validating
func (s *UserService) DeactivateUser(ctx context.Context, userID int) error {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return lookup(err, "user %d", userID)
	}
	if err := s.store.SetUserStatus(ctx, userID, models.UserStatusInactive); err != nil {
		return lookup(err, "user %d", userID)
	}

	s.log.WithField("user_id", userID).Info("user deactivated")
	return nil
}

func applyProfile(user *models.User, req models.ProfileUpdateRequest) {
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Mobile = strings.TrimSpace(req.Mobile)
	user.FullName = strings.TrimSpace(req.FullName)
	user.DOB = strings.TrimSpace(req.DOB)
	user.Gender = strings.ToLower(strings.TrimSpace(req.Gender))
	user.NationalID = strings.TrimSpace(req.NationalID)
	user.Nationality = strings.TrimSpace(req.Nationality)
	user.Address = strings.TrimSpace(req.Address)
}

func (s *UserService) validateProfile(user *models.User) error {
	if user.Email == "" && user.Mobile == "" {
		return invalid("email or mobile is required")
	}
	if err := checkOptional(user.Email, tagEmail, "invalid email address"); err != nil {
		return err
	}
	if err := checkOptional(user.Mobile, tagMobile, "mobile must be exactly 10 digits"); err != nil {
		return err
	}
	if err := check(user.FullName, tagPersonName, "full name is required"); err != nil {
		return err
	}
	if err := s.checkDOB(user.DOB); err != nil {
		return err
	}
	if err := check(user.Gender, tagGender, "gender must be male, female or other"); err != nil {
		return err
	}
	return checkOptional(user.NationalID, tagNationalID, "national id must be exactly 12 digits")
}

func (s *UserService) checkDOB(dob string) error {
	if err := check(dob, tagDate, "date of birth must be YYYY-MM-DD"); err != nil {
		return err
	}
	born, _ := time.Parse(models.DateLayout, dob)
	if !born.Before(s.now()) {
		return invalid("date of birth must be in the past")
	}
	return nil
}

func checkPassword(pw string) error {
	return check(pw, tagPassword, "password must be at least 8 characters with upper, lower, digit and special characters")
}

// ensureUnique rejects values already held by an account other than selfID.
// Empty values are skipped.
func (s *UserService) ensureUnique(ctx context.Context, selfID int, username, email, mobile string) error {
	probes := []struct {
		value string
		field string
		get   func(context.Context, string) (*models.User, error)
	}{
		{username, "username", s.store.GetUserByUsername},
		{email, "email", s.store.GetUserByEmail},
		{mobile, "mobile", s.store.GetUserByMobile},
	}

	for _, p := range probes {
		if p.value == "" {
			continue
		}
		existing, err := p.get(ctx, p.value)
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if existing.ID != selfID {
			return invalid("%s already registered", p.field)
		}
	}
	return nil
}
