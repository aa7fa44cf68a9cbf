package models

import "time"

// Role distinguishes administrators from customers
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// UserStatus is the lifecycle state of an account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents an admin or customer account
type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	Mobile       string     `json:"mobile,omitempty"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	FullName     string     `json:"full_name,omitempty"`
	DOB          string     `json:"dob,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	NationalID   string     `json:"national_id,omitempty"`
	Nationality  string     `json:"nationality,omitempty"`
	Address      string     `json:"address,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`

	Passengers []Passenger `json:"passengers,omitempty"`
}

// IsActive reports whether the account may sign in
func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Passenger is a dependent traveller saved on a customer's account
type Passenger struct {
	ID       string `json:"id"`
	UserID   int    `json:"user_id"`
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
	IDNumber string `json:"id_number,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Position int    `json:"position"`
}

// AdminRequest represents an admin registration request
type AdminRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CustomerRequest represents a customer registration request
type CustomerRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	DOB         string `json:"dob" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	NationalID  string `json:"national_id"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
}

// ProfileUpdateRequest carries the editable profile fields
type ProfileUpdateRequest struct {
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	FullName    string `json:"full_name" binding:"required"`
	DOB         string `json:"dob" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	NationalID  string `json:"national_id"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
}

// PassengerRequest represents passenger data for add and update
type PassengerRequest struct {
	Name     string `json:"name" binding:"required"`
	DOB      string `json:"dob" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	IDNumber string `json:"id_number"`
	Mobile   string `json:"mobile"`
}

// LoginRequest carries sign-in credentials; identifier is a username or email
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
