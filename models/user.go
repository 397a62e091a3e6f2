package models

import "time"

// User is the persisted credential record owned by the credential store.
// It carries the password hash and must never be serialized to clients;
// use [User.ToResponse] to obtain the client-facing projection.
type User struct {
	// ID is a positive, monotonically assigned identifier. IDs are never reused.
	ID int64

	// Username is the unique, case-sensitive lookup key (3–50 characters).
	Username string

	// Email is a validated email address.
	Email string

	// FullName is optional; an empty string means the user did not provide one.
	FullName string

	// PasswordHash is the output of a salted, slow hashing algorithm.
	// Plaintext passwords are never stored.
	PasswordHash string

	// IsActive reports whether the account may authenticate. Tokens issued
	// to an inactive account are rejected on use.
	IsActive bool

	// CreatedAt is set once when the record is created.
	CreatedAt time.Time

	// UpdatedAt is nil until the record is mutated for the first time.
	UpdatedAt *time.Time
}

// TableName returns the name of the database table associated with the
// User model.
func (u User) TableName() string {
	return "users"
}

// ToResponse maps the stored record to its client-facing projection.
// Every field except the password hash is carried over.
func (u User) ToResponse() UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.FullName != "" {
		fullName := u.FullName
		resp.FullName = &fullName
	}

	return resp
}

// UserResponse is the public representation of a user returned by the API.
type UserResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  *string    `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
