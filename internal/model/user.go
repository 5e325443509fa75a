package model

import "time"

// User represents a registered account.
type User struct {
	ID              int64
	Name            string
	Email           string
	PasswordHash    string
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Scope is the authenticated principal attached to a request.
type Scope struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Scope returns the request scope carried by the user record.
func (u User) Scope() Scope {
	return Scope{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	}
}
