package model

import "time"

const (
	RoleUser      = "USER"
	RoleAdmin     = "ADMIN"
	RoleModerator = "MODERATOR"
)

// User represents a user in the system
type User struct {
	ID                int        `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	PasswordHash      string     `json:"-"` // Never exposed
	Role              string     `json:"role"`
	AccessToken       *string    `json:"-"`
	AccessTokenExpiry *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// HasLiveSession reports whether the stored session is present and unexpired at now.
func (u *User) HasLiveSession(now time.Time) bool {
	if u.AccessToken == nil || u.AccessTokenExpiry == nil {
		return false
	}
	return now.Before(*u.AccessTokenExpiry)
}

// Identity is what a validated session resolves to
type Identity struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSummary is returned by signup/login and stored in the informational "user" cookie
type UserSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// SignupRequest is used for creating a new account
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned by a successful login
type LoginResult struct {
	User        UserSummary `json:"user"`
	AccessToken string      `json:"accessToken"`
}
