package model

import "time"

// AccountType distinguishes password accounts from federated-identity accounts.
// Federated accounts carry an unusable password hash and can never log in with
// a password.
type AccountType string

const (
	AccountLocal     AccountType = "local"
	AccountFederated AccountType = "federated"
)

// User represents a registered user. FullName is the externally visible
// identifier (token subject, trip owner); ID is a surrogate key so a durable
// backend can migrate off the name without breaking the API.
type User struct {
	ID            string
	FullName      string
	DOB           string
	Email         string
	Mobile        string
	Country       string
	PhotoFilename string
	ConsentGmail  bool
	ConsentPhone  bool
	PasswordHash  string
	Account       AccountType
	CreatedAt     time.Time
}

// Profile returns the user data safe for API responses (no password hash).
func (u *User) Profile() UserProfile {
	return UserProfile{
		FullName: u.FullName,
		DOB:      u.DOB,
		Email:    u.Email,
		Mobile:   u.Mobile,
		Country:  u.Country,
	}
}

// RegisterRequest carries the /register form fields.
type RegisterRequest struct {
	FullName        string
	DOB             string
	Email           string
	Mobile          string
	Country         string
	Password        string
	ConfirmPassword string
	PhotoFilename   string
	ConsentGmail    bool
	ConsentPhone    bool
}

// UserProfile represents user data returned by GET /profile.
type UserProfile struct {
	FullName string `json:"fullName"`
	DOB      string `json:"dob"`
	Email    string `json:"email,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Country  string `json:"country"`
}

// TokenResponse represents an issued session token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
