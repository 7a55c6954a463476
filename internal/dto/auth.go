package dto

import "strings"

// RegisterRequest carries the registration payload.
// Validation runs after Normalize, so the length rules apply to the trimmed
// values (matching the storage normalization exactly).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Normalize trims the username and trims + lowercases the email.
// The password is left untouched.
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// LoginRequest carries the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize lowercases the email so lookup matches the stored form.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// AuthResponse is returned by both register and login: the user's safe view
// plus a freshly issued token.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
