package domain

import "time"

// User represents a registered user in the domain.
// PasswordHash is never serialized; outward representations go through
// dto.UserResponse which omits it entirely.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SafeView returns a copy of the user with the password hash stripped.
// The auth middleware attaches this to the request context.
func (u User) SafeView() User {
	u.PasswordHash = ""
	return u
}
