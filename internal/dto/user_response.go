package dto

import "github.com/blogweb/backend/internal/core/domain"

// UserResponse is the safe view of a user: never includes the password hash.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToUserResponse converts a domain.User to its safe response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// ToAuthResponse pairs a user's safe view with an issued token.
func ToAuthResponse(user *domain.User, token string) AuthResponse {
	return AuthResponse{
		ID:       user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}
}
