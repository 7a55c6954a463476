package services

import (
	"context"

	"github.com/blogweb/backend/internal/core/domain"
	"github.com/blogweb/backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email (already normalized or not;
	// the service lowercases before lookup).
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user from normalized registration input.
	// Returns apperrors.ErrDuplicate when the username or email is taken.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
}

// UserAuthSvc defines credential verification
type UserAuthSvc interface {
	// VerifyPassword reports whether the candidate matches the user's stored
	// hash. Malformed input never panics; it just reports false.
	VerifyPassword(user *domain.User, candidate string) bool
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
