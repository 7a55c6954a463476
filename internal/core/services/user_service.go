package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blogweb/backend/internal/core/domain"
	portsrepo "github.com/blogweb/backend/internal/core/ports/repositories"
	portssvc "github.com/blogweb/backend/internal/core/ports/services"
	"github.com/blogweb/backend/internal/dto"
	"github.com/blogweb/backend/internal/utils"
	"github.com/google/uuid"
)

// UserService implements the credential store: creation with normalization
// and hashing, lookups, and password verification.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// RegisterUser normalizes the request, hashes the password, and persists the
// user. Username/email collisions come back as apperrors.ErrDuplicate from
// the repository's unique indexes; there is deliberately no pre-insert
// existence check, so a concurrent duplicate registration loses cleanly.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	req.Normalize()

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email, lowercasing first so the lookup
// matches the stored normalized form.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// VerifyPassword reports whether candidate matches the user's stored hash.
func (s *UserService) VerifyPassword(user *domain.User, candidate string) bool {
	if user == nil {
		return false
	}
	return utils.CheckPasswordHash(candidate, user.PasswordHash)
}
