package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogweb/backend/internal/apperrors"
	"github.com/blogweb/backend/internal/core/domain"
	portsrepo "github.com/blogweb/backend/internal/core/ports/repositories"
	"github.com/blogweb/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SaveUser inserts a new user. The unique indexes on username and email
// decide duplicate registrations: a violation maps to apperrors.ErrDuplicate,
// so of two concurrent registrations with the same email exactly one wins.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.CreatedAt,
		modelUser.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("%w: username or email taken", apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE user_id = $1;
	`
	return r.findOne(ctx, query, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1;
	`
	return r.findOne(ctx, query, email)
}

func (r *PgxUserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var modelUser models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.CreatedAt,
		&modelUser.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}
