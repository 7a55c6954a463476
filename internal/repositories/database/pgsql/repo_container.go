package pgsql

import (
	portsrepo "github.com/blogweb/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		CommentRepo: newPgxCommentRepository(dbPool),
	}
}
