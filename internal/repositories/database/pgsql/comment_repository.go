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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCommentRepository struct {
	db *pgxpool.Pool
}

func newPgxCommentRepository(db *pgxpool.Pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{db: db}
}

// Ensure PgxCommentRepository implements portsrepo.CommentRepositoryFacade
var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func toModelComment(d domain.Comment) models.Comment {
	return models.Comment{
		CommentID:      d.CommentID,
		Content:        d.Content,
		AuthorID:       d.AuthorID,
		AuthorUsername: d.AuthorUsername,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func toDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID:      m.CommentID,
		Content:        m.Content,
		AuthorID:       m.AuthorID,
		AuthorUsername: m.AuthorUsername,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	modelComment := toModelComment(comment)
	query := `
        INSERT INTO comments (comment_id, content, author_id, author_username, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		modelComment.CommentID,
		modelComment.Content,
		modelComment.AuthorID,
		modelComment.AuthorUsername,
		modelComment.CreatedAt,
		modelComment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := `
		SELECT comment_id, content, author_id, author_username, created_at, updated_at
		FROM comments
		WHERE comment_id = $1;
	`
	var modelComment models.Comment
	err := r.db.QueryRow(ctx, query, commentID).Scan(
		&modelComment.CommentID,
		&modelComment.Content,
		&modelComment.AuthorID,
		&modelComment.AuthorUsername,
		&modelComment.CreatedAt,
		&modelComment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment by ID %s: %w", commentID, err)
	}

	domainComment := toDomainComment(modelComment)
	return &domainComment, nil
}

// FindComments returns all comments newest first. comment_id is an xid
// string and therefore lexicographically ordered by creation time, so it is
// the sort key rather than created_at.
func (r *PgxCommentRepository) FindComments(ctx context.Context) ([]domain.Comment, error) {
	query := `
        SELECT comment_id, content, author_id, author_username, created_at, updated_at
        FROM comments
        ORDER BY comment_id DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var modelComment models.Comment
		err := rows.Scan(
			&modelComment.CommentID,
			&modelComment.Content,
			&modelComment.AuthorID,
			&modelComment.AuthorUsername,
			&modelComment.CreatedAt,
			&modelComment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, toDomainComment(modelComment))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1;`
	tag, err := r.db.Exec(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
