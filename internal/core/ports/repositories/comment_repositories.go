package repositories

import (
	"context"

	"github.com/blogweb/backend/internal/core/domain"
)

// CommentReader defines read operations for comment data
type CommentReader interface {
	// FindCommentByID retrieves a specific comment by its ID.
	// Returns apperrors.ErrNotFound if no such comment exists.
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)

	// FindComments retrieves all comments, newest first (by comment ID,
	// which encodes creation order).
	FindComments(ctx context.Context) ([]domain.Comment, error)
}

// CommentWriter defines write operations for comment data
type CommentWriter interface {
	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// DeleteComment removes a comment by ID.
	// Returns apperrors.ErrNotFound if no such comment exists.
	DeleteComment(ctx context.Context, commentID string) error
}

// CommentRepositoryFacade combines all comment-related repository interfaces
type CommentRepositoryFacade interface {
	CommentReader
	CommentWriter
}
