package services

import (
	"context"

	"github.com/blogweb/backend/internal/core/domain"
	"github.com/blogweb/backend/internal/dto"
)

// CommentReaderSvc defines read operations for the comment feed
type CommentReaderSvc interface {
	// ListComments returns every comment, newest first.
	ListComments(ctx context.Context) ([]domain.Comment, error)
}

// CommentWriterSvc defines mutating operations on the comment feed
type CommentWriterSvc interface {
	// CreateComment stores a new comment. Author identity comes from the
	// authenticated user, never from client input.
	CreateComment(ctx context.Context, req dto.CreateCommentRequest, author domain.User) (*domain.Comment, error)

	// DeleteComment removes a comment if, and only if, requesterID matches
	// the comment's author. Returns apperrors.ErrNotFound for a missing
	// comment (checked before ownership) and apperrors.ErrForbidden for a
	// non-owner.
	DeleteComment(ctx context.Context, commentID string, requesterID string) error
}

// CommentSvcFacade combines all comment-related service interfaces
type CommentSvcFacade interface {
	CommentReaderSvc
	CommentWriterSvc
}
