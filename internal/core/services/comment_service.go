package services

import (
	"context"
	"fmt"
	"time"

	"github.com/blogweb/backend/internal/apperrors"
	"github.com/blogweb/backend/internal/core/domain"
	portsrepo "github.com/blogweb/backend/internal/core/ports/repositories"
	portssvc "github.com/blogweb/backend/internal/core/ports/services"
	"github.com/blogweb/backend/internal/dto"
	"github.com/rs/xid"
)

// CommentService implements the comment feed: public listing, authenticated
// creation, and owner-only deletion.
type CommentService struct {
	commentRepo portsrepo.CommentRepositoryFacade
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

var _ portssvc.CommentSvcFacade = (*CommentService)(nil)

// CreateComment stores a new comment. The comment ID is an xid, so ids sort
// by creation order; author identity comes from the authenticated user.
func (s *CommentService) CreateComment(ctx context.Context, req dto.CreateCommentRequest, author domain.User) (*domain.Comment, error) {
	req.Normalize()

	now := time.Now()
	comment := domain.Comment{
		CommentID:      xid.New().String(),
		Content:        req.Content,
		AuthorID:       author.UserID,
		AuthorUsername: author.Username,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &comment, nil
}

// ListComments returns every comment, newest first.
func (s *CommentService) ListComments(ctx context.Context) ([]domain.Comment, error) {
	comments, err := s.commentRepo.FindComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// DeleteComment removes a comment on behalf of requesterID.
//
// Order matters: a syntactically broken id surfaces as a plain error (the
// HTTP layer answers 500, matching the reference behavior), a missing
// comment as ErrNotFound, and only then is ownership checked, so a
// non-existent comment can never produce a 403.
func (s *CommentService) DeleteComment(ctx context.Context, commentID string, requesterID string) error {
	if _, err := xid.FromString(commentID); err != nil {
		return fmt.Errorf("malformed comment id %q: %w", commentID, err)
	}

	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("failed to find comment: %w", err)
	}

	if comment.AuthorID != requesterID {
		return fmt.Errorf("user %s does not own comment %s: %w", requesterID, commentID, apperrors.ErrForbidden)
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
