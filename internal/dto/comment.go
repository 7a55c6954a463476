package dto

import (
	"strings"
	"time"

	"github.com/blogweb/backend/internal/core/domain"
)

// CreateCommentRequest carries the comment creation payload. Only the content
// is client-controlled; author fields are filled from the authenticated user.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// Normalize trims the content; the required rule then rejects
// whitespace-only comments.
func (r *CreateCommentRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
}

// CommentResponse is the outward representation of a comment.
type CommentResponse struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	Author         string    `json:"author"`
	AuthorUsername string    `json:"authorUsername"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToCommentResponse converts a domain.Comment to its response DTO.
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:             c.CommentID,
		Content:        c.Content,
		Author:         c.AuthorID,
		AuthorUsername: c.AuthorUsername,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCommentResponseList converts a slice of domain comments.
func ToCommentResponseList(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = ToCommentResponse(&comments[i])
	}
	return out
}
