package domain

import "time"

// Comment represents a single entry in the public comment feed.
//
// CommentID is an xid string: it encodes creation time and a monotonic
// counter, so sorting by CommentID is sorting by creation order. The feed
// relies on that rather than on CreatedAt.
//
// AuthorUsername is a denormalized copy of the author's username taken at
// creation time; it is not kept in sync with later renames.
type Comment struct {
	CommentID      string    `json:"id"`
	Content        string    `json:"content"`
	AuthorID       string    `json:"author"`
	AuthorUsername string    `json:"authorUsername"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
