package models

import "time"

// Comment represents a row in the comments table.
type Comment struct {
	CommentID      string    `db:"comment_id"`
	Content        string    `db:"content"`
	AuthorID       string    `db:"author_id"`
	AuthorUsername string    `db:"author_username"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
