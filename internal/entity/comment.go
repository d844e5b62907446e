package entity

import "time"

type Comment struct {
	ID        string    `db:"id"`
	Content   string    `db:"content"`
	BlogID    string    `db:"blog_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// CommentDetail is a Comment joined with the commenter's display name.
type CommentDetail struct {
	Comment
	UserName string `db:"user_name"`
}
