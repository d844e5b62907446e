package entity

import (
	"time"

	"github.com/lib/pq"
)

// Blog carries two denormalized pieces of state: the view/like counters and
// the ordered set of comment ids. CommentIDs is written only by the comment
// service, never from client input.
type Blog struct {
	ID         string         `db:"id"`
	Title      string         `db:"title"`
	Content    string         `db:"content"`
	Summary    string         `db:"summary"`
	Image      string         `db:"image"`
	Author     string         `db:"author"`
	Tags       pq.StringArray `db:"tags"`
	Published  bool           `db:"published"`
	CommentIDs pq.StringArray `db:"comment_ids"`
	Views      int            `db:"views"`
	Likes      int            `db:"likes"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}
