package comments

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
	BlogID  string `json:"blog_id" validate:"required"`
}

type CommenterResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CommentResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Blog      string            `json:"blog"`
	User      CommenterResponse `json:"user"`
	CreatedAt time.Time         `json:"created_at"`
}
