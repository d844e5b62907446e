package blogs

import "time"

type CreateBlogRequest struct {
	Title     string   `json:"title" validate:"required,min=1,max=100"`
	Content   string   `json:"content" validate:"required"`
	Summary   string   `json:"summary" validate:"required,min=1,max=200"`
	Tags      []string `json:"tags" validate:"omitempty,dive,max=64"`
	Published bool     `json:"published"`
}

// UpdateBlogRequest is the allow-listed update payload. Empty string means
// "keep the stored value"; Published is a pointer for the same reason.
// ImageURL set to "remove" clears the stored image.
type UpdateBlogRequest struct {
	Title     string   `json:"title" validate:"omitempty,min=1,max=100"`
	Content   string   `json:"content" validate:"omitempty"`
	Summary   string   `json:"summary" validate:"omitempty,min=1,max=200"`
	Tags      []string `json:"tags" validate:"omitempty,dive,max=64"`
	Published *bool    `json:"published"`
	ImageURL  string   `json:"image_url" validate:"omitempty"`
}

type BlogResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	Image     string    `json:"image,omitempty"`
	Author    string    `json:"author"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	Comments  []string  `json:"comments"`
	Views     int       `json:"views"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CommenterResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BlogCommentResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	User      CommenterResponse `json:"user"`
	CreatedAt time.Time         `json:"created_at"`
}

// BlogDetailResponse is the single-blog view with author and comments
// expanded.
type BlogDetailResponse struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Content   string                `json:"content"`
	Summary   string                `json:"summary"`
	Image     string                `json:"image,omitempty"`
	Author    AuthorResponse        `json:"author"`
	Tags      []string              `json:"tags"`
	Published bool                  `json:"published"`
	Comments  []BlogCommentResponse `json:"comments"`
	Views     int                   `json:"views"`
	Likes     int                   `json:"likes"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type LikeResponse struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}
