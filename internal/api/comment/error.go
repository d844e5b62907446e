package comments

import "ProjectBlog/pkg/response"

var (
	ErrCommentNotFound = response.NewError(404, "comment not found")
	ErrCommentNotOwned = response.NewError(403, "comment does not belong to user")
	ErrBlogNotFound    = response.NewError(404, "blog not found")
	ErrCreateComment   = response.NewError(500, "failed to create comment")
	ErrDeleteComment   = response.NewError(500, "failed to delete comment")
)
