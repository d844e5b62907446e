package commentService

import (
	"ProjectBlog/internal/api/comment"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// CreateComment inserts the comment and appends its id to the parent blog's
// comment_ids inside one transaction. Either both writes land or neither
// does, so a comment row never exists without its blog reference.
func (s *commentsService) CreateComment(ctx context.Context, req comments.CreateCommentRequest, user entity.UserLoginData) (comments.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return comments.CommentResponse{}, err
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.GetBlogByID(ctx, req.BlogID)
	if err != nil {
		if errors.Is(err, comments.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    req.BlogID,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    req.BlogID,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return comments.CommentResponse{}, err
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return comments.CommentResponse{}, err
	}

	comment := entity.Comment{
		ID:        commentID,
		Content:   req.Content,
		BlogID:    blog.ID,
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}

	if err := repo.Comments.CreateComment(ctx, comment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    req.BlogID,
			"error":      err.Error(),
		}).Error("Failed to create comment")
		return comments.CommentResponse{}, comments.ErrCreateComment
	}

	blog.CommentIDs = append(blog.CommentIDs, commentID)
	if err := repo.Blogs.UpdateCommentIDs(ctx, blog.ID, blog.CommentIDs); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    req.BlogID,
			"error":      err.Error(),
		}).Error("Failed to update blog comment ids")
		return comments.CommentResponse{}, comments.ErrCreateComment
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return comments.CommentResponse{}, comments.ErrCreateComment
	}

	return comments.CommentResponse{
		ID:      comment.ID,
		Content: comment.Content,
		Blog:    comment.BlogID,
		User: comments.CommenterResponse{
			ID:   user.ID,
			Name: user.Name,
		},
		CreatedAt: comment.CreatedAt,
	}, nil
}

// GetCommentsByBlogID lists by the blog id alone, without checking the blog
// still exists. Blog deletion leaves its comments behind, and those orphans
// have to stay listable and deletable.
func (s *commentsService) GetCommentsByBlogID(ctx context.Context, blogID string) ([]comments.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	commentList, err := repo.Comments.GetCommentsByBlogID(ctx, blogID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to get comments")
		return nil, err
	}

	result := make([]comments.CommentResponse, 0, len(commentList))
	for _, comment := range commentList {
		result = append(result, comments.CommentResponse{
			ID:      comment.ID,
			Content: comment.Content,
			Blog:    comment.BlogID,
			User: comments.CommenterResponse{
				ID:   comment.UserID,
				Name: comment.UserName,
			},
			CreatedAt: comment.CreatedAt,
		})
	}

	return result, nil
}

// DeleteComment removes the comment row, then repairs the parent blog's
// comment_ids. A missing parent blog is tolerated: the comment may be an
// orphan left behind by an earlier blog deletion, and it still has to be
// removable.
func (s *commentsService) DeleteComment(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	comment, err := repo.Comments.GetCommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Comment not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get comment")
		}
		return err
	}

	if comment.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"id":            id,
			"comment_owner": comment.UserID,
			"request_user":  userID,
		}).Warn("User is not the owner of the comment")
		return comments.ErrCommentNotOwned
	}

	if err := repo.Comments.DeleteComment(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete comment")
		return comments.ErrDeleteComment
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, comment.BlogID)
	if err != nil {
		if !errors.Is(err, comments.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    comment.BlogID,
				"error":      err.Error(),
			}).Error("Failed to get blog")
			return comments.ErrDeleteComment
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"blog_id":    comment.BlogID,
		}).Warn("Parent blog missing, deleting orphaned comment")
	} else {
		blog.CommentIDs = removeCommentID(blog.CommentIDs, id)
		if err := repo.Blogs.UpdateCommentIDs(ctx, blog.ID, blog.CommentIDs); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blog.ID,
				"error":      err.Error(),
			}).Error("Failed to update blog comment ids")
			return comments.ErrDeleteComment
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return comments.ErrDeleteComment
	}

	return nil
}

func removeCommentID(commentIDs []string, id string) []string {
	result := make([]string, 0, len(commentIDs))
	for _, commentID := range commentIDs {
		if commentID != id {
			result = append(result, commentID)
		}
	}
	return result
}
