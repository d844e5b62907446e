package commentRepository

import (
	"ProjectBlog/internal/api/comment"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type blogRefDB struct {
	ID         sql.NullString `db:"id"`
	Title      sql.NullString `db:"title"`
	Content    sql.NullString `db:"content"`
	Summary    sql.NullString `db:"summary"`
	Image      sql.NullString `db:"image"`
	Author     sql.NullString `db:"author"`
	Tags       pq.StringArray `db:"tags"`
	Published  bool           `db:"published"`
	CommentIDs pq.StringArray `db:"comment_ids"`
	Views      sql.NullInt64  `db:"views"`
	Likes      sql.NullInt64  `db:"likes"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r *blogRefsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog blogRefDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBlogByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.Blog{}, comments.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return entity.Blog{
		ID:         blog.ID.String,
		Title:      blog.Title.String,
		Content:    blog.Content.String,
		Summary:    blog.Summary.String,
		Image:      blog.Image.String,
		Author:     blog.Author.String,
		Tags:       blog.Tags,
		Published:  blog.Published,
		CommentIDs: blog.CommentIDs,
		Views:      int(blog.Views.Int64),
		Likes:      int(blog.Likes.Int64),
		CreatedAt:  blog.CreatedAt,
		UpdatedAt:  blog.UpdatedAt,
	}, nil
}

func (r *blogRefsRepository) UpdateCommentIDs(ctx context.Context, blogID string, commentIDs pq.StringArray) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          blogID,
		"comment_ids": commentIDs,
	}

	query, args, err := sqlx.Named(queryUpdateBlogCommentIDs, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCommentIDs named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCommentIDs execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCommentIDs rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blogID,
		}).Warn("UpdateCommentIDs no rows affected")
		return comments.ErrBlogNotFound
	}

	return nil
}
