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
	"github.com/sirupsen/logrus"
)

type CommentDB struct {
	ID        sql.NullString `db:"id"`
	Content   sql.NullString `db:"content"`
	BlogID    sql.NullString `db:"blog_id"`
	UserID    sql.NullString `db:"user_id"`
	CreatedAt time.Time      `db:"created_at"`
}

type CommentDetailDB struct {
	CommentDB
	UserName sql.NullString `db:"user_name"`
}

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         comment.ID,
		"content":    comment.Content,
		"blog_id":    comment.BlogID,
		"user_id":    comment.UserID,
		"created_at": comment.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateComment named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentsRepository) GetCommentByID(ctx context.Context, id string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var comment CommentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCommentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID named query preparation err")
		return entity.Comment{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetCommentByID no rows found")
			return entity.Comment{}, comments.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID execution err")
		return entity.Comment{}, err
	}

	return makeComment(comment), nil
}

func (r *commentsRepository) GetCommentsByBlogID(ctx context.Context, blogID string) ([]entity.CommentDetail, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryGetCommentsByBlogID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByBlogID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var rows []CommentDetailDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByBlogID execution err")
		return nil, err
	}

	result := make([]entity.CommentDetail, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.CommentDetail{
			Comment:  makeComment(row.CommentDB),
			UserName: row.UserName.String,
		})
	}

	return result, nil
}

func (r *commentsRepository) DeleteComment(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteComment no rows affected")
		return comments.ErrCommentNotFound
	}

	return nil
}

func makeComment(comment CommentDB) entity.Comment {
	return entity.Comment{
		ID:        comment.ID.String,
		Content:   comment.Content.String,
		BlogID:    comment.BlogID.String,
		UserID:    comment.UserID.String,
		CreatedAt: comment.CreatedAt,
	}
}
