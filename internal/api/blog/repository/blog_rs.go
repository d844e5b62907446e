package blogRepository

import (
	"ProjectBlog/internal/api/blog"
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

type BlogDB struct {
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

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          blog.ID,
		"title":       blog.Title,
		"content":     blog.Content,
		"summary":     blog.Summary,
		"image":       blog.Image,
		"author":      blog.Author,
		"tags":        blog.Tags,
		"published":   blog.Published,
		"comment_ids": blog.CommentIDs,
		"views":       blog.Views,
		"likes":       blog.Likes,
		"created_at":  blog.CreatedAt,
		"updated_at":  blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateBlog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

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
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogsRepository) GetPublishedBlogs(ctx context.Context, search string, limit, offset int) ([]entity.Blog, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	countQuerySrc := queryCountPublishedBlogs
	listQuerySrc := queryGetPublishedBlogs
	countArgsKV := map[string]interface{}{}
	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	if search != "" {
		pattern := "%" + search + "%"
		countQuerySrc = queryCountSearchPublishedBlogs
		listQuerySrc = querySearchPublishedBlogs
		countArgsKV["search"] = pattern
		argsKV["search"] = pattern
	}

	total, err := r.countBlogs(ctx, countQuerySrc, countArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPublishedBlogs count err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(listQuerySrc, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPublishedBlogs named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	var blogsList []BlogDB
	if err := r.q.SelectContext(ctx, &blogsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPublishedBlogs execution err")
		return nil, 0, err
	}

	result := make([]entity.Blog, 0, len(blogsList))
	for _, blogDB := range blogsList {
		result = append(result, r.makeBlog(blogDB))
	}

	return result, total, nil
}

func (r *blogsRepository) GetBlogsByAuthor(ctx context.Context, author string, limit, offset int) ([]entity.Blog, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	total, err := r.countBlogs(ctx, queryCountBlogsByAuthor, map[string]interface{}{
		"author": author,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogsByAuthor count err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"author": author,
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetBlogsByAuthor, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogsByAuthor named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	var blogsList []BlogDB
	if err := r.q.SelectContext(ctx, &blogsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogsByAuthor execution err")
		return nil, 0, err
	}

	result := make([]entity.Blog, 0, len(blogsList))
	for _, blogDB := range blogsList {
		result = append(result, r.makeBlog(blogDB))
	}

	return result, total, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         blog.ID,
		"title":      blog.Title,
		"content":    blog.Content,
		"summary":    blog.Summary,
		"image":      blog.Image,
		"tags":       blog.Tags,
		"published":  blog.Published,
		"updated_at": time.Now(),
	}

	return r.execExpectingRow(ctx, requestID, "UpdateBlog", queryUpdateBlog, argsKV, blog.ID)
}

// UpdateViews and UpdateLikes write an absolute value the caller computed
// from a prior read. There is no locking between that read and this write,
// so concurrent increments to the same blog can lose updates.
func (r *blogsRepository) UpdateViews(ctx context.Context, id string, views int) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":    id,
		"views": views,
	}

	return r.execExpectingRow(ctx, requestID, "UpdateViews", queryUpdateBlogViews, argsKV, id)
}

func (r *blogsRepository) UpdateLikes(ctx context.Context, id string, likes int) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":    id,
		"likes": likes,
	}

	return r.execExpectingRow(ctx, requestID, "UpdateLikes", queryUpdateBlogLikes, argsKV, id)
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	return r.execExpectingRow(ctx, requestID, "DeleteBlog", queryDeleteBlog, argsKV, id)
}

func (r *blogsRepository) execExpectingRow(ctx context.Context, requestID, operation, querySrc string, argsKV map[string]interface{}, id string) error {
	query, args, err := sqlx.Named(querySrc, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn(operation + " no rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) countBlogs(ctx context.Context, querySrc string, argsKV map[string]interface{}) (int, error) {
	countQuery, countArgs, err := sqlx.Named(querySrc, argsKV)
	if err != nil {
		return 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	var total int
	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.Blog {
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
	}
}
