package commentService

import (
	"ProjectBlog/internal/api/comment"
	commentsRepository "ProjectBlog/internal/api/comment/repository"
	"ProjectBlog/internal/entity"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentStore struct {
	comments map[string]entity.Comment
}

func (s *commentStore) CreateComment(_ context.Context, comment entity.Comment) error {
	s.comments[comment.ID] = comment
	return nil
}

func (s *commentStore) GetCommentByID(_ context.Context, id string) (entity.Comment, error) {
	comment, ok := s.comments[id]
	if !ok {
		return entity.Comment{}, comments.ErrCommentNotFound
	}
	return comment, nil
}

func (s *commentStore) GetCommentsByBlogID(_ context.Context, blogID string) ([]entity.CommentDetail, error) {
	result := make([]entity.CommentDetail, 0)
	for _, comment := range s.comments {
		if comment.BlogID == blogID {
			result = append(result, entity.CommentDetail{
				Comment:  comment,
				UserName: "User " + comment.UserID,
			})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *commentStore) DeleteComment(_ context.Context, id string) error {
	if _, ok := s.comments[id]; !ok {
		return comments.ErrCommentNotFound
	}
	delete(s.comments, id)
	return nil
}

type blogRefStore struct {
	blogs map[string]entity.Blog
}

func (s *blogRefStore) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	blog, ok := s.blogs[id]
	if !ok {
		return entity.Blog{}, comments.ErrBlogNotFound
	}
	return blog, nil
}

func (s *blogRefStore) UpdateCommentIDs(_ context.Context, blogID string, commentIDs pq.StringArray) error {
	blog, ok := s.blogs[blogID]
	if !ok {
		return comments.ErrBlogNotFound
	}
	blog.CommentIDs = commentIDs
	s.blogs[blogID] = blog
	return nil
}

type fakeCommentsRepo struct {
	comments *commentStore
	blogs    *blogRefStore
}

func (f *fakeCommentsRepo) NewClient(bool) (commentsRepository.Client, error) {
	return commentsRepository.Client{
		Comments: f.comments,
		Blogs:    f.blogs,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeUtils struct {
	seq int
}

func (f *fakeUtils) NewULIDFromTimestamp(time.Time) (string, error) {
	f.seq++
	return fmt.Sprintf("comment-%03d", f.seq), nil
}

func (f *fakeUtils) ValidateImageFile(*multipart.FileHeader) error {
	return nil
}

type commentServiceFixture struct {
	service  ICommentsService
	comments *commentStore
	blogs    *blogRefStore
}

func newCommentServiceFixture() *commentServiceFixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	comments := &commentStore{comments: make(map[string]entity.Comment)}
	blogs := &blogRefStore{blogs: make(map[string]entity.Blog)}

	service := NewCommentsService(
		logger,
		&fakeCommentsRepo{comments: comments, blogs: blogs},
		&fakeUtils{},
	)

	return &commentServiceFixture{
		service:  service,
		comments: comments,
		blogs:    blogs,
	}
}

func seedBlog(f *commentServiceFixture, id string, commentIDs ...string) {
	f.blogs.blogs[id] = entity.Blog{
		ID:         id,
		Title:      "Title " + id,
		Author:     "user-1",
		CommentIDs: commentIDs,
	}
}

func TestCreateComment(t *testing.T) {
	f := newCommentServiceFixture()
	seedBlog(f, "blog-1")

	result, err := f.service.CreateComment(context.Background(), comments.CreateCommentRequest{
		Content: "Great post",
		BlogID:  "blog-1",
	}, entity.UserLoginData{ID: "user-2", Name: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, "Great post", result.Content)
	assert.Equal(t, "blog-1", result.Blog)
	assert.Equal(t, "Bob", result.User.Name)

	stored, ok := f.comments.comments[result.ID]
	require.True(t, ok)
	assert.Equal(t, "blog-1", stored.BlogID)

	// The parent blog references the new comment
	assert.Contains(t, []string(f.blogs.blogs["blog-1"].CommentIDs), result.ID)
}

func TestCreateComment_BlogNotFound(t *testing.T) {
	f := newCommentServiceFixture()

	_, err := f.service.CreateComment(context.Background(), comments.CreateCommentRequest{
		Content: "Great post",
		BlogID:  "missing",
	}, entity.UserLoginData{ID: "user-2", Name: "Bob"})
	assert.ErrorIs(t, err, comments.ErrBlogNotFound)

	assert.Empty(t, f.comments.comments)
}

func TestGetCommentsByBlogID_NewestFirst(t *testing.T) {
	f := newCommentServiceFixture()
	seedBlog(f, "blog-1", "c-1", "c-2")
	base := time.Now()
	f.comments.comments["c-1"] = entity.Comment{ID: "c-1", Content: "first", BlogID: "blog-1", UserID: "user-2", CreatedAt: base}
	f.comments.comments["c-2"] = entity.Comment{ID: "c-2", Content: "second", BlogID: "blog-1", UserID: "user-3", CreatedAt: base.Add(time.Minute)}

	result, err := f.service.GetCommentsByBlogID(context.Background(), "blog-1")
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "c-2", result[0].ID)
	assert.Equal(t, "c-1", result[1].ID)
}

func TestGetCommentsByBlogID_ListsOrphans(t *testing.T) {
	f := newCommentServiceFixture()
	f.comments.comments["c-1"] = entity.Comment{ID: "c-1", Content: "still here", BlogID: "gone", UserID: "user-2"}

	result, err := f.service.GetCommentsByBlogID(context.Background(), "gone")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "c-1", result[0].ID)
}

func TestGetCommentsByBlogID_UnknownBlogIsEmpty(t *testing.T) {
	f := newCommentServiceFixture()

	result, err := f.service.GetCommentsByBlogID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestDeleteComment(t *testing.T) {
	f := newCommentServiceFixture()
	seedBlog(f, "blog-1", "c-1", "c-2")
	f.comments.comments["c-1"] = entity.Comment{ID: "c-1", BlogID: "blog-1", UserID: "user-2"}
	f.comments.comments["c-2"] = entity.Comment{ID: "c-2", BlogID: "blog-1", UserID: "user-3"}

	err := f.service.DeleteComment(context.Background(), "c-1", "user-2")
	require.NoError(t, err)

	_, ok := f.comments.comments["c-1"]
	assert.False(t, ok)
	assert.Equal(t, pq.StringArray{"c-2"}, f.blogs.blogs["blog-1"].CommentIDs)
}

func TestDeleteComment_NotOwnerLeavesCommentInPlace(t *testing.T) {
	f := newCommentServiceFixture()
	seedBlog(f, "blog-1", "c-1")
	f.comments.comments["c-1"] = entity.Comment{ID: "c-1", BlogID: "blog-1", UserID: "user-2"}

	err := f.service.DeleteComment(context.Background(), "c-1", "user-3")
	assert.ErrorIs(t, err, comments.ErrCommentNotOwned)

	_, ok := f.comments.comments["c-1"]
	assert.True(t, ok)
	assert.Equal(t, pq.StringArray{"c-1"}, f.blogs.blogs["blog-1"].CommentIDs)
}

func TestDeleteComment_NotFoundBeforeOwnership(t *testing.T) {
	f := newCommentServiceFixture()

	err := f.service.DeleteComment(context.Background(), "missing", "user-3")
	assert.ErrorIs(t, err, comments.ErrCommentNotFound)
}

func TestDeleteComment_ToleratesMissingBlog(t *testing.T) {
	f := newCommentServiceFixture()
	f.comments.comments["c-1"] = entity.Comment{ID: "c-1", BlogID: "gone", UserID: "user-2"}

	err := f.service.DeleteComment(context.Background(), "c-1", "user-2")
	require.NoError(t, err)

	_, ok := f.comments.comments["c-1"]
	assert.False(t, ok)
}
