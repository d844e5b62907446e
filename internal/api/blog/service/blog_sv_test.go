package blogService

import (
	"ProjectBlog/internal/api/blog"
	usersRepository "ProjectBlog/internal/api/auth/repository"
	blogsRepository "ProjectBlog/internal/api/blog/repository"
	commentsRepository "ProjectBlog/internal/api/comment/repository"
	"ProjectBlog/internal/entity"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blogStore struct {
	blogs map[string]entity.Blog
}

func newBlogStore() *blogStore {
	return &blogStore{blogs: make(map[string]entity.Blog)}
}

func (s *blogStore) CreateBlog(_ context.Context, blog entity.Blog) error {
	s.blogs[blog.ID] = blog
	return nil
}

func (s *blogStore) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	blog, ok := s.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return blog, nil
}

func (s *blogStore) GetPublishedBlogs(_ context.Context, search string, limit, offset int) ([]entity.Blog, int, error) {
	matched := make([]entity.Blog, 0)
	for _, blog := range s.blogs {
		if !blog.Published {
			continue
		}
		if search != "" && !matchesSearch(blog, search) {
			continue
		}
		matched = append(matched, blog)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, limit, offset), len(matched), nil
}

func (s *blogStore) GetBlogsByAuthor(_ context.Context, author string, limit, offset int) ([]entity.Blog, int, error) {
	matched := make([]entity.Blog, 0)
	for _, blog := range s.blogs {
		if blog.Author == author {
			matched = append(matched, blog)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, limit, offset), len(matched), nil
}

func (s *blogStore) UpdateBlog(_ context.Context, blog entity.Blog) error {
	stored, ok := s.blogs[blog.ID]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	stored.Title = blog.Title
	stored.Content = blog.Content
	stored.Summary = blog.Summary
	stored.Image = blog.Image
	stored.Tags = blog.Tags
	stored.Published = blog.Published
	stored.UpdatedAt = blog.UpdatedAt
	s.blogs[blog.ID] = stored
	return nil
}

func (s *blogStore) UpdateViews(_ context.Context, id string, views int) error {
	blog, ok := s.blogs[id]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	blog.Views = views
	s.blogs[id] = blog
	return nil
}

func (s *blogStore) UpdateLikes(_ context.Context, id string, likes int) error {
	blog, ok := s.blogs[id]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	blog.Likes = likes
	s.blogs[id] = blog
	return nil
}

func (s *blogStore) DeleteBlog(_ context.Context, id string) error {
	if _, ok := s.blogs[id]; !ok {
		return blogs.ErrBlogNotFound
	}
	delete(s.blogs, id)
	return nil
}

func matchesSearch(blog entity.Blog, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(blog.Title), needle) ||
		strings.Contains(strings.ToLower(blog.Content), needle) ||
		strings.Contains(strings.ToLower(blog.Summary), needle)
}

func paginate(list []entity.Blog, limit, offset int) []entity.Blog {
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

type fakeBlogsRepo struct {
	store *blogStore
}

func (f *fakeBlogsRepo) NewClient(bool) (blogsRepository.Client, error) {
	return blogsRepository.Client{
		Blogs:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type commentStore struct {
	comments map[string]entity.CommentDetail
	blogs    *blogStore
}

func (s *commentStore) CreateComment(_ context.Context, comment entity.Comment) error {
	s.comments[comment.ID] = entity.CommentDetail{Comment: comment}
	return nil
}

func (s *commentStore) GetCommentByID(context.Context, string) (entity.Comment, error) {
	return entity.Comment{}, nil
}

func (s *commentStore) GetCommentsByBlogID(_ context.Context, blogID string) ([]entity.CommentDetail, error) {
	result := make([]entity.CommentDetail, 0)
	for _, comment := range s.comments {
		if comment.BlogID == blogID {
			result = append(result, comment)
		}
	}
	return result, nil
}

func (s *commentStore) DeleteComment(context.Context, string) error {
	return nil
}

type blogRefStore struct {
	blogs *blogStore
}

func (s *blogRefStore) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	return s.blogs.GetBlogByID(ctx, id)
}

func (s *blogRefStore) UpdateCommentIDs(_ context.Context, blogID string, commentIDs pq.StringArray) error {
	blog, ok := s.blogs.blogs[blogID]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	blog.CommentIDs = commentIDs
	s.blogs.blogs[blogID] = blog
	return nil
}

type fakeCommentsRepo struct {
	comments *commentStore
	blogs    *blogStore
}

func (f *fakeCommentsRepo) NewClient(bool) (commentsRepository.Client, error) {
	return commentsRepository.Client{
		Comments: f.comments,
		Blogs:    &blogRefStore{blogs: f.blogs},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type userStore struct {
	users map[string]entity.User
}

func (s *userStore) CreateUser(_ context.Context, user entity.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *userStore) GetByID(_ context.Context, id string) (entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return entity.User{}, fmt.Errorf("user %s not found", id)
	}
	return user, nil
}

func (s *userStore) GetByEmail(context.Context, string) (entity.User, error) {
	return entity.User{}, nil
}

func (s *userStore) UpdateUser(context.Context, entity.User) error {
	return nil
}

type fakeUsersRepo struct {
	store *userStore
}

func (f *fakeUsersRepo) NewClient(bool) (usersRepository.Client, error) {
	return usersRepository.Client{
		Users:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeS3 struct {
	deleted []string
}

func (f *fakeS3) UploadFile(file *multipart.FileHeader) (string, error) {
	return "https://bucket.example.com/" + file.Filename, nil
}

func (f *fakeS3) PresignUrl(fileName string) (string, error) {
	return fileName + "?signed", nil
}

func (f *fakeS3) DeleteFile(fileName string) error {
	f.deleted = append(f.deleted, fileName)
	return nil
}

type fakeUtils struct {
	seq int
}

func (f *fakeUtils) NewULIDFromTimestamp(time.Time) (string, error) {
	f.seq++
	return fmt.Sprintf("blog-%03d", f.seq), nil
}

func (f *fakeUtils) ValidateImageFile(*multipart.FileHeader) error {
	return nil
}

type blogServiceFixture struct {
	service  IBlogsService
	blogs    *blogStore
	comments *commentStore
	users    *userStore
	s3       *fakeS3
}

func newBlogServiceFixture() *blogServiceFixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	blogs := newBlogStore()
	comments := &commentStore{comments: make(map[string]entity.CommentDetail), blogs: blogs}
	users := &userStore{users: make(map[string]entity.User)}
	s3 := &fakeS3{}

	service := NewBlogsService(
		logger,
		&fakeBlogsRepo{store: blogs},
		&fakeCommentsRepo{comments: comments, blogs: blogs},
		&fakeUsersRepo{store: users},
		s3,
		&fakeUtils{},
	)

	return &blogServiceFixture{
		service:  service,
		blogs:    blogs,
		comments: comments,
		users:    users,
		s3:       s3,
	}
}

func seedBlog(f *blogServiceFixture, id, author string, published bool, createdAt time.Time) entity.Blog {
	blog := entity.Blog{
		ID:         id,
		Title:      "Title " + id,
		Content:    "Content " + id,
		Summary:    "Summary " + id,
		Author:     author,
		Tags:       pq.StringArray{"go"},
		Published:  published,
		CommentIDs: pq.StringArray{},
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	f.blogs.blogs[id] = blog
	return blog
}

func TestCreateBlog(t *testing.T) {
	f := newBlogServiceFixture()

	result, err := f.service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:     "First Post",
		Content:   "Hello world",
		Summary:   "Intro",
		Tags:      []string{"go", "fiber"},
		Published: true,
	}, "user-1", nil)
	require.NoError(t, err)

	assert.Equal(t, "First Post", result.Title)
	assert.Equal(t, "user-1", result.Author)
	assert.Zero(t, result.Views)
	assert.Zero(t, result.Likes)
	assert.Empty(t, result.Comments)

	stored, ok := f.blogs.blogs[result.ID]
	require.True(t, ok)
	assert.True(t, stored.Published)
	assert.Empty(t, stored.CommentIDs)
}

func TestGetBlogByID_IncrementsViews(t *testing.T) {
	f := newBlogServiceFixture()
	f.users.users["user-1"] = entity.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}
	seedBlog(f, "blog-1", "user-1", true, time.Now())

	for i := 1; i <= 3; i++ {
		result, err := f.service.GetBlogByID(context.Background(), "blog-1")
		require.NoError(t, err)
		assert.Equal(t, i, result.Views)
	}

	assert.Equal(t, 3, f.blogs.blogs["blog-1"].Views)
}

func TestGetBlogByID_ExpandsAuthorAndComments(t *testing.T) {
	f := newBlogServiceFixture()
	f.users.users["user-1"] = entity.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}
	seedBlog(f, "blog-1", "user-1", true, time.Now())
	f.comments.comments["c-1"] = entity.CommentDetail{
		Comment:  entity.Comment{ID: "c-1", Content: "Nice", BlogID: "blog-1", UserID: "user-2"},
		UserName: "Bob",
	}

	result, err := f.service.GetBlogByID(context.Background(), "blog-1")
	require.NoError(t, err)

	assert.Equal(t, "Alice", result.Author.Name)
	assert.Equal(t, "alice@example.com", result.Author.Email)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, "Bob", result.Comments[0].User.Name)
}

func TestGetBlogByID_NotFound(t *testing.T) {
	f := newBlogServiceFixture()

	_, err := f.service.GetBlogByID(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestGetPublishedBlogs_ExcludesDrafts(t *testing.T) {
	f := newBlogServiceFixture()
	seedBlog(f, "blog-1", "user-1", true, time.Now())
	seedBlog(f, "blog-2", "user-1", false, time.Now())

	result, p, err := f.service.GetPublishedBlogs(context.Background(), 1, 10, "")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "blog-1", result[0].ID)
	assert.Equal(t, 1, p.Total)
	assert.Equal(t, 1, p.Pages)
}

func TestGetPublishedBlogs_Search(t *testing.T) {
	f := newBlogServiceFixture()
	base := time.Now()

	blog := seedBlog(f, "blog-1", "user-1", true, base)
	blog.Title = "Concurrency in Go"
	f.blogs.blogs[blog.ID] = blog

	other := seedBlog(f, "blog-2", "user-1", true, base.Add(time.Minute))
	other.Title = "Cooking pasta"
	other.Content = "Boil water"
	other.Summary = "Dinner"
	f.blogs.blogs[other.ID] = other

	result, p, err := f.service.GetPublishedBlogs(context.Background(), 1, 10, "CONCURRENCY")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "blog-1", result[0].ID)
	assert.Equal(t, 1, p.Total)
}

func TestGetPublishedBlogs_Pagination(t *testing.T) {
	f := newBlogServiceFixture()
	base := time.Now()
	for i := 0; i < 25; i++ {
		seedBlog(f, fmt.Sprintf("blog-%02d", i), "user-1", true, base.Add(time.Duration(i)*time.Minute))
	}

	result, p, err := f.service.GetPublishedBlogs(context.Background(), 2, 10, "")
	require.NoError(t, err)

	assert.Len(t, result, 10)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 2, p.Page)

	// Newest first, so page two starts at the eleventh newest
	assert.Equal(t, "blog-14", result[0].ID)
}

func TestGetUserBlogs_IncludesDrafts(t *testing.T) {
	f := newBlogServiceFixture()
	seedBlog(f, "blog-1", "user-1", true, time.Now())
	seedBlog(f, "blog-2", "user-1", false, time.Now().Add(time.Minute))
	seedBlog(f, "blog-3", "user-2", true, time.Now())

	result, p, err := f.service.GetUserBlogs(context.Background(), "user-1", 1, 10)
	require.NoError(t, err)

	assert.Len(t, result, 2)
	assert.Equal(t, 2, p.Total)
}

func TestUpdateBlog_NotOwnerLeavesBlogUnchanged(t *testing.T) {
	f := newBlogServiceFixture()
	original := seedBlog(f, "blog-1", "user-1", true, time.Now())

	_, err := f.service.UpdateBlog(context.Background(), "blog-1", blogs.UpdateBlogRequest{
		Title: "Hijacked",
	}, "user-2", nil)
	assert.ErrorIs(t, err, blogs.ErrBlogNotOwned)

	assert.Equal(t, original.Title, f.blogs.blogs["blog-1"].Title)
}

func TestUpdateBlog_NotFoundBeforeOwnership(t *testing.T) {
	f := newBlogServiceFixture()

	_, err := f.service.UpdateBlog(context.Background(), "missing", blogs.UpdateBlogRequest{
		Title: "New",
	}, "user-2", nil)
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestUpdateBlog_PartialUpdate(t *testing.T) {
	f := newBlogServiceFixture()
	seedBlog(f, "blog-1", "user-1", true, time.Now())

	unpublish := false
	result, err := f.service.UpdateBlog(context.Background(), "blog-1", blogs.UpdateBlogRequest{
		Title:     "Renamed",
		Published: &unpublish,
	}, "user-1", nil)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", result.Title)
	assert.False(t, result.Published)

	stored := f.blogs.blogs["blog-1"]
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, "Content blog-1", stored.Content)
	assert.False(t, stored.Published)
}

func TestDeleteBlog(t *testing.T) {
	f := newBlogServiceFixture()
	blog := seedBlog(f, "blog-1", "user-1", true, time.Now())
	blog.Image = "https://bucket.example.com/cover.png"
	f.blogs.blogs[blog.ID] = blog

	err := f.service.DeleteBlog(context.Background(), "blog-1", "user-1")
	require.NoError(t, err)

	_, ok := f.blogs.blogs["blog-1"]
	assert.False(t, ok)
	assert.Contains(t, f.s3.deleted, "cover.png")
}

func TestDeleteBlog_NotOwner(t *testing.T) {
	f := newBlogServiceFixture()
	seedBlog(f, "blog-1", "user-1", true, time.Now())

	err := f.service.DeleteBlog(context.Background(), "blog-1", "user-2")
	assert.ErrorIs(t, err, blogs.ErrBlogNotOwned)

	_, ok := f.blogs.blogs["blog-1"]
	assert.True(t, ok)
}

func TestLikeBlog(t *testing.T) {
	f := newBlogServiceFixture()
	seedBlog(f, "blog-1", "user-1", true, time.Now())

	for i := 1; i <= 5; i++ {
		result, err := f.service.LikeBlog(context.Background(), "blog-1")
		require.NoError(t, err)
		assert.Equal(t, i, result.Likes)
	}

	assert.Equal(t, 5, f.blogs.blogs["blog-1"].Likes)
}

func TestLikeBlog_NotFound(t *testing.T) {
	f := newBlogServiceFixture()

	_, err := f.service.LikeBlog(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}
