package blogService

import (
	"ProjectBlog/internal/api/blog"
	blogsRepository "ProjectBlog/internal/api/blog/repository"
	commentsRepository "ProjectBlog/internal/api/comment/repository"
	usersRepository "ProjectBlog/internal/api/auth/repository"
	"ProjectBlog/pkg/pagination"
	"ProjectBlog/pkg/s3"
	"ProjectBlog/pkg/utils"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, userID string, imageFile *multipart.FileHeader) (blogs.BlogResponse, error)
	GetBlogByID(ctx context.Context, id string) (blogs.BlogDetailResponse, error)
	GetPublishedBlogs(ctx context.Context, page, limit int, search string) ([]blogs.BlogResponse, pagination.Descriptor, error)
	GetUserBlogs(ctx context.Context, userID string, page, limit int) ([]blogs.BlogResponse, pagination.Descriptor, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, userID string, imageFile *multipart.FileHeader) (blogs.BlogResponse, error)
	DeleteBlog(ctx context.Context, id string, userID string) error
	LikeBlog(ctx context.Context, id string) (blogs.LikeResponse, error)
}

type blogsService struct {
	log          *logrus.Logger
	blogsRepo    blogsRepository.Repository
	commentsRepo commentsRepository.Repository
	usersRepo    usersRepository.Repository
	s3Client     s3.ItfS3
	utils        utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	commentsRepo commentsRepository.Repository,
	usersRepo usersRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:          log,
		blogsRepo:    blogsRepo,
		commentsRepo: commentsRepo,
		usersRepo:    usersRepo,
		s3Client:     s3Client,
		utils:        utils,
	}
}
