package commentService

import (
	"ProjectBlog/internal/api/comment"
	commentsRepository "ProjectBlog/internal/api/comment/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICommentsService interface {
	CreateComment(ctx context.Context, req comments.CreateCommentRequest, user entity.UserLoginData) (comments.CommentResponse, error)
	GetCommentsByBlogID(ctx context.Context, blogID string) ([]comments.CommentResponse, error)
	DeleteComment(ctx context.Context, id string, userID string) error
}

type commentsService struct {
	log          *logrus.Logger
	commentsRepo commentsRepository.Repository
	utils        utils.IUtils
}

func NewCommentsService(
	log *logrus.Logger,
	commentsRepo commentsRepository.Repository,
	utils utils.IUtils,
) ICommentsService {
	return &commentsService{
		log:          log,
		commentsRepo: commentsRepo,
		utils:        utils,
	}
}
