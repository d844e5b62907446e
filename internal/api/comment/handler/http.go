package commentHandler

import (
	commentsService "ProjectBlog/internal/api/comment/service"
	"ProjectBlog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommentsHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	commentsService commentsService.ICommentsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs commentsService.ICommentsService,
) *CommentsHandler {
	return &CommentsHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		commentsService: cs,
	}
}

func (h *CommentsHandler) Start(srv fiber.Router) {
	comments := srv.Group("/comments")

	// Create and delete (requires auth). The create route carries no trailing
	// slash so it resolves under StrictRouting.
	comments.Post("", h.middleware.NewTokenMiddleware, h.CreateComment)
	comments.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteComment)

	// Public listing by blog
	comments.Get("/:blogId", h.GetCommentsByBlogID)
}
