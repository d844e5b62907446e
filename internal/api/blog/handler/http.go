package blogHandler

import (
	blogsService "ProjectBlog/internal/api/blog/service"
	"ProjectBlog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	// Create blog (requires auth). Registered without a trailing slash so
	// the route resolves under StrictRouting.
	blogs.Post("", h.middleware.NewTokenMiddleware, h.CreateBlog)

	// Public listing (published only)
	blogs.Get("", h.GetPublishedBlogs)

	// Own blogs, drafts included. Registered before "/:id" so the literal
	// segment wins.
	blogs.Get("/user", h.middleware.NewTokenMiddleware, h.GetUserBlogs)

	blogs.Get("/:id", h.GetBlogByID)

	// Update and delete (requires auth)
	blogs.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBlog)
	blogs.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBlog)

	blogs.Post("/:id/like", h.middleware.NewTokenMiddleware, h.LikeBlog)
}
