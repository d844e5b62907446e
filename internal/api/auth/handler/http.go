package authHandler

import (
	authService "ProjectBlog/internal/api/auth/service"
	"ProjectBlog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.IAuthService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as authService.IAuthService,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: as,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/register", h.middleware.NewRateLimiter, h.Register)
	auth.Post("/login", h.middleware.NewRateLimiter, h.Login)

	users := srv.Group("/users")
	users.Put("/profile", h.middleware.NewTokenMiddleware, h.UpdateProfile)
	users.Get("/:id", h.GetUserByID)
}
