package auth

import "ProjectBlog/pkg/response"

var (
	ErrUserNotFound           = response.NewError(404, "user not found")
	ErrEmailAlreadyExists     = response.NewError(409, "email already registered")
	ErrInvalidEmailOrPassword = response.NewError(400, "invalid email or password")
	ErrCreateUser             = response.NewError(500, "failed to create user")
	ErrUpdateUser             = response.NewError(500, "failed to update user")
)
