package authService

import (
	"ProjectBlog/internal/api/auth"
	usersRepository "ProjectBlog/internal/api/auth/repository"
	"ProjectBlog/pkg/bcrypt"
	"ProjectBlog/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	RegisterUser(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	UpdateProfile(ctx context.Context, userID string, req auth.UpdateProfileRequest) (auth.UserResponse, error)
	GetUserByID(ctx context.Context, id string) (auth.UserResponse, error)
}

type authService struct {
	log       *logrus.Logger
	usersRepo usersRepository.Repository
	bcrypt    bcrypt.IBcrypt
	utils     utils.IUtils
}

func NewAuthService(
	log *logrus.Logger,
	usersRepo usersRepository.Repository,
	bcrypt bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:       log,
		usersRepo: usersRepo,
		bcrypt:    bcrypt,
		utils:     utils,
	}
}
