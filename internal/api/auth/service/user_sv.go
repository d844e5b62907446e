package authService

import (
	"ProjectBlog/internal/api/auth"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	jwtPkg "ProjectBlog/pkg/jwt"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const accessTokenTTL = 24 * time.Hour

func (s *authService) RegisterUser(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}
	defer repo.Rollback()

	_, err = repo.Users.GetByEmail(ctx, req.Email)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Email already registered")
		return auth.UserResponse{}, auth.ErrEmailAlreadyExists
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check existing email")
		return auth.UserResponse{}, err
	}

	hashedPassword, err := s.bcrypt.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.UserResponse{}, err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.UserResponse{}, err
	}

	now := time.Now()

	user := entity.User{
		ID:        userID,
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.UserResponse{}, auth.ErrCreateUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return auth.UserResponse{}, auth.ErrCreateUser
	}

	return makeUserResponse(user), nil
}

// Login reports the same error for an unknown email and a wrong password so
// the response does not reveal which accounts exist.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt with unknown email")
			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginResponse{}, err
	}

	if err := s.bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Login attempt with wrong password")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	accessToken, expiredAt, err := jwtPkg.Sign(map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiredAt:   time.Unix(expiredAt, 0),
		User:        makeUserResponse(user),
	}, nil
}

// UpdateProfile always targets the authenticated principal. The user id comes
// from the verified token, never from the request body or path.
func (s *authService) UpdateProfile(ctx context.Context, userID string, req auth.UpdateProfileRequest) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}
	defer repo.Rollback()

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         userID,
			}).Warn("User not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         userID,
				"error":      err.Error(),
			}).Error("Failed to get user")
		}
		return auth.UserResponse{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}

	user.UpdatedAt = time.Now()

	if err := repo.Users.UpdateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         userID,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return auth.UserResponse{}, auth.ErrUpdateUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return auth.UserResponse{}, auth.ErrUpdateUser
	}

	return makeUserResponse(user), nil
}

func (s *authService) GetUserByID(ctx context.Context, id string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("User not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get user")
		}
		return auth.UserResponse{}, err
	}

	return makeUserResponse(user), nil
}

func makeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
