package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context) ([]response.AdminUserResponse, error)
	Create(ctx context.Context, req *request.CreateUserRequest) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

// List returns every account for the admin dashboard.
func (s *userService) List(ctx context.Context) ([]response.AdminUserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	responses := make([]response.AdminUserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, response.AdminUserToResponse(user))
	}

	return responses, nil
}

// Create is the admin path for adding accounts; unlike self-registration it
// may assign any role, including ADMIN.
func (s *userService) Create(ctx context.Context, req *request.CreateUserRequest) error {
	exists, err := s.repo.User.EmailExists(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return ErrEmailExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		Address:      req.Address,
		PasswordHash: hashedPassword,
		Role:         entity.UserRole(req.Role),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	return nil
}
