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
	"store-rating/pkg/token"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	tokens *token.Manager
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tokens *token.Manager,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log,
	}
}

// Register creates a new account. No token is issued; the user logs in
// afterwards. The uniqueness constraint backs up the existence check, so a
// concurrent duplicate still resolves to a conflict rather than a second row.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	// 1. Check email is not taken
	exists, err := s.repo.User.EmailExists(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return ErrEmailExists
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	// 3. Create user entity
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

	// 4. Save user; the check above races with concurrent registrations
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	return nil
}

// Login verifies credentials and mints a bearer token. An unknown email and a
// wrong password produce the same error.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 2. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 3. Issue token
	signed, _, err := s.tokens.Issue(user.ID, user.Name, user.Email, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.LoginResponse{
		Token: signed,
		User:  response.UserToResponse(user),
	}, nil
}

// UpdatePassword verifies the old password before storing the new hash.
// Outstanding tokens stay valid until they expire; there is no revocation
// list.
func (s *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error {
	// 1. Load the account
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	// 2. Verify the old password
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		s.log.Warn("Password update with wrong old password", zap.String("user_id", userID.String()))
		return ErrInvalidCredentials
	}

	// 3. Hash and store the new one
	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()

	if err := s.repo.User.UpdatePassword(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password updated", zap.String("user_id", userID.String()))
	return nil
}
