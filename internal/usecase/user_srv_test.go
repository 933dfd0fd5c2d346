package usecase

import (
	"context"
	"testing"

	"store-rating/internal/data/entity"
	"store-rating/internal/dto/request"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_List(t *testing.T) {
	ctx := context.Background()
	repo, userRepo, _, _ := newMockRepository()
	service := NewUserService(repo, zap.NewNop())

	users := []*entity.User{
		{Base: entity.Base{ID: uuid.New()}, Name: "Ann", Email: "ann@x.com", Address: "1 Main St", Role: entity.RoleUser, PasswordHash: "hash"},
		{Base: entity.Base{ID: uuid.New()}, Name: "Root", Email: "root@x.com", Address: "HQ", Role: entity.RoleAdmin, PasswordHash: "hash"},
	}

	userRepo.On("FindAll", ctx).Return(users, nil)

	listing, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listing, 2)

	assert.Equal(t, "Ann", listing[0].Name)
	assert.Equal(t, entity.RoleAdmin, listing[1].Role)
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	req := &request.CreateUserRequest{
		Name:     "Root",
		Email:    "root@x.com",
		Address:  "HQ",
		Password: "Secret1!",
		Role:     "ADMIN",
	}

	t.Run("Success", func(t *testing.T) {
		repo, userRepo, _, _ := newMockRepository()
		service := NewUserService(repo, zap.NewNop())

		userRepo.On("EmailExists", ctx, "root@x.com").Return(false, nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
			// Admin path may assign the ADMIN role
			return user.Role == entity.RoleAdmin &&
				utils.CheckPasswordHash("Secret1!", user.PasswordHash)
		})).Return(nil)

		err := service.Create(ctx, req)
		require.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo, userRepo, _, _ := newMockRepository()
		service := NewUserService(repo, zap.NewNop())

		userRepo.On("EmailExists", ctx, "root@x.com").Return(true, nil)

		err := service.Create(ctx, req)
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}
