package repository

import (
	"context"
	"testing"
	"time"

	"store-rating/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testUser() *entity.User {
	now := time.Now()
	return &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:         "Ann",
		Email:        "ann@x.com",
		Address:      "1 Main St",
		PasswordHash: "$2a$10$fakehash",
		Role:         entity.RoleUser,
	}
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db := &fakeDB{execTag: pgconn.NewCommandTag("INSERT 0 1")}
		repo := NewUserRepository(db, zap.NewNop())

		user := testUser()
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		assert.Contains(t, db.lastSQL, "INSERT INTO users")
		require.Len(t, db.lastArgs, 8)
		assert.Equal(t, user.ID, db.lastArgs[0])
		assert.Equal(t, user.PasswordHash, db.lastArgs[4])
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		db := &fakeDB{execErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
		repo := NewUserRepository(db, zap.NewNop())

		err := repo.Create(ctx, testUser())
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("OtherDatabaseError", func(t *testing.T) {
		db := &fakeDB{execErr: &pgconn.PgError{Code: "53300"}}
		repo := NewUserRepository(db, zap.NewNop())

		err := repo.Create(ctx, testUser())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		want := testUser()
		db := &fakeDB{rowValues: []any{
			want.ID, want.Name, want.Email, want.Address,
			want.PasswordHash, want.Role, want.CreatedAt, want.UpdatedAt,
		}}
		repo := NewUserRepository(db, zap.NewNop())

		got, err := repo.FindByEmail(ctx, "ann@x.com")
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, entity.RoleUser, got.Role)
		assert.Equal(t, []any{"ann@x.com"}, db.lastArgs)
	})

	t.Run("NotFound", func(t *testing.T) {
		db := &fakeDB{rowErr: pgx.ErrNoRows}
		repo := NewUserRepository(db, zap.NewNop())

		// Absent user is nil, nil so the caller decides the error semantics
		got, err := repo.FindByEmail(ctx, "ghost@x.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	db := &fakeDB{rowErr: pgx.ErrNoRows}
	repo := NewUserRepository(db, zap.NewNop())

	got, err := repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_EmailExists(t *testing.T) {
	ctx := context.Background()

	db := &fakeDB{rowValues: []any{true}}
	repo := NewUserRepository(db, zap.NewNop())

	exists, err := repo.EmailExists(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Contains(t, db.lastSQL, "SELECT EXISTS")
}

func TestUserRepository_FindAll(t *testing.T) {
	ctx := context.Background()

	first := testUser()
	second := testUser()
	second.Name = "Bea"
	second.Email = "bea@x.com"

	db := &fakeDB{rows: [][]any{
		{first.ID, first.Name, first.Email, first.Address, first.PasswordHash, first.Role, first.CreatedAt, first.UpdatedAt},
		{second.ID, second.Name, second.Email, second.Address, second.PasswordHash, second.Role, second.CreatedAt, second.UpdatedAt},
	}}
	repo := NewUserRepository(db, zap.NewNop())

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "Ann", users[0].Name)
	assert.Equal(t, "bea@x.com", users[1].Email)
	assert.Contains(t, db.lastSQL, "ORDER BY name ASC")
}

func TestUserRepository_CountAll(t *testing.T) {
	ctx := context.Background()

	db := &fakeDB{rowValues: []any{int64(42)}}
	repo := NewUserRepository(db, zap.NewNop())

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db := &fakeDB{execTag: pgconn.NewCommandTag("UPDATE 1")}
		repo := NewUserRepository(db, zap.NewNop())

		user := testUser()
		err := repo.UpdatePassword(ctx, user)
		require.NoError(t, err)

		assert.Contains(t, db.lastSQL, "UPDATE users SET password")
		assert.Equal(t, user.PasswordHash, db.lastArgs[1])
	})

	t.Run("NoRowMatched", func(t *testing.T) {
		db := &fakeDB{execTag: pgconn.NewCommandTag("UPDATE 0")}
		repo := NewUserRepository(db, zap.NewNop())

		err := repo.UpdatePassword(ctx, testUser())
		require.Error(t, err)
	})
}
