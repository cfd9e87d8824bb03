package auth_test

import (
	"context"
	"errors"
	"testing"

	"kgb-anri/internal/auth"
	autherrors "kgb-anri/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	createFn        func(ctx context.Context, user *auth.User) error
	getByUsernameFn func(ctx context.Context, username string) (*auth.User, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

func (f *fakeAuthRepository) Create(ctx context.Context, user *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeAuthRepository) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	if f.getByUsernameFn != nil {
		return f.getByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func testUser(t *testing.T, password string) *auth.User {
	t.Helper()
	pw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return &auth.User{
		ID:       uuid.New(),
		NIP:      "198503152010121001",
		Username: "budi.santoso",
		Name:     "Budi Santoso",
		Password: string(pw),
		Role:     "pegawai",
		IsActive: true,
	}
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	password := "password123"
	mockUser := testUser(t, password)

	t.Run("Success Login", func(t *testing.T) {
		repo := &fakeAuthRepository{
			getByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
				assert.Equal(t, mockUser.Username, username)
				return mockUser, nil
			},
		}
		service := auth.NewService(repo)

		token, refreshToken, resp, err := service.Login(ctx, mockUser.Username, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, mockUser.Username, resp.Username)
		assert.Equal(t, mockUser.NIP, resp.NIP)
		assert.Equal(t, "pegawai", resp.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		repo := &fakeAuthRepository{
			getByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
				return mockUser, nil
			},
		}
		service := auth.NewService(repo)

		_, _, _, err := service.Login(ctx, mockUser.Username, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Username", func(t *testing.T) {
		service := auth.NewService(&fakeAuthRepository{})

		_, _, _, err := service.Login(ctx, "nobody", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Inactive User", func(t *testing.T) {
		inactive := testUser(t, password)
		inactive.IsActive = false
		repo := &fakeAuthRepository{
			getByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
				return inactive, nil
			},
		}
		service := auth.NewService(repo)

		_, _, _, err := service.Login(ctx, inactive.Username, password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	password := "password123"
	mockUser := testUser(t, password)

	t.Run("Success Refresh", func(t *testing.T) {
		repo := &fakeAuthRepository{
			getByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
				return mockUser, nil
			},
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
				assert.Equal(t, mockUser.ID, id)
				return mockUser, nil
			},
		}
		service := auth.NewService(repo)

		_, refreshToken, _, err := service.Login(ctx, mockUser.Username, password)
		assert.NoError(t, err)

		newAccess, newRefresh, resp, err := service.RefreshToken(ctx, refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, mockUser.Username, resp.Username)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		service := auth.NewService(&fakeAuthRepository{})

		_, _, _, err := service.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("Success Register", func(t *testing.T) {
		req := auth.RegisterRequest{
			NIP:      "198503152010121001",
			Username: "budi.santoso",
			Name:     "Budi Santoso",
			Password: "password123",
			Role:     "pegawai",
		}

		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				assert.Equal(t, req.NIP, user.NIP)
				assert.Equal(t, req.Username, user.Username)
				assert.NotEqual(t, req.Password, user.Password) // harus ter-hash
				assert.True(t, user.IsActive)
				return nil
			},
		}
		service := auth.NewService(repo)

		resp, err := service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, req.Username, resp.Username)
		assert.Equal(t, "pegawai", resp.Role)
	})

	t.Run("Unknown Role Falls Back To Pegawai", func(t *testing.T) {
		var created *auth.User
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				created = user
				return nil
			},
		}
		service := auth.NewService(repo)

		resp, err := service.Register(ctx, auth.RegisterRequest{
			NIP:      "198503152010121001",
			Username: "budi.santoso",
			Name:     "Budi Santoso",
			Password: "password123",
			Role:     "superuser",
		})

		assert.NoError(t, err)
		assert.Equal(t, "pegawai", resp.Role)
		assert.Equal(t, "pegawai", created.Role)
	})

	t.Run("Error Register - Duplicate Username", func(t *testing.T) {
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				return errors.New("duplicate key error")
			},
		}
		service := auth.NewService(repo)

		_, err := service.Register(ctx, auth.RegisterRequest{
			NIP:      "198503152010121001",
			Username: "budi.santoso",
			Name:     "Budi Santoso",
			Password: "password123",
			Role:     "admin",
		})

		assert.ErrorIs(t, err, autherrors.ErrUsernameAlreadyRegistered)
	})
}
