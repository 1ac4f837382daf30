package user

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, login, passwordHash string) (int, error) {
	args := m.Called(ctx, login, passwordHash)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByLogin(ctx context.Context, login string) (User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(User), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, "gardener", mock.AnythingOfType("string")).Return(42, nil)

		svc := NewService(repo, testLogger())
		id, err := svc.Register(ctx, "gardener", "Secret1234")
		require.NoError(t, err)
		assert.Equal(t, 42, id)

		// Репозиторий должен получить хэш, а не пароль
		hash := repo.Calls[0].Arguments.String(2)
		assert.NotEqual(t, "Secret1234", hash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Secret1234")))
	})

	t.Run("short login rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository), testLogger())
		_, err := svc.Register(ctx, "ab", "Secret1234")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository), testLogger())
		_, err := svc.Register(ctx, "gardener", "password")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository error passed through", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, "gardener", mock.Anything).Return(0, ErrLoginTaken)

		svc := NewService(repo, testLogger())
		_, err := svc.Register(ctx, "gardener", "Secret1234")
		assert.ErrorIs(t, err, ErrLoginTaken)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("Secret1234"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := User{ID: 7, Login: "gardener", Password: string(hash)}

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByLogin", ctx, "gardener").Return(stored, nil)

		svc := NewService(repo, testLogger())
		u, err := svc.Authenticate(ctx, "gardener", "Secret1234")
		require.NoError(t, err)
		assert.Equal(t, 7, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByLogin", ctx, "gardener").Return(stored, nil)

		svc := NewService(repo, testLogger())
		_, err := svc.Authenticate(ctx, "gardener", "wrong-password1")
		assert.ErrorIs(t, err, ErrInvalidAuth)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByLogin", ctx, "nobody").Return(User{}, errors.New("no rows"))

		svc := NewService(repo, testLogger())
		_, err := svc.Authenticate(ctx, "nobody", "Secret1234")
		assert.ErrorIs(t, err, ErrInvalidAuth)
	})
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin("gardener_01"))
	assert.NoError(t, ValidateLogin("a.b-c"))
	assert.Error(t, ValidateLogin("ab"))
	assert.Error(t, ValidateLogin("with space"))
	assert.Error(t, ValidateLogin("семь@плюс"))
}
