package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	args := m.Called(ctx, tokenHash)
	return args.Int(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateAndValidate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, testLogger())

	var storedHash string
	repo.On("Create", ctx, 7, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).
		Return(nil)

	token, err := svc.Create(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Токен в хранилище не попадает, только sha256-хэш
	wantHash := sha256.Sum256([]byte(token))
	assert.Equal(t, hex.EncodeToString(wantHash[:]), storedHash)

	repo.On("Validate", ctx, storedHash).Return(7, nil)
	userID, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
}

func TestCreateRepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("Create", ctx, 7, mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := NewService(repo, testLogger())
	_, err := svc.Create(ctx, 7)
	assert.ErrorContains(t, err, "save session")
}

func TestTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("Create", ctx, 1, mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, testLogger())
	a, err := svc.Create(ctx, 1)
	require.NoError(t, err)
	b, err := svc.Create(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
