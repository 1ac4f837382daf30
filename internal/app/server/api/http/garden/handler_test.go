package garden

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"plantkeeper/internal/app/server/api/http/middleware/auth"
	"plantkeeper/internal/domain/garden"
	"plantkeeper/internal/domain/plant"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, userID int) (*garden.Snapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*garden.Snapshot), args.Error(1)
}

func (m *MockService) Put(ctx context.Context, userID int, records plant.Collection) (time.Time, error) {
	args := m.Called(ctx, userID, records)
	return args.Get(0).(time.Time), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authCtx(userID int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestHandler_Get(t *testing.T) {
	stamp := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	records := plant.Collection{{ID: "a1", CommonName: "Monstera"}}

	service := new(MockService)
	service.On("Get", mock.Anything, 7).Return(&garden.Snapshot{
		UserID:      7,
		Records:     records,
		LastUpdated: stamp,
	}, nil)

	h := NewHandler(service, testLogger(), huma.Middlewares{})

	output, err := h.get(authCtx(7), &getInput{})
	require.NoError(t, err)
	assert.Equal(t, records, output.Body.Records)
	assert.True(t, stamp.Equal(output.Body.LastUpdated))
	service.AssertExpectations(t)
}

func TestHandler_Get_NoSnapshot(t *testing.T) {
	service := new(MockService)
	service.On("Get", mock.Anything, 7).Return(nil, garden.ErrSnapshotNotFound)

	h := NewHandler(service, testLogger(), huma.Middlewares{})

	_, err := h.get(authCtx(7), &getInput{})
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestHandler_Get_Unauthenticated(t *testing.T) {
	h := NewHandler(new(MockService), testLogger(), huma.Middlewares{})

	_, err := h.get(context.Background(), &getInput{})
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
}

func TestHandler_Put(t *testing.T) {
	stamp := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	records := plant.Collection{{ID: "a1", CommonName: "Monstera"}}

	service := new(MockService)
	service.On("Put", mock.Anything, 7, records).Return(stamp, nil)

	h := NewHandler(service, testLogger(), huma.Middlewares{})

	output, err := h.put(authCtx(7), &putInput{Body: garden.PutRequest{Records: records}})
	require.NoError(t, err)
	assert.True(t, stamp.Equal(output.Body.LastUpdated))
	service.AssertExpectations(t)
}

func TestHandler_Put_EmptyPayload(t *testing.T) {
	service := new(MockService)
	service.On("Put", mock.Anything, 7, plant.Collection(nil)).
		Return(time.Time{}, garden.ErrEmptyPayload)

	h := NewHandler(service, testLogger(), huma.Middlewares{})

	_, err := h.put(authCtx(7), &putInput{})
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 422, statusErr.GetStatus())
}
