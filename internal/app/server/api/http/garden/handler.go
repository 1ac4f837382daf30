package garden

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"plantkeeper/internal/app/server/api/http/middleware/auth"
	"plantkeeper/internal/domain/garden"
)

type Handler struct {
	service    garden.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service garden.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.putOp(), h.put)
}

func (h *Handler) get(ctx context.Context, _ *getInput) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("not authenticated")
	}

	snapshot, err := h.service.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, garden.ErrSnapshotNotFound) {
			return nil, huma.Error404NotFound("no snapshot for this user")
		}
		h.log.Error("get snapshot failed", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("get snapshot failed")
	}

	return &getOutput{
		Body: garden.GetResponse{
			Records:     snapshot.Records,
			LastUpdated: snapshot.LastUpdated,
		},
	}, nil
}

func (h *Handler) put(ctx context.Context, input *putInput) (*putOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("not authenticated")
	}

	lastUpdated, err := h.service.Put(ctx, userID, input.Body.Records)
	if err != nil {
		if errors.Is(err, garden.ErrEmptyPayload) {
			return nil, huma.Error422UnprocessableEntity("records are required")
		}
		h.log.Error("put snapshot failed", "user_id", userID, "error", err)
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	return &putOutput{
		Body: garden.PutResponse{LastUpdated: lastUpdated},
	}, nil
}
