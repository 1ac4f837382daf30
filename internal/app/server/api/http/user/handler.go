package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"plantkeeper/internal/domain/session"
	"plantkeeper/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

// register создает пользователя и сразу выдает токен сессии, чтобы
// клиенту не приходилось логиниться вторым запросом
func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Login, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrLoginTaken):
			return nil, huma.Error409Conflict("login already taken")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			h.log.Error("registration failed", "error", err)
			return nil, huma.Error500InternalServerError("registration failed")
		}
	}

	token, err := h.session.Create(ctx, userID)
	if err != nil {
		h.log.Error("create session failed", "error", err)
		return nil, huma.Error500InternalServerError("create session failed")
	}

	return &registerOutput{
		Body: AuthResponse{ID: userID, Token: token, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Login, input.Body.Password)
	if err != nil {
		return nil, huma.Error401Unauthorized("invalid credentials")
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("create session failed", "error", err)
		return nil, huma.Error500InternalServerError("create session failed")
	}

	return &loginOutput{
		Body: AuthResponse{ID: u.ID, Token: token, Status: "Ok"},
	}, nil
}
