//Регистрация и аутентификация пользователей;
//хранение снапшотов коллекций растений по пользователям;
//выдача снапшота владельцу по запросу.

//POST /api/v1/auth/register  # Регистрация (публичный)
//POST /api/v1/auth/login     # Логин (публичный)
//GET  /api/v1/garden         # Получить снапшот коллекции (auth)
//PUT  /api/v1/garden         # Заменить снапшот коллекции (auth)
//GET  /api/v1/health         # Проверка живости (публичный)

package api

import (
	gardenAPI "plantkeeper/internal/app/server/api/http/garden"
	healthAPI "plantkeeper/internal/app/server/api/http/health"
	"plantkeeper/internal/app/server/api/http/middleware"
	"plantkeeper/internal/app/server/api/http/middleware/auth"
	"plantkeeper/internal/app/server/api/http/middleware/logger"
	userAPI "plantkeeper/internal/app/server/api/http/user"
	"plantkeeper/internal/domain/garden"
	"plantkeeper/internal/domain/session"
	"plantkeeper/internal/domain/user"
	"plantkeeper/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Garden *gardenAPI.Handler
}

// New создает *chi.Mux со ВСЕМИ операциями через huma.Register
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("PlantKeeper API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Garden.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	gardenRepo := postgres.NewGardenRepository(storage, log)
	gardenService := garden.NewService(gardenRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	gardenHandler := gardenAPI.NewHandler(gardenService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Garden: gardenHandler,
	}
}
