package setup

import (
	"github.com/drawdeck-dev/drawdeck/backend/internal/handler"
	"github.com/drawdeck-dev/drawdeck/backend/internal/service"
	"github.com/drawdeck-dev/drawdeck/backend/internal/storage/pg"
	"github.com/drawdeck-dev/drawdeck/shared/config"
	"github.com/drawdeck-dev/drawdeck/shared/jwt"
	"github.com/drawdeck-dev/drawdeck/shared/middleware"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
	Config         *config.Config
}

// SetupDependencies wires storage, services, and handlers. Configuration is
// resolved once here and passed down explicitly, never read ambiently.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	board := service.NewBoard(storage)

	h := handler.New(auth, board, storage, cfg)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		Jwt:            jwtService,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Config:         cfg,
	}, nil
}
