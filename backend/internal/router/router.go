package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/drawdeck-dev/drawdeck/backend/internal/setup"
	mw "github.com/drawdeck-dev/drawdeck/shared/middleware"
	"github.com/drawdeck-dev/drawdeck/shared/middleware/metrics"
	rl "github.com/drawdeck-dev/drawdeck/shared/middleware/ratelimiter"
)

// New creates and configures the chi router with all routes.
// Ratelimiters attached with .Use limit all endpoints of that group combined.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/ping", h.Ping)
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		// brute-force protection, keyed by IP
		r.With(mw.RateLimit(rl.New(1, 5, 1*time.Hour), mw.GetIP)).
			Post("/signup", h.Signup)
		r.With(mw.RateLimit(rl.New(1, 5, 1*time.Hour), mw.GetIP)).
			Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())
			r.Get("/me", h.Me)
		})
	})

	r.Route("/boards", func(r chi.Router) {
		r.Use(authMw.NeedAuth())
		// 100 RPS per user, shape saves included
		r.Use(mw.RateLimit(rl.New(100, 100, 1*time.Hour), mw.GetUserIDFromContext))

		r.Post("/", h.CreateBoard)
		r.Get("/", h.GetBoards)
		r.Get("/{board}", h.GetBoard)
		r.Delete("/{board}", h.DeleteBoard)
		r.Put("/{board}/shapes", h.UpdateShapes)
		r.Get("/{board}/thumbnail.png", h.BoardThumbnail)
	})

	return r
}
