package handler

import (
	"context"
	"net/http"

	"github.com/drawdeck-dev/drawdeck/backend/internal/service"
	"github.com/drawdeck-dev/drawdeck/shared/config"
)

// HealthChecker reports store reachability for the readiness probe.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	board  service.BoardService
	health HealthChecker
	cfg    *config.Config
}

func New(auth service.AuthService, board service.BoardService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{auth, board, health, cfg}
}

// Ping is the plain connectivity check the client uses at startup.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
