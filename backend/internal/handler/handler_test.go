package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drawdeck-dev/drawdeck/shared/config"
	"github.com/drawdeck-dev/drawdeck/shared/domain"
	mw "github.com/drawdeck-dev/drawdeck/shared/middleware"
)

type MockAuthService struct {
	SignupFunc func(email, fullName, password string) (domain.User, error)
	LoginFunc  func(creds domain.Credentials) (string, domain.User, error)
}

func (m *MockAuthService) Signup(email, fullName, password string) (domain.User, error) {
	return m.SignupFunc(email, fullName, password)
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, domain.User, error) {
	return m.LoginFunc(creds)
}

type MockBoardService struct {
	CreateFunc       func(ownerId domain.UserId, title string) (domain.Board, error)
	AllFunc          func(ownerId domain.UserId) ([]domain.BoardMetadata, error)
	GetFunc          func(ownerId domain.UserId, boardId domain.BoardId) (domain.Board, error)
	DeleteFunc       func(ownerId domain.UserId, boardId domain.BoardId) error
	UpdateShapesFunc func(ownerId domain.UserId, boardId domain.BoardId, shapes domain.Shapes) error
}

func (m *MockBoardService) Create(ownerId domain.UserId, title string) (domain.Board, error) {
	return m.CreateFunc(ownerId, title)
}

func (m *MockBoardService) All(ownerId domain.UserId) ([]domain.BoardMetadata, error) {
	return m.AllFunc(ownerId)
}

func (m *MockBoardService) Get(ownerId domain.UserId, boardId domain.BoardId) (domain.Board, error) {
	return m.GetFunc(ownerId, boardId)
}

func (m *MockBoardService) Delete(ownerId domain.UserId, boardId domain.BoardId) error {
	return m.DeleteFunc(ownerId, boardId)
}

func (m *MockBoardService) UpdateShapes(ownerId domain.UserId, boardId domain.BoardId, shapes domain.Shapes) error {
	return m.UpdateShapesFunc(ownerId, boardId, shapes)
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc == nil {
		return nil
	}
	return m.PingFunc(ctx)
}

var testUser = domain.User{Id: uuid.New(), Email: "a@x.com", FullName: "Alice"}

// newTestRouter mounts the handler on the real route tree with a stub
// auth middleware injecting the given user into the context.
func newTestRouter(h *Handler, user *domain.User) http.Handler {
	r := chi.NewRouter()

	r.Post("/auth/signup", h.Signup)
	r.Post("/auth/login", h.Login)

	inject := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if user != nil {
				req = req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, user))
			}
			next.ServeHTTP(w, req)
		})
	}

	r.Group(func(r chi.Router) {
		r.Use(inject)
		r.Get("/auth/me", h.Me)
		r.Post("/boards", h.CreateBoard)
		r.Get("/boards", h.GetBoards)
		r.Get("/boards/{board}", h.GetBoard)
		r.Delete("/boards/{board}", h.DeleteBoard)
		r.Put("/boards/{board}/shapes", h.UpdateShapes)
		r.Get("/boards/{board}/thumbnail.png", h.BoardThumbnail)
	})

	return r
}

func newTestHandler(auth *MockAuthService, board *MockBoardService) *Handler {
	return New(auth, board, &MockHealthChecker{}, &config.Config{})
}
