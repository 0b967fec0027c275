package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
)

// to mock service in tests
type BoardService interface {
	Create(ownerId domain.UserId, title string) (domain.Board, error)
	All(ownerId domain.UserId) ([]domain.BoardMetadata, error)
	Get(ownerId domain.UserId, boardId domain.BoardId) (domain.Board, error)
	Delete(ownerId domain.UserId, boardId domain.BoardId) error
	UpdateShapes(ownerId domain.UserId, boardId domain.BoardId, shapes domain.Shapes) error
}

type Board struct {
	storage   BoardStorage
	sanitizer *bluemonday.Policy
}

type BoardStorage interface {
	CreateBoard(ownerId domain.UserId, title string) (domain.Board, error)
	Boards(ownerId domain.UserId) ([]domain.BoardMetadata, error)
	Board(ownerId domain.UserId, boardId domain.BoardId) (domain.Board, error)
	DeleteBoard(ownerId domain.UserId, boardId domain.BoardId) error
	UpdateShapes(ownerId domain.UserId, boardId domain.BoardId, shapes domain.Shapes) error
}

func NewBoard(storage BoardStorage) *Board {
	// titles are user input rendered by the dashboard, strip any markup
	return &Board{storage: storage, sanitizer: bluemonday.StrictPolicy()}
}

func (b *Board) Create(ownerId domain.UserId, title string) (domain.Board, error) {
	title = strings.TrimSpace(b.sanitizer.Sanitize(title))
	if title == "" {
		title = domain.DefaultBoardTitle
	}

	return b.storage.CreateBoard(ownerId, title)
}

func (b *Board) All(ownerId domain.UserId) ([]domain.BoardMetadata, error) {
	return b.storage.Boards(ownerId)
}

func (b *Board) Get(ownerId domain.UserId, boardId domain.BoardId) (domain.Board, error) {
	return b.storage.Board(ownerId, boardId)
}

func (b *Board) Delete(ownerId domain.UserId, boardId domain.BoardId) error {
	return b.storage.DeleteBoard(ownerId, boardId)
}

// UpdateShapes persists the client's shape list wholesale. The list is
// validated first so a malformed shape never reaches the store.
func (b *Board) UpdateShapes(ownerId domain.UserId, boardId domain.BoardId, shapes domain.Shapes) error {
	if err := shapes.Validate(); err != nil {
		return err
	}
	return b.storage.UpdateShapes(ownerId, boardId, shapes)
}
