package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
)

type MockBoardStorage struct {
	CreateBoardFunc  func(ownerId domain.UserId, title string) (domain.Board, error)
	BoardsFunc       func(ownerId domain.UserId) ([]domain.BoardMetadata, error)
	BoardFunc        func(ownerId domain.UserId, boardId domain.BoardId) (domain.Board, error)
	DeleteBoardFunc  func(ownerId domain.UserId, boardId domain.BoardId) error
	UpdateShapesFunc func(ownerId domain.UserId, boardId domain.BoardId, shapes domain.Shapes) error
}

func (m *MockBoardStorage) CreateBoard(ownerId domain.UserId, title string) (domain.Board, error) {
	return m.CreateBoardFunc(ownerId, title)
}

func (m *MockBoardStorage) Boards(ownerId domain.UserId) ([]domain.BoardMetadata, error) {
	return m.BoardsFunc(ownerId)
}

func (m *MockBoardStorage) Board(ownerId domain.UserId, boardId domain.BoardId) (domain.Board, error) {
	return m.BoardFunc(ownerId, boardId)
}

func (m *MockBoardStorage) DeleteBoard(ownerId domain.UserId, boardId domain.BoardId) error {
	return m.DeleteBoardFunc(ownerId, boardId)
}

func (m *MockBoardStorage) UpdateShapes(ownerId domain.UserId, boardId domain.BoardId, shapes domain.Shapes) error {
	return m.UpdateShapesFunc(ownerId, boardId, shapes)
}

func TestBoardCreate(t *testing.T) {
	owner := uuid.New()

	testCases := []struct {
		name      string
		title     string
		wantTitle string
	}{
		{"plain title", "Project plan", "Project plan"},
		{"empty title falls back to default", "", domain.DefaultBoardTitle},
		{"whitespace title falls back to default", "   ", domain.DefaultBoardTitle},
		{"markup is stripped", "<script>alert(1)</script>Roadmap", "Roadmap"},
		{"markup only falls back to default", "<b></b>", domain.DefaultBoardTitle},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storage := &MockBoardStorage{
				CreateBoardFunc: func(ownerId domain.UserId, title string) (domain.Board, error) {
					assert.Equal(t, owner, ownerId)
					board := domain.Board{}
					board.Id = uuid.New()
					board.Title = title
					board.OwnerId = ownerId
					return board, nil
				},
			}

			board, err := NewBoard(storage).Create(owner, tc.title)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTitle, board.Title)
		})
	}
}

func TestBoardUpdateShapes(t *testing.T) {
	owner := uuid.New()
	boardId := uuid.New()

	t.Run("valid shapes reach storage", func(t *testing.T) {
		var gotShapes domain.Shapes
		storage := &MockBoardStorage{
			UpdateShapesFunc: func(ownerId domain.UserId, id domain.BoardId, shapes domain.Shapes) error {
				gotShapes = shapes
				return nil
			},
		}
		shapes := domain.Shapes{
			{Id: "rect-1", Type: domain.ShapeRect, Fill: domain.DefaultFill, Stroke: domain.DefaultStroke, Rect: &domain.RectAttrs{X: 80, Y: 200, Width: 160, Height: 100}},
		}

		require.NoError(t, NewBoard(storage).UpdateShapes(owner, boardId, shapes))
		assert.Len(t, gotShapes, 1)
	})

	t.Run("invalid shapes never reach storage", func(t *testing.T) {
		storage := &MockBoardStorage{
			UpdateShapesFunc: func(ownerId domain.UserId, id domain.BoardId, shapes domain.Shapes) error {
				t.Fatal("storage must not be called for invalid shapes")
				return nil
			},
		}
		shapes := domain.Shapes{{Id: "", Type: domain.ShapeRect, Rect: &domain.RectAttrs{}}}

		err := NewBoard(storage).UpdateShapes(owner, boardId, shapes)
		assert.Error(t, err)
	})
}

func TestBoardPassthrough(t *testing.T) {
	owner := uuid.New()
	boardId := uuid.New()

	storage := &MockBoardStorage{
		BoardsFunc: func(ownerId domain.UserId) ([]domain.BoardMetadata, error) {
			return []domain.BoardMetadata{{Id: boardId, Title: "one"}}, nil
		},
		BoardFunc: func(ownerId domain.UserId, id domain.BoardId) (domain.Board, error) {
			board := domain.Board{}
			board.Id = id
			return board, nil
		},
		DeleteBoardFunc: func(ownerId domain.UserId, id domain.BoardId) error {
			assert.Equal(t, boardId, id)
			return nil
		},
	}
	svc := NewBoard(storage)

	boards, err := svc.All(owner)
	require.NoError(t, err)
	assert.Len(t, boards, 1)

	board, err := svc.Get(owner, boardId)
	require.NoError(t, err)
	assert.Equal(t, boardId, board.Id)

	assert.NoError(t, svc.Delete(owner, boardId))
}
