package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
	internal_errors "github.com/drawdeck-dev/drawdeck/shared/errors"
)

// Every board query below filters by owner_id. An existing board owned by
// someone else is indistinguishable from a missing one: both are 404.
var errBoardNotFound = &internal_errors.ErrorWithStatusCode{Message: "Board not found", StatusCode: http.StatusNotFound}

// CreateBoard inserts a board with an empty shape list and returns the
// stored row.
func (s *Storage) CreateBoard(ownerId domain.UserId, title string) (domain.Board, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var board domain.Board
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		board, err = s.createBoard(tx, ownerId, title)
		return err
	})
	return board, err
}

// Boards returns all boards owned by ownerId, most recently updated first.
// Summary fields only: the shapes column stays untouched.
func (s *Storage) Boards(ownerId domain.UserId) ([]domain.BoardMetadata, error) {
	return s.boards(s.db, ownerId)
}

// Board returns a full board including its shape list.
func (s *Storage) Board(ownerId domain.UserId, boardId domain.BoardId) (domain.Board, error) {
	return s.board(s.db, ownerId, boardId)
}

// DeleteBoard removes an owned board.
func (s *Storage) DeleteBoard(ownerId domain.UserId, boardId domain.BoardId) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteBoard(tx, ownerId, boardId)
	})
}

// UpdateShapes replaces the stored shape list and bumps updated_at.
// Last write wins; concurrent saves are not coordinated.
func (s *Storage) UpdateShapes(ownerId domain.UserId, boardId domain.BoardId, shapes domain.Shapes) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateShapes(tx, ownerId, boardId, shapes)
	})
}

func (s *Storage) createBoard(q Querier, ownerId domain.UserId, title string) (domain.Board, error) {
	var board domain.Board
	err := q.QueryRow(`
        INSERT INTO boards(title, owner_id)
        VALUES($1, $2)
        RETURNING id, title, owner_id, created_at, updated_at`,
		title, ownerId,
	).Scan(&board.Id, &board.Title, &board.OwnerId, &board.CreatedAt, &board.UpdatedAt)
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to insert board: %w", err)
	}
	board.Shapes = domain.Shapes{}
	return board, nil
}

func (s *Storage) boards(q Querier, ownerId domain.UserId) ([]domain.BoardMetadata, error) {
	rows, err := q.Query(`
        SELECT id, title, owner_id, created_at, updated_at
        FROM boards WHERE owner_id = $1
        ORDER BY updated_at DESC`,
		ownerId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	boards := []domain.BoardMetadata{}
	for rows.Next() {
		var b domain.BoardMetadata
		if err := rows.Scan(&b.Id, &b.Title, &b.OwnerId, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board row: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate board rows: %w", err)
	}
	return boards, nil
}

func (s *Storage) board(q Querier, ownerId domain.UserId, boardId domain.BoardId) (domain.Board, error) {
	var board domain.Board
	err := q.QueryRow(`
        SELECT id, title, owner_id, shapes, created_at, updated_at
        FROM boards WHERE id = $1 AND owner_id = $2`,
		boardId, ownerId,
	).Scan(&board.Id, &board.Title, &board.OwnerId, &board.Shapes, &board.CreatedAt, &board.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, errBoardNotFound
		}
		return domain.Board{}, fmt.Errorf("failed to query board: %w", err)
	}
	return board, nil
}

func (s *Storage) deleteBoard(q Querier, ownerId domain.UserId, boardId domain.BoardId) error {
	result, err := q.Exec("DELETE FROM boards WHERE id = $1 AND owner_id = $2", boardId, ownerId)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for board deletion: %w", err)
	}
	if rowsDeleted == 0 {
		return errBoardNotFound
	}
	return nil
}

func (s *Storage) updateShapes(q Querier, ownerId domain.UserId, boardId domain.BoardId, shapes domain.Shapes) error {
	result, err := q.Exec(`
        UPDATE boards SET shapes = $1, updated_at = now()
        WHERE id = $2 AND owner_id = $3`,
		shapes, boardId, ownerId,
	)
	if err != nil {
		return fmt.Errorf("failed to update shapes: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for shapes update: %w", err)
	}
	if rowsAffected == 0 {
		return errBoardNotFound
	}
	return nil
}
