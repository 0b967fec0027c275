package handler

import (
	"image/png"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drawdeck-dev/drawdeck/backend/internal/render"
	"github.com/drawdeck-dev/drawdeck/shared/api"
	"github.com/drawdeck-dev/drawdeck/shared/domain"
	internal_errors "github.com/drawdeck-dev/drawdeck/shared/errors"
	"github.com/drawdeck-dev/drawdeck/shared/logger"
	mw "github.com/drawdeck-dev/drawdeck/shared/middleware"
	"github.com/drawdeck-dev/drawdeck/shared/utils"
)

const (
	defaultThumbnailWidth  = 225
	defaultThumbnailHeight = 150
)

// boardIdParam parses the {board} route param. A malformed id is a 400,
// deliberately distinct from the owner-scoped 404.
func boardIdParam(r *http.Request) (domain.BoardId, error) {
	id, err := uuid.Parse(chi.URLParam(r, "board"))
	if err != nil {
		return uuid.Nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid board id", StatusCode: http.StatusBadRequest}
	}
	return id, nil
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateBoardRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Create(user.Id, body.Title)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.BoardResponse{Board: board.BoardMetadata})
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	boards, err := h.board.All(user.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.BoardListResponse{Boards: boards})
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	boardId, err := boardIdParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Get(user.Id, boardId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.BoardWithShapesResponse{Board: board.BoardMetadata, Shapes: board.Shapes})
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	boardId, err := boardIdParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.board.Delete(user.Id, boardId); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.OkResponse{Ok: true})
}

// UpdateShapes replaces a board's shape list with the client's copy.
func (h *Handler) UpdateShapes(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	boardId, err := boardIdParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.UpdateShapesRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.board.UpdateShapes(user.Id, boardId, body.Shapes); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.OkResponse{Ok: true})
}

// BoardThumbnail renders a PNG preview of the board for dashboard listings.
func (h *Handler) BoardThumbnail(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	boardId, err := boardIdParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Get(user.Id, boardId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	width, height := h.cfg.Public.ThumbnailWidth, h.cfg.Public.ThumbnailHeight
	if width <= 0 || height <= 0 {
		width, height = defaultThumbnailWidth, defaultThumbnailHeight
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, render.Thumbnail(board.Shapes, width, height)); err != nil {
		logger.Log.Error("failed to encode thumbnail", "board_id", boardId, "error", err)
	}
}
