package api

import (
	"github.com/drawdeck-dev/drawdeck/shared/domain"
)

// Request DTOs

type CreateBoardRequest struct {
	Title string `json:"title"`
}

type UpdateShapesRequest struct {
	Shapes domain.Shapes `json:"shapes"`
}

// Response DTOs

type BoardResponse struct {
	Board domain.BoardMetadata `json:"board"`
}

type BoardListResponse struct {
	Boards []domain.BoardMetadata `json:"boards"`
}

// BoardWithShapesResponse mirrors the board page payload: metadata plus the
// full ordered shape list.
type BoardWithShapesResponse struct {
	Board  domain.BoardMetadata `json:"board"`
	Shapes domain.Shapes        `json:"shapes"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
