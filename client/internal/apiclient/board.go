package apiclient

import (
	"github.com/drawdeck-dev/drawdeck/shared/api"
	"github.com/drawdeck-dev/drawdeck/shared/domain"
)

// CreateBoard creates a board; a blank title becomes the server default.
func (c *APIClient) CreateBoard(title string) (domain.BoardMetadata, error) {
	var response api.BoardResponse
	resp, err := c.do("POST", "/boards", api.CreateBoardRequest{Title: title}, true)
	if err != nil {
		return domain.BoardMetadata{}, err
	}
	if err := c.decodeOrError(resp, &response); err != nil {
		return domain.BoardMetadata{}, err
	}
	return response.Board, nil
}

// Boards lists the user's boards, most recently updated first.
func (c *APIClient) Boards() ([]domain.BoardMetadata, error) {
	var response api.BoardListResponse
	resp, err := c.do("GET", "/boards", nil, true)
	if err != nil {
		return nil, err
	}
	if err := c.decodeOrError(resp, &response); err != nil {
		return nil, err
	}
	return response.Boards, nil
}

// Board fetches a full board including its shape list.
func (c *APIClient) Board(id string) (domain.BoardMetadata, domain.Shapes, error) {
	var response api.BoardWithShapesResponse
	resp, err := c.do("GET", "/boards/"+id, nil, true)
	if err != nil {
		return domain.BoardMetadata{}, nil, err
	}
	if err := c.decodeOrError(resp, &response); err != nil {
		return domain.BoardMetadata{}, nil, err
	}
	return response.Board, response.Shapes, nil
}

func (c *APIClient) DeleteBoard(id string) error {
	resp, err := c.do("DELETE", "/boards/"+id, nil, true)
	if err != nil {
		return err
	}
	return c.decodeOrError(resp, nil)
}

// SaveShapes replaces the board's persisted shape list.
func (c *APIClient) SaveShapes(id string, shapes domain.Shapes) error {
	resp, err := c.do("PUT", "/boards/"+id+"/shapes", api.UpdateShapesRequest{Shapes: shapes}, true)
	if err != nil {
		return err
	}
	return c.decodeOrError(resp, nil)
}
