package domain

import (
	"time"

	"github.com/google/uuid"
)

type BoardId = uuid.UUID

// DefaultBoardTitle is used when a board is created with a blank title.
const DefaultBoardTitle = "Untitled board"

// BoardMetadata is what board listings return: no shape payload.
type BoardMetadata struct {
	Id        BoardId   `json:"id"`
	Title     string    `json:"title"`
	OwnerId   UserId    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Board struct {
	BoardMetadata
	Shapes Shapes `json:"shapes"`
}
