package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserId = uuid.UUID

type User struct {
	Id        UserId
	Email     string
	FullName  string
	PassHash  string
	CreatedAt time.Time
}

// Credentials carried from handler to service during login.
type Credentials struct {
	Email    string
	Password string
}
