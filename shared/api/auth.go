package api

import (
	"github.com/drawdeck-dev/drawdeck/shared/domain"
)

// Request DTOs

type SignupRequest struct {
	Email    string `json:"email" validate:"required"`
	FullName string `json:"fullName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// UserResponse is the public projection of a user: never the hash.
type UserResponse struct {
	Id       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{Id: u.Id.String(), Email: u.Email, FullName: u.FullName}
}

type SignupResponse struct {
	User UserResponse `json:"user"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type MeResponse struct {
	User UserResponse `json:"user"`
}
