package handler

import (
	"net/http"

	"github.com/drawdeck-dev/drawdeck/shared/api"
	"github.com/drawdeck-dev/drawdeck/shared/domain"
	mw "github.com/drawdeck-dev/drawdeck/shared/middleware"
	"github.com/drawdeck-dev/drawdeck/shared/utils"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var body api.SignupRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, err := h.auth.Signup(body.Email, body.FullName, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.SignupResponse{User: api.NewUserResponse(user)})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	token, user, err := h.auth.Login(domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.LoginResponse{Token: token, User: api.NewUserResponse(user)})
}

// Me echoes the identity decoded from the bearer token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.MeResponse{User: api.NewUserResponse(*user)})
}
