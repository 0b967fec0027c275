package apiclient

import (
	"net/http"

	"github.com/drawdeck-dev/drawdeck/shared/api"
	internal_errors "github.com/drawdeck-dev/drawdeck/shared/errors"
)

// Signup registers a new account. The user still has to log in afterwards.
func (c *APIClient) Signup(email, fullName, password string) (api.UserResponse, error) {
	var response api.SignupResponse
	resp, err := c.do("POST", "/auth/signup", api.SignupRequest{Email: email, FullName: fullName, Password: password}, false)
	if err != nil {
		return api.UserResponse{}, err
	}
	if err := c.decodeOrError(resp, &response); err != nil {
		return api.UserResponse{}, err
	}
	return response.User, nil
}

// Login authenticates and stores the returned token for later requests.
func (c *APIClient) Login(email, password string) (api.UserResponse, error) {
	var response api.LoginResponse
	resp, err := c.do("POST", "/auth/login", api.LoginRequest{Email: email, Password: password}, false)
	if err != nil {
		return api.UserResponse{}, err
	}
	if err := c.decodeOrError(resp, &response); err != nil {
		return api.UserResponse{}, err
	}

	c.SetToken(response.Token)
	return response.User, nil
}

// Me fetches the identity behind the stored token. A rejected token is
// cleared so the caller can redirect to login.
func (c *APIClient) Me() (api.UserResponse, error) {
	var response api.MeResponse
	resp, err := c.do("GET", "/auth/me", nil, true)
	if err != nil {
		return api.UserResponse{}, err
	}
	if err := c.decodeOrError(resp, &response); err != nil {
		if internal_errors.StatusCode(err, 0) == http.StatusUnauthorized {
			c.ClearToken()
		}
		return api.UserResponse{}, err
	}
	return response.User, nil
}
