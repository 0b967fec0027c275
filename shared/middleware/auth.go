package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
	jwt_internal "github.com/drawdeck-dev/drawdeck/shared/jwt"
	"github.com/drawdeck-dev/drawdeck/shared/utils"

	internal_errors "github.com/drawdeck-dev/drawdeck/shared/errors"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

var errNoToken = &internal_errors.ErrorWithStatusCode{
	Message:    "Missing Bearer token",
	StatusCode: http.StatusUnauthorized,
}

// extractUser pulls the bearer token from the Authorization header and
// validates it. Returns the decoded identity claims.
func (a *Auth) extractUser(r *http.Request) (domain.User, error) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return domain.User{}, errNoToken
	}

	return a.jwtService.DecodeToken(token)
}

// NeedAuth returns middleware that requires a valid bearer token and
// attaches the decoded identity to the request context.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				utils.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
