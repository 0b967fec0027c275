package jwt

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
	internal_errors "github.com/drawdeck-dev/drawdeck/shared/errors"
	"github.com/drawdeck-dev/drawdeck/shared/logger"
)

type JwtService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (domain.User, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

var errInvalidToken = &internal_errors.ErrorWithStatusCode{
	Message:    "Invalid or expired token",
	StatusCode: http.StatusUnauthorized,
}

// NewToken issues a signed HS256 token with subject = user id.
// Validity is purely signature + expiry, nothing is stored server-side.
func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.Id.String(),
		"email":     user.Email,
		"full_name": user.FullName,
		"exp":       time.Now().Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", &internal_errors.ErrorWithStatusCode{Message: "Can't create token", StatusCode: http.StatusInternalServerError}
	}

	return tokenString, nil
}

// DecodeToken verifies signature and expiry and returns the identity claims.
func (j *Jwt) DecodeToken(jwtStr string) (domain.User, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return domain.User{}, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, errInvalidToken
	}

	sub, _ := claims["sub"].(string)
	uid, err := uuid.Parse(sub)
	if err != nil {
		return domain.User{}, errInvalidToken
	}
	email, _ := claims["email"].(string)
	fullName, _ := claims["full_name"].(string)

	return domain.User{Id: uid, Email: email, FullName: fullName}, nil
}
