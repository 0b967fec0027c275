package service

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
	"github.com/drawdeck-dev/drawdeck/shared/errors"
	"github.com/drawdeck-dev/drawdeck/shared/logger"
)

const (
	minPasswordLen = 8  // characters
	maxPasswordLen = 72 // bytes, bcrypt rejects longer inputs
	bcryptCost     = 12
)

// to mock service in tests
type AuthService interface {
	Signup(email, fullName, password string) (domain.User, error)
	Login(creds domain.Credentials) (string, domain.User, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	User(email string) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage, jwt}
}

// normalizeEmail makes emails differing only in case or surrounding
// whitespace collide on the store's unique index.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup validates the fields, hashes the password and creates the user.
// The store's unique email index reports duplicates as a 409.
func (a *Auth) Signup(email, fullName, password string) (domain.User, error) {
	email = normalizeEmail(email)
	fullName = strings.TrimSpace(fullName)

	if email == "" || fullName == "" || password == "" {
		return domain.User{}, &errors.ErrorWithStatusCode{Message: "Email, full name, password are required", StatusCode: http.StatusBadRequest}
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return domain.User{}, &errors.ErrorWithStatusCode{Message: "Password must be at least 8 characters", StatusCode: http.StatusBadRequest}
	}
	if len(password) > maxPasswordLen {
		return domain.User{}, &errors.ErrorWithStatusCode{Message: "Password must be at most 72 characters", StatusCode: http.StatusBadRequest}
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	user, err := a.storage.SaveUser(domain.User{Email: email, FullName: fullName, PassHash: string(passHash)})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

var errInvalidCredentials = &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}

// Login checks credentials and issues an access token.
// Unknown email and wrong password both return the same generic error
// so existing accounts can't be enumerated.
func (a *Auth) Login(creds domain.Credentials) (string, domain.User, error) {
	email := normalizeEmail(creds.Email)

	user, err := a.storage.User(email)
	if err != nil {
		if errors.StatusCode(err, 0) == http.StatusNotFound {
			return "", domain.User{}, errInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return "", domain.User{}, errInvalidCredentials
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", domain.User{}, err
	}

	return token, user, nil
}
