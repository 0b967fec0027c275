package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawdeck-dev/drawdeck/shared/api"
	"github.com/drawdeck-dev/drawdeck/shared/domain"
	internal_errors "github.com/drawdeck-dev/drawdeck/shared/errors"
)

func TestSignupHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		auth := &MockAuthService{
			SignupFunc: func(email, fullName, password string) (domain.User, error) {
				assert.Equal(t, "a@x.com", email)
				assert.Equal(t, "Alice", fullName)
				assert.Equal(t, "supersecret", password)
				return testUser, nil
			},
		}
		router := newTestRouter(newTestHandler(auth, &MockBoardService{}), nil)

		req := httptest.NewRequest("POST", "/auth/signup",
			strings.NewReader(`{"email":"a@x.com","fullName":"Alice","password":"supersecret"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp api.SignupResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, testUser.Id.String(), resp.User.Id)
		assert.Equal(t, "a@x.com", resp.User.Email)
	})

	t.Run("missing field is a 400", func(t *testing.T) {
		router := newTestRouter(newTestHandler(&MockAuthService{}, &MockBoardService{}), nil)

		req := httptest.NewRequest("POST", "/auth/signup",
			strings.NewReader(`{"email":"a@x.com"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate email surfaces as 409", func(t *testing.T) {
		auth := &MockAuthService{
			SignupFunc: func(email, fullName, password string) (domain.User, error) {
				return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Email already in use", StatusCode: http.StatusConflict}
			},
		}
		router := newTestRouter(newTestHandler(auth, &MockBoardService{}), nil)

		req := httptest.NewRequest("POST", "/auth/signup",
			strings.NewReader(`{"email":"a@x.com","fullName":"Alice","password":"supersecret"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.JSONEq(t, `{"error":"Email already in use"}`, rr.Body.String())
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("ok returns token and user", func(t *testing.T) {
		auth := &MockAuthService{
			LoginFunc: func(creds domain.Credentials) (string, domain.User, error) {
				assert.Equal(t, "a@x.com", creds.Email)
				return "token123", testUser, nil
			},
		}
		router := newTestRouter(newTestHandler(auth, &MockBoardService{}), nil)

		req := httptest.NewRequest("POST", "/auth/login",
			strings.NewReader(`{"email":"a@x.com","password":"supersecret"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "token123", resp.Token)
		assert.Equal(t, testUser.Email, resp.User.Email)
	})

	t.Run("bad credentials stay generic", func(t *testing.T) {
		auth := &MockAuthService{
			LoginFunc: func(creds domain.Credentials) (string, domain.User, error) {
				return "", domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
			},
		}
		router := newTestRouter(newTestHandler(auth, &MockBoardService{}), nil)

		req := httptest.NewRequest("POST", "/auth/login",
			strings.NewReader(`{"email":"a@x.com","password":"wrong"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, rr.Body.String())
	})
}

func TestMeHandler(t *testing.T) {
	router := newTestRouter(newTestHandler(&MockAuthService{}, &MockBoardService{}), &testUser)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp api.MeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, testUser.Id.String(), resp.User.Id)
	assert.Equal(t, testUser.FullName, resp.User.FullName)
}
