package jwt

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
	internal_errors "github.com/drawdeck-dev/drawdeck/shared/errors"
)

func TestTokenRoundTrip(t *testing.T) {
	j := New("secret", time.Hour)
	user := domain.User{Id: uuid.New(), Email: "a@x.com", FullName: "A"}

	token, err := j.NewToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := j.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.Id, decoded.Id)
	assert.Equal(t, user.Email, decoded.Email)
	assert.Equal(t, user.FullName, decoded.FullName)
	// hash never travels in the token
	assert.Empty(t, decoded.PassHash)
}

func TestDecodeTokenFailures(t *testing.T) {
	user := domain.User{Id: uuid.New(), Email: "a@x.com", FullName: "A"}

	testCases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
		},
		{
			name: "wrong key",
			token: func(t *testing.T) string {
				token, err := New("other-secret", time.Hour).NewToken(user)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				token, err := New("secret", -time.Minute).NewToken(user)
				require.NoError(t, err)
				return token
			},
		},
	}

	j := New("secret", time.Hour)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := j.DecodeToken(tc.token(t))
			require.Error(t, err)
			assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(err, 0))
		})
	}
}
