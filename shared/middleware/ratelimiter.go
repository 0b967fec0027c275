package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/drawdeck-dev/drawdeck/shared/middleware/ratelimiter"
	"github.com/drawdeck-dev/drawdeck/shared/utils"
)

// RateLimit rejects requests exceeding the limiter's budget for the
// identity extracted by getIdentity.
func RateLimit(rl *ratelimiter.Limiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			if !rl.Allow(identity) {
				http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetIP extracts the client IP from RemoteAddr.
// Does NOT trust X-Real-IP or X-Forwarded-For headers.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}

	return ip, nil
}

// GetUserIDFromContext keys the limiter by authenticated user.
// Only valid after the auth middleware has run.
func GetUserIDFromContext(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", errors.New("can't get user id")
	}
	return "user_" + user.Id.String(), nil
}
