package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lib/pq"

	"github.com/drawdeck-dev/drawdeck/shared/domain"
	internal_errors "github.com/drawdeck-dev/drawdeck/shared/errors"
)

const uniqueViolation = "23505"

// SaveUser inserts a new user record. A duplicate email surfaces as a 409
// so signup can report the conflict without a racy pre-check.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var saved domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.saveUser(tx, user)
		return err
	})
	return saved, err
}

// User fetches a single user by email. Read-only, uses the pool directly.
func (s *Storage) User(email string) (domain.User, error) {
	return s.user(s.db, email)
}

func (s *Storage) saveUser(q Querier, user domain.User) (domain.User, error) {
	var saved domain.User
	err := q.QueryRow(`
        INSERT INTO users(email, full_name, password_hash)
        VALUES($1, $2, $3)
        RETURNING id, email, full_name, password_hash, created_at`,
		user.Email, user.FullName, user.PassHash,
	).Scan(&saved.Id, &saved.Email, &saved.FullName, &saved.PassHash, &saved.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Email already in use", StatusCode: http.StatusConflict}
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return saved, nil
}

func (s *Storage) user(q Querier, email string) (domain.User, error) {
	var user domain.User
	err := q.QueryRow(`
        SELECT id, email, full_name, password_hash, created_at
        FROM users WHERE email = $1`,
		email,
	).Scan(&user.Id, &user.Email, &user.FullName, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
