package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func (s *Storage) UsernameExists(ctx context.Context, username domain.Username) (bool, error) {
	ok, err := exists(ctx, s.db, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return ok, nil
}

func (s *Storage) AddUser(ctx context.Context, data domain.UserCreationData) (domain.AddedUser, error) {
	var added domain.AddedUser
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, username, password, fullname)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, fullname`,
		s.id(domain.UserIdPrefix), data.Username, data.PassHash, data.Fullname,
	).Scan(&added.Id, &added.Username, &added.Fullname)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.AddedUser{}, internal_errors.BadRequest("username tidak tersedia")
	}
	if err != nil {
		return domain.AddedUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return added, nil
}

func (s *Storage) UserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password, fullname
		FROM users
		WHERE username = $1`,
		username,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.Fullname)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, internal_errors.NotFound("user not found")
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
