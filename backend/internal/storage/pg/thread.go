package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) ThreadExists(ctx context.Context, id domain.ThreadId) (bool, error) {
	ok, err := exists(ctx, s.db, `SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check thread: %w", err)
	}
	return ok, nil
}

func (s *Storage) AddThread(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	var added domain.AddedThread
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO threads (id, title, body, owner, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, owner`,
		s.id(domain.ThreadIdPrefix), data.Title, data.Body, data.Owner, s.now(),
	).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) GetThread(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	var t domain.ThreadDetail
	err := s.db.QueryRowContext(ctx, `
		SELECT t.id, t.title, t.body, u.username, t.date
		FROM threads t
		JOIN users u ON u.id = t.owner
		WHERE t.id = $1`,
		id,
	).Scan(&t.Id, &t.Title, &t.Body, &t.Username, &t.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ThreadDetail{}, internal_errors.NotFound("thread tidak ditemukan")
	}
	if err != nil {
		return domain.ThreadDetail{}, fmt.Errorf("failed to get thread: %w", err)
	}
	t.Date = t.Date.UTC()
	return t, nil
}
