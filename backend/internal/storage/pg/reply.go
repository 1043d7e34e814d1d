package pg

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/lib/pq"
)

func (s *Storage) ReplyExists(ctx context.Context, id domain.ReplyId) (bool, error) {
	ok, err := exists(ctx, s.db, `SELECT EXISTS(SELECT 1 FROM replies WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check reply: %w", err)
	}
	return ok, nil
}

func (s *Storage) ReplyOwnedBy(ctx context.Context, id domain.ReplyId, userId domain.UserId) (bool, error) {
	ok, err := exists(ctx, s.db, `SELECT EXISTS(SELECT 1 FROM replies WHERE id = $1 AND owner = $2)`, id, userId)
	if err != nil {
		return false, fmt.Errorf("failed to check reply owner: %w", err)
	}
	return ok, nil
}

func (s *Storage) AddReply(ctx context.Context, data domain.ReplyCreationData) (domain.AddedReply, error) {
	var added domain.AddedReply
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO replies (id, content, comment_id, owner, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, content, owner`,
		s.id(domain.ReplyIdPrefix), data.Content, data.CommentId, data.Owner, s.now(),
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return added, nil
}

// RepliesByCommentIds fetches the replies of every given comment in one query.
func (s *Storage) RepliesByCommentIds(ctx context.Context, ids []domain.CommentId) ([]domain.ReplyRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.comment_id, u.username, r.date, r.content, r.is_delete
		FROM replies r
		JOIN users u ON u.id = r.owner
		WHERE r.comment_id = ANY($1)
		ORDER BY r.date ASC, r.seq ASC`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.ReplyRow
	for rows.Next() {
		var r domain.ReplyRow
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Username, &r.Date, &r.Content, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		r.Date = r.Date.UTC()
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}
	return replies, nil
}

func (s *Storage) SoftDeleteReply(ctx context.Context, id domain.ReplyId) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE replies SET is_delete = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to soft delete reply: %w", err)
	}
	return nil
}
