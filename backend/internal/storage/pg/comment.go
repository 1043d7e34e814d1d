package pg

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
)

func (s *Storage) CommentExists(ctx context.Context, id domain.CommentId) (bool, error) {
	ok, err := exists(ctx, s.db, `SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check comment: %w", err)
	}
	return ok, nil
}

func (s *Storage) CommentOwnedBy(ctx context.Context, id domain.CommentId, userId domain.UserId) (bool, error) {
	ok, err := exists(ctx, s.db, `SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1 AND owner = $2)`, id, userId)
	if err != nil {
		return false, fmt.Errorf("failed to check comment owner: %w", err)
	}
	return ok, nil
}

func (s *Storage) AddComment(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	var added domain.AddedComment
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (id, content, thread_id, owner, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, content, owner`,
		s.id(domain.CommentIdPrefix), data.Content, data.ThreadId, data.Owner, s.now(),
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

func (s *Storage) CommentsByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, u.username, c.date, c.content, c.is_delete
		FROM comments c
		JOIN users u ON u.id = c.owner
		WHERE c.thread_id = $1
		ORDER BY c.date ASC, c.seq ASC`,
		threadId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentRow
	for rows.Next() {
		var c domain.CommentRow
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.Date = c.Date.UTC()
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

func (s *Storage) SoftDeleteComment(ctx context.Context, id domain.CommentId) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE comments SET is_delete = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to soft delete comment: %w", err)
	}
	return nil
}
