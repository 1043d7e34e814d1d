package pg

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/lib/pq"
)

func (s *Storage) LikeExists(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (bool, error) {
	ok, err := exists(ctx, s.db, `SELECT EXISTS(SELECT 1 FROM likes WHERE comment_id = $1 AND user_id = $2)`, commentId, userId)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return ok, nil
}

// AddLike is a no-op when the user already likes the comment.
func (s *Storage) AddLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO likes (id, comment_id, user_id, date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (comment_id, user_id) DO NOTHING`,
		s.id(domain.LikeIdPrefix), commentId, userId, s.now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

// RemoveLike deletes the row; likes are never soft deleted.
func (s *Storage) RemoveLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM likes WHERE comment_id = $1 AND user_id = $2`, commentId, userId); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) LikeCountsByCommentIds(ctx context.Context, ids []domain.CommentId) ([]domain.LikeCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT comment_id, COUNT(*)::int
		FROM likes
		WHERE comment_id = ANY($1)
		GROUP BY comment_id`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	defer rows.Close()

	var counts []domain.LikeCount
	for rows.Next() {
		var c domain.LikeCount
		if err := rows.Scan(&c.CommentId, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate like counts: %w", err)
	}
	return counts, nil
}
