package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type LikeService interface {
	// Toggle flips the like of userId on commentId and reports the new state.
	Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) (bool, error)
}

type Like struct {
	storage  LikeStorage
	verifier *Verifier
}

func NewLike(storage LikeStorage, verifier *Verifier) LikeService {
	return &Like{storage, verifier}
}

// Toggle reads then acts. Two concurrent toggles by the same user may both see
// "not liked"; the store keeps at most one row per (comment, user) in that case.
func (l *Like) Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) (bool, error) {
	err := Cascade(ctx,
		l.verifier.ThreadExists(threadId),
		l.verifier.CommentExists(commentId),
	)
	if err != nil {
		return false, err
	}

	liked, err := l.storage.LikeExists(ctx, commentId, userId)
	if err != nil {
		return false, fmt.Errorf("failed to read like state: %w", err)
	}

	if liked {
		if err := l.storage.RemoveLike(ctx, commentId, userId); err != nil {
			return false, fmt.Errorf("failed to remove like: %w", err)
		}
		logger.Log.Debug("like removed", "comment_id", commentId, "user_id", userId)
		return false, nil
	}

	if err := l.storage.AddLike(ctx, commentId, userId); err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}
	logger.Log.Debug("like added", "comment_id", commentId, "user_id", userId)
	return true, nil
}
