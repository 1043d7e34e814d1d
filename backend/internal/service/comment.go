package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type CommentService interface {
	Add(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

type Comment struct {
	storage  CommentStorage
	verifier *Verifier
}

func NewComment(storage CommentStorage, verifier *Verifier) CommentService {
	return &Comment{storage, verifier}
}

func (c *Comment) Add(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	if err := Cascade(ctx, c.verifier.ThreadExists(data.ThreadId)); err != nil {
		return domain.AddedComment{}, err
	}

	added, err := c.storage.AddComment(ctx, data)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to add comment: %w", err)
	}
	logger.Log.Debug("comment added", "thread_id", data.ThreadId, "comment_id", added.Id)
	return added, nil
}

// Delete only flips the soft delete flag, the content stays in storage.
func (c *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	err := Cascade(ctx,
		c.verifier.ThreadExists(threadId),
		c.verifier.CommentExists(commentId),
		c.verifier.CommentOwnedBy(commentId, userId),
	)
	if err != nil {
		return err
	}

	if err := c.storage.SoftDeleteComment(ctx, commentId); err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentId, err)
	}
	return nil
}
