package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type ReplyService interface {
	Add(ctx context.Context, threadId domain.ThreadId, data domain.ReplyCreationData) (domain.AddedReply, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error
}

type Reply struct {
	storage  ReplyStorage
	verifier *Verifier
}

func NewReply(storage ReplyStorage, verifier *Verifier) ReplyService {
	return &Reply{storage, verifier}
}

func (r *Reply) Add(ctx context.Context, threadId domain.ThreadId, data domain.ReplyCreationData) (domain.AddedReply, error) {
	err := Cascade(ctx,
		r.verifier.ThreadExists(threadId),
		r.verifier.CommentExists(data.CommentId),
	)
	if err != nil {
		return domain.AddedReply{}, err
	}

	added, err := r.storage.AddReply(ctx, data)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to add reply: %w", err)
	}
	logger.Log.Debug("reply added", "comment_id", data.CommentId, "reply_id", added.Id)
	return added, nil
}

func (r *Reply) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error {
	err := Cascade(ctx,
		r.verifier.ThreadExists(threadId),
		r.verifier.CommentExists(commentId),
		r.verifier.ReplyExists(replyId),
		r.verifier.ReplyOwnedBy(replyId, userId),
	)
	if err != nil {
		return err
	}

	if err := r.storage.SoftDeleteReply(ctx, replyId); err != nil {
		return fmt.Errorf("failed to delete reply %s: %w", replyId, err)
	}
	return nil
}
