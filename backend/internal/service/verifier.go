package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// Guard is one existence or ownership check. It returns nil when the check passes.
type Guard func(ctx context.Context) error

// Verifier builds the guards mutating use cases run before their effect.
type Verifier struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

func NewVerifier(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Verifier {
	return &Verifier{threads: threads, comments: comments, replies: replies}
}

// Cascade runs guards in order and returns the first failure.
// Guards after a failure are never called.
func Cascade(ctx context.Context, guards ...Guard) error {
	for _, guard := range guards {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := guard(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (v *Verifier) ThreadExists(id domain.ThreadId) Guard {
	return func(ctx context.Context) error {
		ok, err := v.threads.ThreadExists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check thread %s: %w", id, err)
		}
		if !ok {
			return internal_errors.NotFound("thread tidak ditemukan")
		}
		return nil
	}
}

func (v *Verifier) CommentExists(id domain.CommentId) Guard {
	return func(ctx context.Context) error {
		ok, err := v.comments.CommentExists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check comment %s: %w", id, err)
		}
		if !ok {
			return internal_errors.NotFound("comment tidak ditemukan")
		}
		return nil
	}
}

func (v *Verifier) ReplyExists(id domain.ReplyId) Guard {
	return func(ctx context.Context) error {
		ok, err := v.replies.ReplyExists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check reply %s: %w", id, err)
		}
		if !ok {
			return internal_errors.NotFound("reply tidak ditemukan")
		}
		return nil
	}
}

// CommentOwnedBy assumes the comment exists; put CommentExists before it.
func (v *Verifier) CommentOwnedBy(id domain.CommentId, userId domain.UserId) Guard {
	return func(ctx context.Context) error {
		ok, err := v.comments.CommentOwnedBy(ctx, id, userId)
		if err != nil {
			return fmt.Errorf("failed to check comment owner %s: %w", id, err)
		}
		if !ok {
			return internal_errors.Forbidden("akses comment tidak tersedia")
		}
		return nil
	}
}

func (v *Verifier) ReplyOwnedBy(id domain.ReplyId, userId domain.UserId) Guard {
	return func(ctx context.Context) error {
		ok, err := v.replies.ReplyOwnedBy(ctx, id, userId)
		if err != nil {
			return fmt.Errorf("failed to check reply owner %s: %w", id, err)
		}
		if !ok {
			return internal_errors.Forbidden("akses reply tidak tersedia")
		}
		return nil
	}
}
