package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
	"golang.org/x/sync/errgroup"
)

// Materializer assembles the nested thread view from flat rows.
// It issues exactly one read per entity kind, whatever the number of comments.
type Materializer struct {
	verifier *Verifier
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
	likes    LikeStorage
}

func NewMaterializer(verifier *Verifier, threads ThreadStorage, comments CommentStorage, replies ReplyStorage, likes LikeStorage) *Materializer {
	return &Materializer{
		verifier: verifier,
		threads:  threads,
		comments: comments,
		replies:  replies,
		likes:    likes,
	}
}

// Thread fails with NotFound before any fetch when the thread does not exist.
func (m *Materializer) Thread(ctx context.Context, id domain.ThreadId) (domain.MaterializedThread, error) {
	if err := Cascade(ctx, m.verifier.ThreadExists(id)); err != nil {
		return domain.MaterializedThread{}, err
	}

	var (
		detail   domain.ThreadDetail
		comments []domain.CommentRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if detail, err = m.threads.GetThread(gctx, id); err != nil {
			return fmt.Errorf("failed to get thread %s: %w", id, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if comments, err = m.comments.CommentsByThread(gctx, id); err != nil {
			return fmt.Errorf("failed to list comments of thread %s: %w", id, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.MaterializedThread{}, err
	}

	var (
		replies []domain.ReplyRow
		counts  []domain.LikeCount
	)
	if len(comments) > 0 {
		ids := make([]domain.CommentId, len(comments))
		for i, c := range comments {
			ids[i] = c.Id
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			if replies, err = m.replies.RepliesByCommentIds(gctx, ids); err != nil {
				return fmt.Errorf("failed to list replies: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if counts, err = m.likes.LikeCountsByCommentIds(gctx, ids); err != nil {
				return fmt.Errorf("failed to count likes: %w", err)
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			return domain.MaterializedThread{}, err
		}
	}

	logger.Log.Debug("materializing thread", "thread_id", id, "comments", len(comments), "replies", len(replies))
	return assemble(detail, comments, replies, counts)
}

// assemble is the pure part of materialization. Children are stably sorted by date,
// so rows that share a timestamp keep the order the store returned them in.
func assemble(detail domain.ThreadDetail, comments []domain.CommentRow, replies []domain.ReplyRow, counts []domain.LikeCount) (domain.MaterializedThread, error) {
	comments = slices.Clone(comments)
	slices.SortStableFunc(comments, func(a, b domain.CommentRow) int { return a.Date.Compare(b.Date) })
	replies = slices.Clone(replies)
	slices.SortStableFunc(replies, func(a, b domain.ReplyRow) int { return a.Date.Compare(b.Date) })

	repliesByComment := make(map[domain.CommentId][]domain.MaterializedReply, len(comments))
	for _, row := range replies {
		r, err := domain.NewMaterializedReply(row)
		if err != nil {
			return domain.MaterializedThread{}, err
		}
		repliesByComment[row.CommentId] = append(repliesByComment[row.CommentId], r)
	}

	likeCounts := make(map[domain.CommentId]int, len(counts))
	for _, c := range counts {
		likeCounts[c.CommentId] = c.Count
	}

	materialized := make([]domain.MaterializedComment, 0, len(comments))
	for _, row := range comments {
		// missing entries mean no replies and zero likes
		c, err := domain.NewMaterializedComment(row, repliesByComment[row.Id], likeCounts[row.Id])
		if err != nil {
			return domain.MaterializedThread{}, err
		}
		materialized = append(materialized, c)
	}

	return domain.NewMaterializedThread(detail, materialized)
}
