package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type ThreadService interface {
	Create(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.MaterializedThread, error)
}

type Thread struct {
	storage      ThreadStorage
	materializer *Materializer
}

func NewThread(storage ThreadStorage, materializer *Materializer) ThreadService {
	return &Thread{storage, materializer}
}

// Create expects data already validated at the boundary.
func (b *Thread) Create(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	added, err := b.storage.AddThread(ctx, data)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to add thread: %w", err)
	}
	logger.Log.Debug("thread created", "thread_id", added.Id, "owner", added.Owner)
	return added, nil
}

func (b *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.MaterializedThread, error) {
	return b.materializer.Thread(ctx, id)
}
