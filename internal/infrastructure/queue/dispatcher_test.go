package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

type capturingMovementRepo struct {
	mu       sync.Mutex
	inserted []domain.StockMovement
}

func (r *capturingMovementRepo) Insert(_ context.Context, m *domain.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserted = append(r.inserted, *m)
	return nil
}

func (r *capturingMovementRepo) ListByItem(_ context.Context, itemID string) ([]*domain.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.StockMovement
	for i := range r.inserted {
		if r.inserted[i].ItemID == itemID {
			m := r.inserted[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *capturingMovementRepo) snapshot() []domain.StockMovement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.StockMovement, len(r.inserted))
	copy(out, r.inserted)
	return out
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestDispatcher_PersistsEnqueuedMovements(t *testing.T) {
	repo := &capturingMovementRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.StockMovement{ItemID: "item-1", Kind: domain.MovementPurchase, Amount: 3, QuantityAfter: 7})
	d.Enqueue(domain.StockMovement{ItemID: "item-2", Kind: domain.MovementRestock, Amount: 5, QuantityAfter: 12})

	waitFor(t, time.Second, func() bool {
		return len(repo.snapshot()) == 2
	})
}

func TestDispatcher_SameItemRoutesToSameWorker(t *testing.T) {
	d := NewDispatcher(4, &capturingMovementRepo{}, zerolog.Nop())

	first := d.shardIndex("choco-bar")
	for i := 0; i < 50; i++ {
		if got := d.shardIndex("choco-bar"); got != first {
			t.Fatalf("shard index changed between calls: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_OrderPreservedPerItem(t *testing.T) {
	repo := &capturingMovementRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := int64(1); i <= 10; i++ {
		d.Enqueue(domain.StockMovement{ItemID: "gummy", Kind: domain.MovementPurchase, Amount: 1, QuantityAfter: 100 - i})
	}

	waitFor(t, time.Second, func() bool {
		return len(repo.snapshot()) == 10
	})

	got := repo.snapshot()
	for i := 1; i < len(got); i++ {
		if got[i].QuantityAfter >= got[i-1].QuantityAfter {
			t.Fatalf("movements persisted out of order: %d then %d", got[i-1].QuantityAfter, got[i].QuantityAfter)
		}
	}
}

// With no worker running, a flooded buffer must drop movements instead of
// stalling the caller.
func TestDispatcher_FullBufferDoesNotBlock(t *testing.T) {
	d := NewDispatcher(1, &capturingMovementRepo{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer+10; i++ {
			d.Enqueue(domain.StockMovement{ItemID: "gummy", Kind: domain.MovementPurchase, Amount: 1})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full worker buffer")
	}

	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("expected buffer to hold %d movements, got %d", channelBuffer, got)
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &capturingMovementRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
