package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes stock movements to a fixed set of workers using
// consistent hashing on the item id, guaranteeing that an item's audit
// trail is written in the order the ledger applied the movements.
type Dispatcher struct {
	workers []chan domain.StockMovement
	repo    ports.MovementRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.MovementRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.StockMovement, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.StockMovement, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a movement to the worker responsible for its item. The
// send never blocks: when a worker's buffer is full, the movement is
// dropped and counted, keeping the ledger's request path unaffected.
func (d *Dispatcher) Enqueue(m domain.StockMovement) {
	i := d.shardIndex(m.ItemID)
	workerID := strconv.Itoa(i)
	select {
	case d.workers[i] <- m:
		metrics.MovementsQueueDepth.WithLabelValues(workerID).Set(float64(len(d.workers[i])))
	default:
		metrics.MovementsDroppedTotal.WithLabelValues(workerID).Inc()
		d.log.Warn().
			Str("item_id", m.ItemID).
			Str("kind", string(m.Kind)).
			Int("worker_id", i).
			Msg("movement dropped, worker queue full")
	}
}

// shardIndex maps an item id deterministically to a worker index.
func (d *Dispatcher) shardIndex(itemID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(itemID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.StockMovement) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			metrics.MovementsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, &m); err != nil {
				d.log.Error().Err(err).
					Str("item_id", m.ItemID).
					Str("kind", string(m.Kind)).
					Int("worker_id", id).
					Msg("movement audit write failed")
			}
		}
	}
}
