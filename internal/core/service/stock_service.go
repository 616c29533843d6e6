package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// DedupChecker abstracts the purchase idempotency store (Redis).
type DedupChecker interface {
	// MarkOnce records key and reports whether it was seen for the first
	// time. A false result means the same key was already processed.
	MarkOnce(ctx context.Context, key string) (bool, error)
	// Unmark releases a key claimed by MarkOnce so the same key can be
	// retried after a failed operation.
	Unmark(ctx context.Context, key string) error
}

// stockService is the stock ledger. It never reads-then-writes quantity
// itself: both adjustment directions delegate to the repository's atomic
// conditional update, so the non-negativity invariant holds under any
// number of concurrent callers.
type stockService struct {
	repo     ports.ItemRepository
	dedup    DedupChecker
	recorder ports.MovementRecorder
	log      zerolog.Logger
}

// NewStockService returns a StockService implementation. dedup and recorder
// may be nil, which disables purchase idempotency and movement auditing
// respectively (used by tests).
func NewStockService(
	repo ports.ItemRepository,
	dedup DedupChecker,
	recorder ports.MovementRecorder,
	log zerolog.Logger,
) ports.StockService {
	return &stockService{
		repo:     repo,
		dedup:    dedup,
		recorder: recorder,
		log:      log,
	}
}

// Initialize persists a freshly created item and records its opening stock.
func (s *stockService) Initialize(ctx context.Context, item *domain.Item) error {
	if item.Quantity < 0 {
		return domain.ErrInvalidQuantity
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return fmt.Errorf("initialize stock: %w", err)
	}

	s.record(domain.StockMovement{
		ItemID:        item.ID,
		Kind:          domain.MovementInitial,
		Amount:        item.Quantity,
		QuantityAfter: item.Quantity,
		Timestamp:     item.CreatedAt,
	})
	return nil
}

// Purchase decrements stock for a sale.
func (s *stockService) Purchase(ctx context.Context, in ports.AdjustStockInput) (*domain.Item, error) {
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	// Idempotency check — reject replays of the same purchase key.
	claimed := ""
	if in.IdempotencyKey != "" && s.dedup != nil {
		key := "purchase:" + in.IdempotencyKey
		first, err := s.dedup.MarkOnce(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("item_id", in.ItemID).Msg("dedup check failed, processing anyway")
		} else if !first {
			s.log.Debug().Str("idempotency_key", in.IdempotencyKey).Msg("duplicate purchase skipped")
			return nil, domain.ErrDuplicatePurchase
		} else {
			claimed = key
		}
	}

	item, err := s.repo.DecrementQuantity(ctx, in.ItemID, in.Amount)
	if err != nil {
		// The key guards a completed purchase only. Release it so a retry
		// of a failed request is not rejected as a duplicate.
		if claimed != "" {
			if uerr := s.dedup.Unmark(ctx, claimed); uerr != nil {
				s.log.Warn().Err(uerr).Str("item_id", in.ItemID).Msg("dedup release failed")
			}
		}
		return nil, fmt.Errorf("purchase: %w", err)
	}

	s.record(domain.StockMovement{
		ItemID:        item.ID,
		Kind:          domain.MovementPurchase,
		Amount:        in.Amount,
		QuantityAfter: item.Quantity,
		Actor:         in.Actor,
		Timestamp:     time.Now().UTC(),
	})

	s.log.Info().
		Str("item_id", item.ID).
		Int64("amount", in.Amount).
		Int64("remaining", item.Quantity).
		Msg("purchase applied")

	return item, nil
}

// Restock increments stock for a replenishment.
func (s *stockService) Restock(ctx context.Context, in ports.AdjustStockInput) (*domain.Item, error) {
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	item, err := s.repo.IncrementQuantity(ctx, in.ItemID, in.Amount)
	if err != nil {
		return nil, fmt.Errorf("restock: %w", err)
	}

	s.record(domain.StockMovement{
		ItemID:        item.ID,
		Kind:          domain.MovementRestock,
		Amount:        in.Amount,
		QuantityAfter: item.Quantity,
		Actor:         in.Actor,
		Timestamp:     time.Now().UTC(),
	})

	s.log.Info().
		Str("item_id", item.ID).
		Int64("amount", in.Amount).
		Int64("quantity", item.Quantity).
		Msg("restock applied")

	return item, nil
}

// record enqueues an audit movement. Auditing never fails the operation.
func (s *stockService) record(m domain.StockMovement) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(m)
}
