package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// AdjustStockInput carries the parameters of one ledger operation.
type AdjustStockInput struct {
	ItemID string
	Amount int64
	// Actor is the id of the authenticated caller, recorded on the movement.
	Actor string
	// IdempotencyKey, when non-empty, guards the purchase against
	// duplicate submission.
	IdempotencyKey string
}

// MovementRecorder is the async sink for stock movement audit records.
// Recording is best-effort: the ledger operation itself has already
// committed when a movement is enqueued.
type MovementRecorder interface {
	Enqueue(m domain.StockMovement)
}

// StockService is the stock ledger: the sole authority over the quantity
// field. Purchase and Restock are linearizable per item.
type StockService interface {
	// Initialize persists a new item with its starting quantity and records
	// the initial movement. Fails with domain.ErrInvalidQuantity when the
	// quantity is negative.
	Initialize(ctx context.Context, item *domain.Item) error
	// Purchase atomically decrements stock. Fails with
	// domain.ErrInsufficientStock when the amount exceeds available stock,
	// leaving the quantity unchanged.
	Purchase(ctx context.Context, input AdjustStockInput) (*domain.Item, error)
	// Restock atomically increments stock. No upper bound is enforced.
	Restock(ctx context.Context, input AdjustStockInput) (*domain.Item, error)
}
