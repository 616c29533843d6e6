package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// MovementRepository persists the stock movement audit trail.
type MovementRepository interface {
	Insert(ctx context.Context, m *domain.StockMovement) error
	// ListByItem returns the movements for one item, newest first.
	ListByItem(ctx context.Context, itemID string) ([]*domain.StockMovement, error)
}
