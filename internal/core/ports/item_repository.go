package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// ItemFilter carries the optional catalog search criteria. All present
// criteria are combined with logical AND; zero values impose no constraint.
type ItemFilter struct {
	Name     string   // case-insensitive substring match
	Category string   // case-insensitive substring match
	MinPrice *float64 // inclusive lower bound
	MaxPrice *float64 // inclusive upper bound
}

// ItemUpdate carries a partial update for the admin path. Nil fields are
// left untouched. Quantity here is a direct overwrite that bypasses the
// ledger; invariant-safe adjustment goes through Decrement/IncrementQuantity.
type ItemUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
}

// ItemRepository defines persistence operations for catalog items.
//
// DecrementQuantity and IncrementQuantity are the ledger's atomic
// primitives: the backing store must apply the read-validate-write sequence
// as a single operation per item (conditional update), so that two
// concurrent decrements can never drive quantity negative or lose an update.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	// Update applies the non-nil fields of upd and returns the updated item.
	Update(ctx context.Context, id string, upd ItemUpdate) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
	// List returns all items, newest first.
	List(ctx context.Context) ([]*domain.Item, error)
	Search(ctx context.Context, filter ItemFilter) ([]*domain.Item, error)

	// DecrementQuantity atomically subtracts amount when quantity >= amount
	// and returns the post-operation item. Fails with
	// domain.ErrInsufficientStock (state unchanged) when stock does not
	// cover amount, or domain.ErrItemNotFound when id is absent.
	DecrementQuantity(ctx context.Context, id string, amount int64) (*domain.Item, error)
	// IncrementQuantity atomically adds amount and returns the
	// post-operation item. Fails with domain.ErrItemNotFound when id is absent.
	IncrementQuantity(ctx context.Context, id string, amount int64) (*domain.Item, error)
}
