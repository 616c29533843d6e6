package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// CreateItemInput carries all data needed to create a new catalog item.
type CreateItemInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int64
}

// UpdateItemInput is the partial-update DTO for the admin path. Nil fields
// are not touched.
type UpdateItemInput struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
}

// SearchItemsInput carries the catalog search criteria.
type SearchItemsInput struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// CatalogService defines the catalog query and admin use cases.
type CatalogService interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]*domain.Item, error)
	SearchItems(ctx context.Context, input SearchItemsInput) ([]*domain.Item, error)
	UpdateItem(ctx context.Context, id string, input UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
	ListMovements(ctx context.Context, itemID string) ([]*domain.StockMovement, error)
}
