package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// CatalogService implements catalog queries and the admin mutations.
// Quantity at creation time is handed to the stock ledger; the partial
// update path deliberately allows a direct quantity overwrite as an admin
// correction, outside the ledger's atomic protocol.
type CatalogService struct {
	repo      ports.ItemRepository
	movements ports.MovementRepository
	ledger    ports.StockService
	logger    zerolog.Logger
}

func NewCatalogService(
	repo ports.ItemRepository,
	movements ports.MovementRepository,
	ledger ports.StockService,
	logger zerolog.Logger,
) *CatalogService {
	return &CatalogService{repo: repo, movements: movements, ledger: ledger, logger: logger}
}

// CreateItem validates the input, assigns an id, and initializes the ledger.
func (s *CatalogService) CreateItem(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	if input.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now().UTC()
	item := &domain.Item{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.ledger.Initialize(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create item")
		return nil, err
	}

	s.logger.Info().Str("item_id", item.ID).Str("category", item.Category).Msg("item created")
	return item, nil
}

func (s *CatalogService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return s.repo.List(ctx)
}

// SearchItems filters the catalog. A search with no matches returns an
// empty slice, not an error.
func (s *CatalogService) SearchItems(ctx context.Context, input ports.SearchItemsInput) ([]*domain.Item, error) {
	return s.repo.Search(ctx, ports.ItemFilter{
		Name:     input.Name,
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	})
}

// UpdateItem applies only the provided fields.
func (s *CatalogService) UpdateItem(ctx context.Context, id string, input ports.UpdateItemInput) (*domain.Item, error) {
	if input.Price != nil && *input.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := s.repo.Update(ctx, id, ports.ItemUpdate{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
	})
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	if input.Quantity != nil {
		// Admin correction path: the overwrite bypasses the ledger.
		s.logger.Warn().Str("item_id", id).Int64("quantity", *input.Quantity).Msg("quantity overwritten outside ledger")
	}

	return item, nil
}

// DeleteItem removes the record permanently; the id is immediately invalid
// for purchase and restock.
func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.logger.Info().Str("item_id", id).Msg("item deleted")
	return nil
}

// ListMovements returns the audit trail for one item, newest first.
func (s *CatalogService) ListMovements(ctx context.Context, itemID string) ([]*domain.StockMovement, error) {
	if _, err := s.repo.FindByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.movements.ListByItem(ctx, itemID)
}
