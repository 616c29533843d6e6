package handler

import "github.com/sweetshop/inventory-system/internal/core/domain"

// toItemResponse maps a domain item to its transport representation.
func toItemResponse(item *domain.Item) itemResponse {
	return itemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Price:     item.Price,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func toItemList(items []*domain.Item) listItemsResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return listItemsResponse{Count: len(out), Items: out}
}

func toMovementList(movements []*domain.StockMovement) listMovementsResponse {
	out := make([]movementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, movementResponse{
			Kind:          string(m.Kind),
			Amount:        m.Amount,
			QuantityAfter: m.QuantityAfter,
			Actor:         m.Actor,
			Timestamp:     m.Timestamp,
		})
	}
	return listMovementsResponse{Count: len(out), Movements: out}
}
