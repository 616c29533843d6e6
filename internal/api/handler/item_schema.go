package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// createItemRequest uses a pointer for quantity so that an explicit zero
// (in stock but empty) is distinguishable from a missing field.
type createItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Quantity *int64  `json:"quantity" validate:"required,gte=0"`
}

// updateItemRequest carries a partial update; absent fields stay untouched.
// Present text fields must be non-empty.
type updateItemRequest struct {
	Name     *string  `json:"name,omitempty"     validate:"omitempty,min=1"`
	Category *string  `json:"category,omitempty" validate:"omitempty,min=1"`
	Price    *float64 `json:"price,omitempty"    validate:"omitempty,gt=0"`
	Quantity *int64   `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

// adjustStockRequest is the body of purchase and restock calls.
type adjustStockRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type itemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type itemEnvelope struct {
	Message string       `json:"message,omitempty"`
	Item    itemResponse `json:"item"`
}

type listItemsResponse struct {
	Count int            `json:"count"`
	Items []itemResponse `json:"items"`
}

type movementResponse struct {
	Kind          string    `json:"kind"`
	Amount        int64     `json:"amount"`
	QuantityAfter int64     `json:"quantity_after"`
	Actor         string    `json:"actor,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type listMovementsResponse struct {
	Count     int                `json:"count"`
	Movements []movementResponse `json:"movements"`
}

type deletedResponse struct {
	Message string `json:"message"`
}
