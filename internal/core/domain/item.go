package domain

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("item not found")
var ErrInvalidPrice = errors.New("price must be positive")
var ErrInvalidQuantity = errors.New("quantity cannot be negative")
var ErrInvalidAmount = errors.New("amount must be positive")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrDuplicatePurchase = errors.New("duplicate purchase request")
var ErrForbidden = errors.New("access forbidden")

// Item is the core aggregate: a single catalog entry with its stock level.
//
// Quantity is owned by the stock ledger and must only change through its
// atomic decrement/increment operations; every other field is plain
// last-writer-wins under the catalog admin path.
type Item struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Category  string    `json:"category" bson:"category"`
	Price     float64   `json:"price" bson:"price"`
	Quantity  int64     `json:"quantity" bson:"quantity"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
