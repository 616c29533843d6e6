package domain

import "time"

// MovementKind classifies a stock movement.
type MovementKind string

const (
	MovementInitial  MovementKind = "initial"
	MovementPurchase MovementKind = "purchase"
	MovementRestock  MovementKind = "restock"
)

// StockMovement is the audit record of one ledger-applied quantity change.
type StockMovement struct {
	ItemID        string       `json:"item_id"`
	Kind          MovementKind `json:"kind"`
	Amount        int64        `json:"amount"`
	QuantityAfter int64        `json:"quantity_after"`
	Actor         string       `json:"actor"` // user id of the caller, when known
	Timestamp     time.Time    `json:"timestamp"`
}
