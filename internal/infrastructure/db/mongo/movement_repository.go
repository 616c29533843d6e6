package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

const collectionMovements = "stock_movements"

// MovementRepository implements ports.MovementRepository using MongoDB.
type MovementRepository struct {
	col *mongo.Collection
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(db *mongo.Database) ports.MovementRepository {
	return &MovementRepository{col: db.Collection(collectionMovements)}
}

// Insert persists a movement to the stock_movements audit collection.
func (r *MovementRepository) Insert(ctx context.Context, m *domain.StockMovement) error {
	doc := bson.M{
		"item_id":        m.ItemID,
		"kind":           string(m.Kind),
		"amount":         m.Amount,
		"quantity_after": m.QuantityAfter,
		"timestamp":      m.Timestamp.UTC(),
		"recorded_at":    time.Now().UTC(),
	}
	if m.Actor != "" {
		doc["actor"] = m.Actor
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// ListByItem returns the movements for one item, newest first.
func (r *MovementRepository) ListByItem(ctx context.Context, itemID string) ([]*domain.StockMovement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx,
		bson.M{"item_id": itemID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	movements := []*domain.StockMovement{}
	for cur.Next(ctx) {
		var doc struct {
			ItemID        string    `bson:"item_id"`
			Kind          string    `bson:"kind"`
			Amount        int64     `bson:"amount"`
			QuantityAfter int64     `bson:"quantity_after"`
			Actor         string    `bson:"actor,omitempty"`
			Timestamp     time.Time `bson:"timestamp"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		movements = append(movements, &domain.StockMovement{
			ItemID:        doc.ItemID,
			Kind:          domain.MovementKind(doc.Kind),
			Amount:        doc.Amount,
			QuantityAfter: doc.QuantityAfter,
			Actor:         doc.Actor,
			Timestamp:     doc.Timestamp,
		})
	}
	return movements, cur.Err()
}
