package order

import (
	"context"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	coll *mongo.Collection
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &Mongo{coll: db.Collection(constant.CollectionOrders)}
}

func (r *Mongo) Create(ctx context.Context, order *model.Order) error {
	_, err := r.coll.InsertOne(ctx, order)
	return err
}

// ListByUser returns the user's orders most-recent first.
func (r *Mongo) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
