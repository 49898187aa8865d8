package cart

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

type CartRepository interface {
	AddIfAbsent(ctx context.Context, entry *model.CartEntry) (bool, error)
	UpdateStatus(ctx context.Context, userID, productID, status string) (bool, error)
	Delete(ctx context.Context, userID, productID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.CartEntry, error)
	MarkSold(ctx context.Context, userID string, productIDs []string) error
}

func NewCartRepository(db *mongo.Database) CartRepository {
	return &Mongo{coll: db.Collection(constant.CollectionCart)}
}

// AddIfAbsent inserts the entry only when no document exists for the
// (user_id, product_id) pair, as a single conditional upsert so concurrent
// adds cannot both succeed. Returns false when the pair already existed.
func (r *Mongo) AddIfAbsent(ctx context.Context, entry *model.CartEntry) (bool, error) {
	filter := bson.M{"user_id": entry.UserID, "product_id": entry.ProductID}
	update := bson.M{"$setOnInsert": bson.M{
		"user_id":    entry.UserID,
		"product_id": entry.ProductID,
		"status":     entry.Status,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *Mongo) UpdateStatus(ctx context.Context, userID, productID, status string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"user_id": userID, "product_id": productID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *Mongo) Delete(ctx context.Context, userID, productID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "product_id": productID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *Mongo) ListByUser(ctx context.Context, userID string) ([]model.CartEntry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	entries := make([]model.CartEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Mongo) MarkSold(ctx context.Context, userID string, productIDs []string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"user_id": userID, "product_id": bson.M{"$in": productIDs}},
		bson.M{"$set": bson.M{"status": constant.CartStatusSold}},
	)
	return err
}
