package product

import (
	"context"
	"errors"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Mongo struct {
	coll *mongo.Collection
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, id string, patch *model.ProductPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query *model.ProductQuery) ([]model.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]model.Product, error)
	GetAvailableByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	SetStatusByIDs(ctx context.Context, ids []string, status string) error
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &Mongo{coll: db.Collection(constant.CollectionProducts)}
}

func (r *Mongo) Create(ctx context.Context, product *model.Product) error {
	_, err := r.coll.InsertOne(ctx, product)
	return err
}

func (r *Mongo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *Mongo) Update(ctx context.Context, id string, patch *model.ProductPatch) (bool, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.SellerID != nil {
		set["seller_id"] = *patch.SellerID
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.UpdatedAt != nil {
		set["updated_at"] = *patch.UpdatedAt
	}
	if patch.Images != nil {
		set["images"] = *patch.Images
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *Mongo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Search runs the browse filter: availability, optional case-insensitive
// name substring, optional category, price range.
func (r *Mongo) Search(ctx context.Context, query *model.ProductQuery) ([]model.Product, error) {
	filter := bson.M{
		"status": query.Status,
		"price":  bson.M{"$gte": query.MinPrice, "$lte": query.MaxPrice},
	}
	if query.Name != "" {
		filter["name"] = primitive.Regex{Pattern: query.Name, Options: "i"}
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Mongo) ListBySeller(ctx context.Context, sellerID string) ([]model.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"seller_id": sellerID})
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Mongo) GetAvailableByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	filter := bson.M{
		"_id":    bson.M{"$in": ids},
		"status": constant.ProductStatusAvailable,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Mongo) SetStatusByIDs(ctx context.Context, ids []string, status string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}
