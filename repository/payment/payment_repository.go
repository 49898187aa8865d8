package payment

import (
	"context"
	"fmt"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Mongo struct {
	coll *mongo.Collection
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (string, error)
}

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &Mongo{coll: db.Collection(constant.CollectionPayments)}
}

// Create appends a ledger entry and returns the generated document id.
func (r *Mongo) Create(ctx context.Context, payment *model.Payment) (string, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}
