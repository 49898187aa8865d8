package otp

import (
	"context"
	"errors"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	coll *mongo.Collection
}

type OTPRepository interface {
	Upsert(ctx context.Context, record *model.OTPRecord) error
	Get(ctx context.Context, email string) (*model.OTPRecord, error)
	Delete(ctx context.Context, email string) error
}

func NewOTPRepository(db *mongo.Database) OTPRepository {
	return &Mongo{coll: db.Collection(constant.CollectionOTP)}
}

// Upsert keeps at most one live code per email; reissuing replaces the
// previous one.
func (r *Mongo) Upsert(ctx context.Context, record *model.OTPRecord) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"email": record.Email},
		bson.M{"$set": bson.M{"otp": record.OTP, "expires_at": record.ExpiresAt}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *Mongo) Get(ctx context.Context, email string) (*model.OTPRecord, error) {
	var record model.OTPRecord
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *Mongo) Delete(ctx context.Context, email string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	return err
}
