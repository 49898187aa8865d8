package user

import (
	"context"
	"errors"
	"time"

	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Mongo struct {
	coll *mongo.Collection
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id string, patch *model.UserPatch) (bool, error)
	SetLastAccessed(ctx context.Context, id string, t time.Time) error
	Delete(ctx context.Context, id string) (bool, error)
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &Mongo{coll: db.Collection(constant.CollectionUser)}
}

func (r *Mongo) Create(ctx context.Context, user *model.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	return err
}

func (r *Mongo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *Mongo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *Mongo) Update(ctx context.Context, id string, patch *model.UserPatch) (bool, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Password != nil {
		set["pwd"] = *patch.Password
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Latitude != nil {
		set["lattitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		set["longitude"] = *patch.Longitude
	}
	if patch.Phone != nil {
		set["phoneno"] = *patch.Phone
	}
	if patch.ProfilePic != nil {
		set["profilePic"] = *patch.ProfilePic
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *Mongo) SetLastAccessed(ctx context.Context, id string, t time.Time) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"lastAccessed": t}})
	return err
}

func (r *Mongo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
