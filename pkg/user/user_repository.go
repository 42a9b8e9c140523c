package user

import (
	"context"

	"PlateShare-Backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	UserRepository interface {
		EnsureIndexes(ctx context.Context) error
		Insert(ctx context.Context, user *entities.User) (*mongo.InsertOneResult, error)
		FindAll(ctx context.Context) ([]entities.User, error)
		FindByEmail(ctx context.Context, email string) (*entities.User, error)
		DeleteByEmail(ctx context.Context, email string) (*mongo.DeleteResult, error)
	}

	userRepository struct {
		collection *mongo.Collection
	}
)

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection("users")}
}

// EnsureIndexes creates the unique index on email that backs the
// one-user-per-email invariant. The original deployment relied on an
// application-level existence check alone, which races under concurrent
// signups; the index closes that hole.
func (r *userRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *userRepository) Insert(ctx context.Context, user *entities.User) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, user)
}

func (r *userRepository) FindAll(ctx context.Context) ([]entities.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	users := make([]entities.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) DeleteByEmail(ctx context.Context, email string) (*mongo.DeleteResult, error) {
	return r.collection.DeleteOne(ctx, bson.M{"email": email})
}
