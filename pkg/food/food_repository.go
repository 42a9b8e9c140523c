package food

import (
	"context"

	"PlateShare-Backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	FoodRepository interface {
		FindAvailable(ctx context.Context) ([]entities.Food, error)
		FindFeatured(ctx context.Context, limit int64) ([]entities.Food, error)
		Insert(ctx context.Context, food *entities.Food) (*mongo.InsertOneResult, error)
		FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Food, error)
		UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error)
		DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	}

	foodRepository struct {
		collection *mongo.Collection
	}
)

func NewFoodRepository(db *mongo.Database) FoodRepository {
	return &foodRepository{collection: db.Collection("foods")}
}

func (r *foodRepository) FindAvailable(ctx context.Context) ([]entities.Food, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"food_status": entities.FoodStatusAvailable})
	if err != nil {
		return nil, err
	}

	foods := make([]entities.Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) FindFeatured(ctx context.Context, limit int64) ([]entities.Food, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "food_quantity", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	foods := make([]entities.Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) Insert(ctx context.Context, food *entities.Food) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, food)
}

func (r *foodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Food, error) {
	var food entities.Food
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

func (r *foodRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.collection.DeleteOne(ctx, bson.M{"_id": id})
}
