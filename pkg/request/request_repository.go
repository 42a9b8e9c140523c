package request

import (
	"context"

	"PlateShare-Backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	RequestRepository interface {
		Insert(ctx context.Context, request *entities.FoodRequest) (*mongo.InsertOneResult, error)
		FindByFood(ctx context.Context, foodID string) ([]entities.FoodRequest, error)
		FindByRequester(ctx context.Context, email string) ([]entities.FoodRequest, error)
		FindByID(ctx context.Context, id primitive.ObjectID) (*entities.FoodRequest, error)
		UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
		DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	}

	requestRepository struct {
		collection *mongo.Collection
	}
)

func NewRequestRepository(db *mongo.Database) RequestRepository {
	return &requestRepository{collection: db.Collection("foodRequests")}
}

func (r *requestRepository) Insert(ctx context.Context, request *entities.FoodRequest) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, request)
}

// FindByFood matches foodId as a plain string, the way the documents
// store it. It is not an ObjectID-typed lookup.
func (r *requestRepository) FindByFood(ctx context.Context, foodID string) ([]entities.FoodRequest, error) {
	return r.findAll(ctx, bson.M{"foodId": foodID})
}

func (r *requestRepository) FindByRequester(ctx context.Context, email string) ([]entities.FoodRequest, error) {
	return r.findAll(ctx, bson.M{"requesterEmail": email})
}

func (r *requestRepository) findAll(ctx context.Context, filter bson.M) ([]entities.FoodRequest, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	requests := make([]entities.FoodRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.FoodRequest, error) {
	var request entities.FoodRequest
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
}

func (r *requestRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.collection.DeleteOne(ctx, bson.M{"_id": id})
}
