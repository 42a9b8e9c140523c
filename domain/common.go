package domain

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrInvalidObjectID = errors.New("invalid object id")
)

type (
	// InsertResult, UpdateResult and DeleteResult mirror the write
	// acknowledgments the MongoDB driver hands back, serialized with the
	// field names clients of the original deployment already depend on.
	InsertResult struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}

	UpdateResult struct {
		Acknowledged  bool    `json:"acknowledged"`
		MatchedCount  int64   `json:"matchedCount"`
		ModifiedCount int64   `json:"modifiedCount"`
		UpsertedCount int64   `json:"upsertedCount"`
		UpsertedID    *string `json:"upsertedId"`
	}

	DeleteResult struct {
		Acknowledged bool  `json:"acknowledged"`
		DeletedCount int64 `json:"deletedCount"`
	}
)

func NewInsertResult(res *mongo.InsertOneResult) InsertResult {
	return InsertResult{
		Acknowledged: true,
		InsertedID:   hexID(res.InsertedID),
	}
}

func NewUpdateResult(res *mongo.UpdateResult) UpdateResult {
	result := UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := hexID(res.UpsertedID)
		result.UpsertedID = &id
	}
	return result
}

func NewDeleteResult(res *mongo.DeleteResult) DeleteResult {
	return DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}

func hexID(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
