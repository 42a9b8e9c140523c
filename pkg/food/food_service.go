package food

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"PlateShare-Backend/domain"
	"PlateShare-Backend/entities"
	"PlateShare-Backend/internal/utils/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FeaturedFoodsLimit caps the featured listing at the six largest
// donations by quantity.
const FeaturedFoodsLimit = 6

type (
	FoodService interface {
		GetAvailableFoods(ctx context.Context) ([]entities.Food, error)
		GetFeaturedFoods(ctx context.Context) ([]entities.Food, error)
		AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.InsertResult, error)
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest) (domain.UpdateResult, error)
		DeleteFood(ctx context.Context, id string) (domain.DeleteResult, error)
		UploadFoodImage(ctx context.Context, id string, image *multipart.FileHeader) (domain.UploadFoodImageResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) GetAvailableFoods(ctx context.Context) ([]entities.Food, error) {
	return s.foodRepository.FindAvailable(ctx)
}

func (s *foodService) GetFeaturedFoods(ctx context.Context) ([]entities.Food, error) {
	return s.foodRepository.FindFeatured(ctx, FeaturedFoodsLimit)
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.InsertResult, error) {
	food := &entities.Food{
		FoodName:        req.FoodName,
		FoodImage:       req.FoodImage,
		FoodQuantity:    req.FoodQuantity,
		PickupLocation:  req.PickupLocation,
		ExpireDate:      req.ExpireDate,
		AdditionalNotes: req.AdditionalNotes,
		// every food enters the catalog Available, whatever the caller sent
		FoodStatus:   entities.FoodStatusAvailable,
		DonatorName:  req.DonatorName,
		DonatorEmail: req.DonatorEmail,
		DonatorImage: req.DonatorImage,
	}

	res, err := s.foodRepository.Insert(ctx, food)
	if err != nil {
		return domain.InsertResult{}, err
	}
	return domain.NewInsertResult(res), nil
}

// GetFoodByID returns (nil, nil) when no food matches: the public
// contract reports a missing document as a 200 with a null body, not as
// an error.
func (s *foodService) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidObjectID
	}

	food, err := s.foodRepository.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return food, nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest) (domain.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.UpdateResult{}, domain.ErrInvalidObjectID
	}

	// always $set all seven fields; absent body fields overwrite with
	// their zero value, same as the original PATCH
	set := bson.M{
		"food_name":        req.FoodName,
		"food_image":       req.FoodImage,
		"food_quantity":    req.FoodQuantity,
		"pickup_location":  req.PickupLocation,
		"expire_date":      req.ExpireDate,
		"additional_notes": req.AdditionalNotes,
		"food_status":      req.FoodStatus,
	}

	res, err := s.foodRepository.UpdateByID(ctx, objectID, set)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.NewUpdateResult(res), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string) (domain.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidObjectID
	}

	res, err := s.foodRepository.DeleteByID(ctx, objectID)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.NewDeleteResult(res), nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, id string, image *multipart.FileHeader) (domain.UploadFoodImageResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.UploadFoodImageResponse{}, domain.ErrInvalidObjectID
	}

	food, err := s.foodRepository.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.UploadFoodImageResponse{}, domain.ErrFoodNotFound
		}
		return domain.UploadFoodImageResponse{}, err
	}

	fileName := fmt.Sprintf("food-%s", objectID.Hex())
	objectKey, err := s.s3.UploadFile(fileName, image, "foods", storage.AllowImage...)
	if err != nil {
		return domain.UploadFoodImageResponse{}, err
	}

	if food.FoodImage != "" {
		if existingKey := s.s3.GetObjectKeyFromLink(food.FoodImage); existingKey != "" {
			_ = s.s3.DeleteFile(existingKey)
		}
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	res, err := s.foodRepository.UpdateByID(ctx, objectID, bson.M{"food_image": imageURL})
	if err != nil {
		return domain.UploadFoodImageResponse{}, err
	}

	return domain.UploadFoodImageResponse{
		FoodID:    objectID.Hex(),
		ImageURL:  imageURL,
		UpdateDoc: domain.NewUpdateResult(res),
	}, nil
}
