package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadFoodImage = "food image uploaded successfully"

	MessageFailedAddFood         = "failed to add food"
	MessageFailedGetFoods        = "failed to retrieve foods"
	MessageFailedUpdateFood      = "failed to update food"
	MessageFailedDeleteFood      = "failed to delete food"
	MessageFailedUploadFoodImage = "failed to upload food image"

	ErrFoodNotFound = errors.New("food not found")
)

type (
	// AddFoodRequest deliberately carries no required-field validation:
	// the catalog stores whatever the donor submits and only the status
	// field is controlled server-side.
	AddFoodRequest struct {
		FoodName        string `json:"food_name"`
		FoodImage       string `json:"food_image" validate:"omitempty,url"`
		FoodQuantity    int    `json:"food_quantity"`
		PickupLocation  string `json:"pickup_location"`
		ExpireDate      string `json:"expire_date"`
		AdditionalNotes string `json:"additional_notes"`
		FoodStatus      string `json:"food_status"`
		DonatorName     string `json:"donator_name"`
		DonatorEmail    string `json:"donator_email" validate:"omitempty,email"`
		DonatorImage    string `json:"donator_image"`
	}

	// UpdateFoodRequest overwrites all seven mutable fields on every
	// call; a field missing from the body is written back as its zero
	// value, matching the original PATCH contract.
	UpdateFoodRequest struct {
		FoodName        string `json:"food_name"`
		FoodImage       string `json:"food_image"`
		FoodQuantity    int    `json:"food_quantity"`
		PickupLocation  string `json:"pickup_location"`
		ExpireDate      string `json:"expire_date"`
		AdditionalNotes string `json:"additional_notes"`
		FoodStatus      string `json:"food_status"`
	}

	UploadFoodImageRequest struct {
		FoodID string                `json:"food_id" form:"food_id"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadFoodImageResponse struct {
		FoodID    string       `json:"food_id"`
		ImageURL  string       `json:"image_url"`
		UpdateDoc UpdateResult `json:"update"`
	}
)
