package domain

import (
	"errors"
)

var (
	MessageFailedAddRequest    = "failed to add food request"
	MessageFailedGetRequests   = "failed to retrieve food requests"
	MessageFailedAcceptRequest = "failed to accept food request"
	MessageFailedRejectRequest = "failed to reject food request"
	MessageFailedCancelRequest = "failed to cancel food request"

	ErrRequestNotFound = errors.New("food request not found")
)

type (
	AddFoodRequestRequest struct {
		FoodID         string `json:"foodId" validate:"required"`
		FoodName       string `json:"food_name"`
		FoodImage      string `json:"food_image"`
		RequesterEmail string `json:"requesterEmail" validate:"required,email"`
		RequesterName  string `json:"requesterName"`
		DonatorEmail   string `json:"donatorEmail" validate:"omitempty,email"`
		RequestDate    string `json:"requestDate"`
		PickupLocation string `json:"pickup_location"`
		ExpireDate     string `json:"expire_date"`
		Notes          string `json:"notes"`
		Status         string `json:"status"`
	}

	// AcceptRequestResult carries both write acknowledgments of the
	// two-step accept transition. The request-side update commits even
	// when the food-side update matches nothing; callers reconcile from
	// the two counts.
	AcceptRequestResult struct {
		UpdateRequest UpdateResult `json:"updateRequest"`
		UpdateFood    UpdateResult `json:"updateFood"`
	}
)
