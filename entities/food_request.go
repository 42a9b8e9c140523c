package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// FoodRequest is a claim against a Food by a prospective recipient.
// FoodId is kept as a plain string on the wire, matching the stored
// documents; it is only parsed into an ObjectID when the accept
// transition has to touch the referenced food.
type FoodRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodID         string             `bson:"foodId" json:"foodId"`
	FoodName       string             `bson:"food_name,omitempty" json:"food_name,omitempty"`
	FoodImage      string             `bson:"food_image,omitempty" json:"food_image,omitempty"`
	RequesterEmail string             `bson:"requesterEmail" json:"requesterEmail"`
	RequesterName  string             `bson:"requesterName,omitempty" json:"requesterName,omitempty"`
	DonatorEmail   string             `bson:"donatorEmail,omitempty" json:"donatorEmail,omitempty"`
	RequestDate    string             `bson:"requestDate,omitempty" json:"requestDate,omitempty"`
	PickupLocation string             `bson:"pickup_location,omitempty" json:"pickup_location,omitempty"`
	ExpireDate     string             `bson:"expire_date,omitempty" json:"expire_date,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status         string             `bson:"status" json:"status"` // "pending", "accepted", "rejected"
}
