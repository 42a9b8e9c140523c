package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FoodStatusAvailable = "Available"
	FoodStatusDonated   = "Donated"
)

type Food struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodName        string             `bson:"food_name" json:"food_name"`
	FoodImage       string             `bson:"food_image" json:"food_image"`
	FoodQuantity    int                `bson:"food_quantity" json:"food_quantity"`
	PickupLocation  string             `bson:"pickup_location" json:"pickup_location"`
	ExpireDate      string             `bson:"expire_date" json:"expire_date"`
	AdditionalNotes string             `bson:"additional_notes" json:"additional_notes"`
	FoodStatus      string             `bson:"food_status" json:"food_status"` // "Available" or "Donated"
	DonatorName     string             `bson:"donator_name,omitempty" json:"donator_name,omitempty"`
	DonatorEmail    string             `bson:"donator_email,omitempty" json:"donator_email,omitempty"`
	DonatorImage    string             `bson:"donator_image,omitempty" json:"donator_image,omitempty"`
}
