package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestCancelled RequestStatus = "cancelled"
)

// MealRequest records a user asking for a meal to be served. Likes and
// Reviews are a snapshot of the meal's counters at request time and are
// not kept live.
type MealRequest struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MealID  primitive.ObjectID `bson:"mealId" json:"mealId"`
	Title   string             `bson:"title" json:"title"`
	Email   string             `bson:"email" json:"email"`
	Name    string             `bson:"name" json:"name"`
	Status  RequestStatus      `bson:"status" json:"status"`
	Likes   int                `bson:"likes" json:"likes"`
	Reviews int                `bson:"reviews" json:"reviews"`
}

func NewMealRequest(mealID primitive.ObjectID, title, email, name string, likes, reviews int) *MealRequest {
	return &MealRequest{
		MealID:  mealID,
		Title:   title,
		Email:   email,
		Name:    name,
		Status:  RequestPending,
		Likes:   likes,
		Reviews: reviews,
	}
}
