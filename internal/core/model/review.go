package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MealID    primitive.ObjectID `bson:"mealId" json:"mealId"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Comment   string             `bson:"comment" json:"comment"`
	Rating    float64            `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func NewReview(mealID primitive.ObjectID, name, email, comment string, rating float64) *Review {
	return &Review{
		MealID:    mealID,
		Name:      name,
		Email:     email,
		Comment:   comment,
		Rating:    rating,
		CreatedAt: time.Now(),
	}
}

// UserReview is a review enriched with the referenced meal's title for
// the per-user listing.
type UserReview struct {
	Review    `bson:",inline"`
	MealTitle string `json:"mealTitle"`
}
