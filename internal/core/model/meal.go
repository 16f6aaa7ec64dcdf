package model

import (
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Meal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Ingredients []string           `bson:"ingredients" json:"ingredients"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	PostTime    time.Time          `bson:"postTime" json:"postTime"`
	Image       string             `bson:"image" json:"image"`
	Distributor string             `bson:"distributorName" json:"distributorName"`
	Rating      float64            `bson:"rating" json:"rating"`
	Likes       int                `bson:"likes" json:"likes"`
	LikedBy     []string           `bson:"likedBy" json:"likedBy"`
	RequestedBy []string           `bson:"isRequestedBy" json:"isRequestedBy"`
	Reviews     int                `bson:"reviews" json:"reviews"`
	AddedBy     string             `bson:"addedBy" json:"addedBy"`
}

// NewMeal builds a meal with zeroed social state. Ingredients are
// capitalization-normalized so the catalog stays uniform regardless of
// how distributors type them.
func NewMeal(title, category string, ingredients []string, description string, price float64, image, distributor, addedBy string) *Meal {
	normalized := make([]string, len(ingredients))
	for i, ing := range ingredients {
		normalized[i] = NormalizeIngredient(ing)
	}
	return &Meal{
		Title:       title,
		Category:    category,
		Ingredients: normalized,
		Description: description,
		Price:       price,
		PostTime:    time.Now(),
		Image:       image,
		Distributor: distributor,
		LikedBy:     []string{},
		RequestedBy: []string{},
		AddedBy:     addedBy,
	}
}

// NormalizeIngredient upper-cases the first letter and lower-cases the
// rest, e.g. "chicken BREAST" -> "Chicken breast".
func NormalizeIngredient(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
