package service

import (
	"fmt"
	"strconv"

	"dormidine/internal/core/model"
	"dormidine/internal/core/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService interface {
	// AddReview accepts the rating as free text; unparsable values coerce
	// to 0 rather than rejecting the request.
	AddReview(mealID, name, email, comment, rating string) (*model.Review, error)
	ListForMeal(mealID string) ([]*model.Review, error)
	// ListForUser joins each review with its meal's title; a review whose
	// meal has since been deleted reports title "N/A".
	ListForUser(email string) ([]*model.UserReview, error)
	EditReview(reviewID, comment, rating string) error
	DeleteReview(reviewID string) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	mealRepo   repository.MealRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, mealRepo repository.MealRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		mealRepo:   mealRepo,
	}
}

// parseRating is deliberately lenient: "4.5" -> 4.5, "abc" -> 0.
func parseRating(rating string) float64 {
	value, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		return 0
	}
	return value
}

func (s *reviewService) AddReview(mealID, name, email, comment, rating string) (*model.Review, error) {
	if email == "" || comment == "" {
		return nil, fmt.Errorf("%w: email and comment are required", ErrInvalidInput)
	}
	id, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed meal id %q", ErrInvalidInput, mealID)
	}

	review := model.NewReview(id, name, email, comment, parseRating(rating))
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("%w: create review: %v", ErrStorage, err)
	}
	return review, nil
}

func (s *reviewService) ListForMeal(mealID string) ([]*model.Review, error) {
	id, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed meal id %q", ErrInvalidInput, mealID)
	}
	reviews, err := s.reviewRepo.FindByMealID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: list reviews: %v", ErrStorage, err)
	}
	return reviews, nil
}

func (s *reviewService) ListForUser(email string) ([]*model.UserReview, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	reviews, err := s.reviewRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: list reviews: %v", ErrStorage, err)
	}

	result := make([]*model.UserReview, 0, len(reviews))
	for _, review := range reviews {
		title := "N/A"
		meal, err := s.mealRepo.FindByID(review.MealID)
		if err != nil {
			return nil, fmt.Errorf("%w: meal lookup: %v", ErrStorage, err)
		}
		if meal != nil {
			title = meal.Title
		}
		result = append(result, &model.UserReview{Review: *review, MealTitle: title})
	}
	return result, nil
}

func (s *reviewService) EditReview(reviewID, comment, rating string) error {
	id, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return fmt.Errorf("%w: malformed review id %q", ErrInvalidInput, reviewID)
	}

	matched, _, err := s.reviewRepo.Update(id, comment, parseRating(rating))
	if err != nil {
		return fmt.Errorf("%w: edit review: %v", ErrStorage, err)
	}
	if !matched {
		return fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}
	// Matched but unmodified means the overwrite carried identical
	// values; that is a no-op success, not an error.
	return nil
}

func (s *reviewService) DeleteReview(reviewID string) error {
	id, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return fmt.Errorf("%w: malformed review id %q", ErrInvalidInput, reviewID)
	}
	deleted, err := s.reviewRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("%w: delete review: %v", ErrStorage, err)
	}
	if !deleted {
		return fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}
	return nil
}
