package service

import (
	"errors"
	"testing"
	"time"

	"dormidine/internal/core/model"
	"dormidine/internal/core/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newReviewFixture(t *testing.T) (ReviewService, repository.ReviewRepository, repository.MealRepository) {
	t.Helper()
	reviewRepo := repository.NewInMemoryReviewRepository()
	mealRepo := repository.NewInMemoryMealRepository()
	return NewReviewService(reviewRepo, mealRepo), reviewRepo, mealRepo
}

func TestAddReviewRatingParse(t *testing.T) {
	svc, _, mealRepo := newReviewFixture(t)
	meal := seedMeal(t, mealRepo, "Chicken Curry")

	tests := []struct {
		name   string
		rating string
		want   float64
	}{
		{name: "decimal", rating: "4.5", want: 4.5},
		{name: "integer", rating: "3", want: 3},
		{name: "unparsable coerces to zero", rating: "abc", want: 0},
		{name: "empty coerces to zero", rating: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review, err := svc.AddReview(meal.ID.Hex(), "Aye", "a@x.com", "tasty", tt.rating)
			if err != nil {
				t.Fatalf("add review: %v", err)
			}
			if review.Rating != tt.want {
				t.Errorf("rating = %v, want %v", review.Rating, tt.want)
			}
		})
	}
}

func TestAddReviewValidation(t *testing.T) {
	svc, _, mealRepo := newReviewFixture(t)
	meal := seedMeal(t, mealRepo, "Chicken Curry")

	if _, err := svc.AddReview(meal.ID.Hex(), "Aye", "", "tasty", "4"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing email error = %v, want %v", err, ErrInvalidInput)
	}
	if _, err := svc.AddReview("bogus", "Aye", "a@x.com", "tasty", "4"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("malformed meal id error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestListForMealNewestFirst(t *testing.T) {
	svc, reviewRepo, mealRepo := newReviewFixture(t)
	meal := seedMeal(t, mealRepo, "Chicken Curry")

	base := time.Now()
	for i, comment := range []string{"oldest", "middle", "newest"} {
		review := model.NewReview(meal.ID, "Aye", "a@x.com", comment, 4)
		review.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := reviewRepo.Create(review); err != nil {
			t.Fatalf("seed review: %v", err)
		}
	}

	reviews, err := svc.ListForMeal(meal.ID.Hex())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("got %d reviews, want 3", len(reviews))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, comment := range want {
		if reviews[i].Comment != comment {
			t.Errorf("reviews[%d] = %q, want %q", i, reviews[i].Comment, comment)
		}
	}
}

func TestListForUserJoinsMealTitle(t *testing.T) {
	svc, reviewRepo, mealRepo := newReviewFixture(t)
	meal := seedMeal(t, mealRepo, "Chicken Curry")

	kept := model.NewReview(meal.ID, "Aye", "a@x.com", "good", 4)
	orphan := model.NewReview(primitive.NewObjectID(), "Aye", "a@x.com", "meal deleted since", 2)
	orphan.CreatedAt = kept.CreatedAt.Add(-time.Minute)
	for _, review := range []*model.Review{kept, orphan} {
		if err := reviewRepo.Create(review); err != nil {
			t.Fatalf("seed review: %v", err)
		}
	}

	reviews, err := svc.ListForUser("a@x.com")
	if err != nil {
		t.Fatalf("list for user: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("got %d reviews, want 2", len(reviews))
	}
	if reviews[0].MealTitle != "Chicken Curry" {
		t.Errorf("joined title = %q, want %q", reviews[0].MealTitle, "Chicken Curry")
	}
	if reviews[1].MealTitle != "N/A" {
		t.Errorf("orphan title = %q, want %q", reviews[1].MealTitle, "N/A")
	}
}

func TestEditReview(t *testing.T) {
	svc, reviewRepo, mealRepo := newReviewFixture(t)
	meal := seedMeal(t, mealRepo, "Chicken Curry")

	review, err := svc.AddReview(meal.ID.Hex(), "Aye", "a@x.com", "fine", "3")
	if err != nil {
		t.Fatalf("add review: %v", err)
	}

	if err := svc.EditReview(review.ID.Hex(), "great actually", "4.5"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, _ := reviewRepo.FindByEmail("a@x.com")
	if got[0].Comment != "great actually" || got[0].Rating != 4.5 {
		t.Errorf("after edit: comment=%q rating=%v", got[0].Comment, got[0].Rating)
	}

	// Identical overwrite is a no-op success, not an error.
	if err := svc.EditReview(review.ID.Hex(), "great actually", "4.5"); err != nil {
		t.Errorf("no-op edit error = %v, want nil", err)
	}

	if err := svc.EditReview(primitive.NewObjectID().Hex(), "x", "1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown review error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteReview(t *testing.T) {
	svc, _, mealRepo := newReviewFixture(t)
	meal := seedMeal(t, mealRepo, "Chicken Curry")

	review, err := svc.AddReview(meal.ID.Hex(), "Aye", "a@x.com", "fine", "3")
	if err != nil {
		t.Fatalf("add review: %v", err)
	}

	if err := svc.DeleteReview(review.ID.Hex()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteReview(review.ID.Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want %v", err, ErrNotFound)
	}
}
