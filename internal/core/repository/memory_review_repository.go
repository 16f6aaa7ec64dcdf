package repository

import (
	"sort"
	"sync"

	"dormidine/internal/core/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type inMemoryReviewRepository struct {
	reviews map[primitive.ObjectID]*model.Review
	mutex   sync.RWMutex
}

func NewInMemoryReviewRepository() ReviewRepository {
	return &inMemoryReviewRepository{
		reviews: make(map[primitive.ObjectID]*model.Review),
	}
}

func (r *inMemoryReviewRepository) Create(review *model.Review) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *inMemoryReviewRepository) FindByMealID(mealID primitive.ObjectID) ([]*model.Review, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Review
	for _, review := range r.reviews {
		if review.MealID == mealID {
			result = append(result, review)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *inMemoryReviewRepository) FindByEmail(email string) ([]*model.Review, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Review
	for _, review := range r.reviews {
		if review.Email == email {
			result = append(result, review)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func sortNewestFirst(reviews []*model.Review) {
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}

func (r *inMemoryReviewRepository) Update(id primitive.ObjectID, comment string, rating float64) (bool, bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	review, exists := r.reviews[id]
	if !exists {
		return false, false, nil
	}
	if review.Comment == comment && review.Rating == rating {
		return true, false, nil
	}
	review.Comment = comment
	review.Rating = rating
	return true, true, nil
}

func (r *inMemoryReviewRepository) Delete(id primitive.ObjectID) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.reviews[id]; !exists {
		return false, nil
	}
	delete(r.reviews, id)
	return true, nil
}
