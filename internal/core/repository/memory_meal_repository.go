package repository

import (
	"sort"
	"strings"
	"sync"

	"dormidine/internal/core/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type inMemoryMealRepository struct {
	meals map[primitive.ObjectID]*model.Meal
	mutex sync.RWMutex
}

func NewInMemoryMealRepository() MealRepository {
	return &inMemoryMealRepository{
		meals: make(map[primitive.ObjectID]*model.Meal),
	}
}

func (r *inMemoryMealRepository) Create(meal *model.Meal) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if meal.ID.IsZero() {
		meal.ID = primitive.NewObjectID()
	}
	r.meals[meal.ID] = meal
	return nil
}

func (r *inMemoryMealRepository) FindByID(id primitive.ObjectID) (*model.Meal, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if meal, exists := r.meals[id]; exists {
		return meal, nil
	}
	return nil, nil
}

func (r *inMemoryMealRepository) FindAll(filter MealFilter) ([]*model.Meal, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Meal
	for _, meal := range r.meals {
		if filter.Search != "" && !strings.Contains(strings.ToLower(meal.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Category != "" && meal.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && meal.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && meal.Price > *filter.MaxPrice {
			continue
		}
		result = append(result, meal)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PostTime.After(result[j].PostTime)
	})
	return result, nil
}

func (r *inMemoryMealRepository) Delete(id primitive.ObjectID) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.meals[id]; !exists {
		return false, nil
	}
	delete(r.meals, id)
	return true, nil
}

func (r *inMemoryMealRepository) Like(id primitive.ObjectID, email string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	meal, exists := r.meals[id]
	if !exists {
		return false, nil
	}
	for _, liker := range meal.LikedBy {
		if liker == email {
			return false, nil
		}
	}
	meal.LikedBy = append(meal.LikedBy, email)
	meal.Likes++
	return true, nil
}

func (r *inMemoryMealRepository) Unlike(id primitive.ObjectID, email string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	meal, exists := r.meals[id]
	if !exists {
		return false, nil
	}
	for i, liker := range meal.LikedBy {
		if liker == email {
			meal.LikedBy = append(meal.LikedBy[:i], meal.LikedBy[i+1:]...)
			meal.Likes--
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryMealRepository) AddRequesterByTitle(title, email string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, meal := range r.meals {
		if meal.Title != title {
			continue
		}
		for _, requester := range meal.RequestedBy {
			if requester == email {
				return nil
			}
		}
		meal.RequestedBy = append(meal.RequestedBy, email)
		return nil
	}
	return nil
}

func (r *inMemoryMealRepository) RemoveRequester(id primitive.ObjectID, email string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	meal, exists := r.meals[id]
	if !exists {
		return false, nil
	}
	for i, requester := range meal.RequestedBy {
		if requester == email {
			meal.RequestedBy = append(meal.RequestedBy[:i], meal.RequestedBy[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
