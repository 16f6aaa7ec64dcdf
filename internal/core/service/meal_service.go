package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"dormidine/internal/cache"
	"dormidine/internal/core/model"
	"dormidine/internal/core/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	mealsCacheKey    = "catalog:meals"
	upcomingCacheKey = "catalog:upcoming-meals"
	catalogCacheTTL  = 60 * time.Second
)

// MealInput carries the distributor-supplied fields for a new meal.
type MealInput struct {
	Title       string
	Category    string
	Ingredients []string
	Description string
	Price       float64
	Image       string
	Distributor string
	AddedBy     string
}

type MealService interface {
	ListMeals(filter repository.MealFilter) ([]*model.Meal, error)
	ListUpcomingMeals() ([]*model.Meal, error)
	GetMeal(mealID string) (*model.Meal, error)
	AddMeal(input MealInput) (*model.Meal, error)
	AddUpcomingMeal(input MealInput) (*model.Meal, error)
	// PublishUpcomingMeal moves a meal from the upcoming pool into the
	// current menu. Insert precedes delete, so a crash between the two
	// can duplicate a meal but never lose it.
	PublishUpcomingMeal(mealID string) (*model.Meal, error)
}

type mealService struct {
	mealRepo     repository.MealRepository
	upcomingRepo repository.MealRepository
	userRepo     repository.UserRepository
	cache        *cache.Cache
}

func NewMealService(mealRepo, upcomingRepo repository.MealRepository, userRepo repository.UserRepository, c *cache.Cache) MealService {
	return &mealService{
		mealRepo:     mealRepo,
		upcomingRepo: upcomingRepo,
		userRepo:     userRepo,
		cache:        c,
	}
}

func (s *mealService) ListMeals(filter repository.MealFilter) ([]*model.Meal, error) {
	// Only the unfiltered listing is cached; filtered queries go straight
	// to the store.
	cacheable := filter == (repository.MealFilter{})
	return s.list(s.mealRepo, filter, cacheable, mealsCacheKey)
}

func (s *mealService) ListUpcomingMeals() ([]*model.Meal, error) {
	return s.list(s.upcomingRepo, repository.MealFilter{}, true, upcomingCacheKey)
}

func (s *mealService) list(repo repository.MealRepository, filter repository.MealFilter, cacheable bool, key string) ([]*model.Meal, error) {
	ctx := context.Background()

	if cacheable {
		var cached []*model.Meal
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	meals, err := repo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: list meals: %v", ErrStorage, err)
	}

	if cacheable {
		if err := s.cache.Set(ctx, key, meals, catalogCacheTTL); err != nil {
			log.Printf("catalog cache set %s failed: %v", key, err)
		}
	}
	return meals, nil
}

func (s *mealService) GetMeal(mealID string) (*model.Meal, error) {
	id, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed meal id %q", ErrInvalidInput, mealID)
	}
	meal, err := s.mealRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: meal lookup: %v", ErrStorage, err)
	}
	if meal == nil {
		return nil, fmt.Errorf("%w: meal %s", ErrNotFound, mealID)
	}
	return meal, nil
}

func (s *mealService) AddMeal(input MealInput) (*model.Meal, error) {
	return s.add(s.mealRepo, input, mealsCacheKey)
}

func (s *mealService) AddUpcomingMeal(input MealInput) (*model.Meal, error) {
	return s.add(s.upcomingRepo, input, upcomingCacheKey)
}

func (s *mealService) add(repo repository.MealRepository, input MealInput, key string) (*model.Meal, error) {
	if input.Title == "" || input.Category == "" {
		return nil, fmt.Errorf("%w: title and category are required", ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	meal := model.NewMeal(input.Title, input.Category, input.Ingredients, input.Description,
		input.Price, input.Image, input.Distributor, input.AddedBy)
	if err := repo.Create(meal); err != nil {
		return nil, fmt.Errorf("%w: create meal: %v", ErrStorage, err)
	}

	// Best-effort bookkeeping on the creator's profile.
	if input.AddedBy != "" {
		if err := s.userRepo.IncrementMealsAdded(input.AddedBy); err != nil {
			log.Printf("meal %s: meals-added increment for %s failed: %v", meal.ID.Hex(), input.AddedBy, err)
		}
	}
	s.flush(key)
	return meal, nil
}

func (s *mealService) PublishUpcomingMeal(mealID string) (*model.Meal, error) {
	id, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed meal id %q", ErrInvalidInput, mealID)
	}

	meal, err := s.upcomingRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: upcoming meal lookup: %v", ErrStorage, err)
	}
	if meal == nil {
		return nil, fmt.Errorf("%w: upcoming meal %s", ErrNotFound, mealID)
	}

	meal.PostTime = time.Now()
	if err := s.mealRepo.Create(meal); err != nil {
		return nil, fmt.Errorf("%w: publish meal: %v", ErrStorage, err)
	}
	if _, err := s.upcomingRepo.Delete(id); err != nil {
		// The meal is already live; a leftover upcoming copy is tolerated.
		log.Printf("publish %s: upcoming delete failed: %v", mealID, err)
	}

	s.flush(mealsCacheKey)
	s.flush(upcomingCacheKey)
	return meal, nil
}

func (s *mealService) flush(key string) {
	if err := s.cache.Delete(context.Background(), key); err != nil {
		log.Printf("catalog cache flush %s failed: %v", key, err)
	}
}
