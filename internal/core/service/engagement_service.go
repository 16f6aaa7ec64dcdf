package service

import (
	"fmt"
	"log"

	"dormidine/internal/core/model"
	"dormidine/internal/core/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EngagementService owns per-(user, meal) social state: like toggling on
// both meal pools, and the meal-request lifecycle.
type EngagementService interface {
	// ToggleLike flips the caller's like on a current-menu meal and
	// reports the resulting state: true when the call liked the meal,
	// false when it unliked.
	ToggleLike(mealID, email string) (bool, error)
	// ToggleUpcomingLike is the same contract over the upcoming pool.
	ToggleUpcomingLike(mealID, email string) (bool, error)
	SubmitMealRequest(mealID, title, email, name string, likes, reviews int) (*model.MealRequest, error)
	CancelMealRequest(requestID string) error
	ListRequestsByUser(email string) ([]*model.MealRequest, error)
}

type engagementService struct {
	mealRepo     repository.MealRepository
	upcomingRepo repository.MealRepository
	requestRepo  repository.RequestRepository
}

func NewEngagementService(mealRepo, upcomingRepo repository.MealRepository, requestRepo repository.RequestRepository) EngagementService {
	return &engagementService{
		mealRepo:     mealRepo,
		upcomingRepo: upcomingRepo,
		requestRepo:  requestRepo,
	}
}

func (s *engagementService) ToggleLike(mealID, email string) (bool, error) {
	return s.toggle(s.mealRepo, mealID, email)
}

func (s *engagementService) ToggleUpcomingLike(mealID, email string) (bool, error) {
	return s.toggle(s.upcomingRepo, mealID, email)
}

// toggle flips like state with conditional updates keyed on current
// liker-set membership, never a read-then-write. When neither branch
// matches, either the meal is gone or a concurrent toggle flipped
// membership between the two updates; one re-check distinguishes them.
func (s *engagementService) toggle(repo repository.MealRepository, mealID, email string) (bool, error) {
	if mealID == "" || email == "" {
		return false, fmt.Errorf("%w: meal id and email are required", ErrInvalidInput)
	}
	id, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return false, fmt.Errorf("%w: malformed meal id %q", ErrInvalidInput, mealID)
	}

	for attempt := 0; attempt < 3; attempt++ {
		liked, err := repo.Like(id, email)
		if err != nil {
			return false, fmt.Errorf("%w: like update: %v", ErrStorage, err)
		}
		if liked {
			return true, nil
		}

		unliked, err := repo.Unlike(id, email)
		if err != nil {
			return false, fmt.Errorf("%w: unlike update: %v", ErrStorage, err)
		}
		if unliked {
			return false, nil
		}

		meal, err := repo.FindByID(id)
		if err != nil {
			return false, fmt.Errorf("%w: meal lookup: %v", ErrStorage, err)
		}
		if meal == nil {
			return false, fmt.Errorf("%w: meal %s", ErrNotFound, mealID)
		}
	}
	return false, fmt.Errorf("%w: like toggle contention on meal %s", ErrStorage, mealID)
}

func (s *engagementService) SubmitMealRequest(mealID, title, email, name string, likes, reviews int) (*model.MealRequest, error) {
	if title == "" || email == "" || name == "" {
		return nil, fmt.Errorf("%w: title, email and name are required", ErrInvalidInput)
	}
	id, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed meal id %q", ErrInvalidInput, mealID)
	}

	req := model.NewMealRequest(id, title, email, name, likes, reviews)
	if err := s.requestRepo.Create(req); err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrStorage, err)
	}

	// Secondary write, keyed by title. Best effort: membership in the
	// requester set is advisory, the request record is authoritative.
	if err := s.mealRepo.AddRequesterByTitle(title, email); err != nil {
		log.Printf("request %s: requester-set update for %q failed: %v", req.ID.Hex(), title, err)
	}
	return req, nil
}

func (s *engagementService) CancelMealRequest(requestID string) error {
	if requestID == "" {
		return fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}
	id, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return fmt.Errorf("%w: malformed request id %q", ErrInvalidInput, requestID)
	}

	req, err := s.requestRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("%w: request lookup: %v", ErrStorage, err)
	}
	if req == nil {
		return fmt.Errorf("%w: request %s", ErrNotFound, requestID)
	}

	cancelled, err := s.requestRepo.Cancel(id)
	if err != nil {
		return fmt.Errorf("%w: cancel request: %v", ErrStorage, err)
	}
	if !cancelled {
		// Already cancelled; a second cancel never applies twice.
		return fmt.Errorf("%w: request %s is not pending", ErrNotFound, requestID)
	}

	removed, err := s.mealRepo.RemoveRequester(req.MealID, req.Email)
	if err != nil {
		// Non-fatal: the status change holds, the requester set may lag.
		log.Printf("request %s: requester-set removal on meal %s failed: %v", requestID, req.MealID.Hex(), err)
		return nil
	}
	if !removed {
		return fmt.Errorf("%w: requester set on meal %s unchanged", ErrNotFound, req.MealID.Hex())
	}
	return nil
}

func (s *engagementService) ListRequestsByUser(email string) ([]*model.MealRequest, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	requests, err := s.requestRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: list requests: %v", ErrStorage, err)
	}
	return requests, nil
}
