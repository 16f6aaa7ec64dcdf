package repository

import (
	"sync"

	"dormidine/internal/core/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type inMemoryRequestRepository struct {
	requests map[primitive.ObjectID]*model.MealRequest
	mutex    sync.RWMutex
}

func NewInMemoryRequestRepository() RequestRepository {
	return &inMemoryRequestRepository{
		requests: make(map[primitive.ObjectID]*model.MealRequest),
	}
}

func (r *inMemoryRequestRepository) Create(req *model.MealRequest) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	r.requests[req.ID] = req
	return nil
}

func (r *inMemoryRequestRepository) FindByID(id primitive.ObjectID) (*model.MealRequest, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if req, exists := r.requests[id]; exists {
		return req, nil
	}
	return nil, nil
}

func (r *inMemoryRequestRepository) FindByEmail(email string) ([]*model.MealRequest, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.MealRequest
	for _, req := range r.requests {
		if req.Email == email {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *inMemoryRequestRepository) Cancel(id primitive.ObjectID) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	req, exists := r.requests[id]
	if !exists || req.Status != model.RequestPending {
		return false, nil
	}
	req.Status = model.RequestCancelled
	return true, nil
}
