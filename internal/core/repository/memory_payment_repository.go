package repository

import (
	"sync"

	"dormidine/internal/core/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type inMemoryPaymentRepository struct {
	payments []*model.Payment
	mutex    sync.RWMutex
}

func NewInMemoryPaymentRepository() PaymentRepository {
	return &inMemoryPaymentRepository{}
}

func (r *inMemoryPaymentRepository) Create(payment *model.Payment) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	r.payments = append(r.payments, payment)
	return nil
}

func (r *inMemoryPaymentRepository) FindByEmail(email string) ([]*model.Payment, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Payment
	for _, payment := range r.payments {
		if payment.Email == email {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (r *inMemoryPaymentRepository) ExistsSuccess(email, packageName string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, payment := range r.payments {
		if payment.Email == email && payment.Package == packageName && payment.Status == model.PaymentSuccess {
			return true, nil
		}
	}
	return false, nil
}
