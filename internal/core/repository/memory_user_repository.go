package repository

import (
	"strings"
	"sync"

	"dormidine/internal/core/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type inMemoryUserRepository struct {
	users map[string]*model.User
	mutex sync.RWMutex
}

func NewInMemoryUserRepository() UserRepository {
	return &inMemoryUserRepository{
		users: make(map[string]*model.User),
	}
}

func (r *inMemoryUserRepository) Create(user *model.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.Email] = user
	return nil
}

func (r *inMemoryUserRepository) FindByEmail(email string) (*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if user, exists := r.users[email]; exists {
		return user, nil
	}
	return nil, nil
}

func (r *inMemoryUserRepository) FindAll(search string) ([]*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	search = strings.ToLower(search)
	var result []*model.User
	for _, user := range r.users {
		if search != "" &&
			!strings.Contains(strings.ToLower(user.Name), search) &&
			!strings.Contains(strings.ToLower(user.Email), search) {
			continue
		}
		result = append(result, user)
	}
	return result, nil
}

func (r *inMemoryUserRepository) SetPackage(email string, pkg model.Package) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	user, exists := r.users[email]
	if !exists {
		return false, nil
	}
	user.Package = pkg
	return true, nil
}

func (r *inMemoryUserRepository) SetRole(email string, role model.Role) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	user, exists := r.users[email]
	if !exists {
		return false, nil
	}
	user.Role = role
	return true, nil
}

func (r *inMemoryUserRepository) IncrementMealsAdded(email string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if user, exists := r.users[email]; exists {
		user.MealsAdded++
	}
	return nil
}
