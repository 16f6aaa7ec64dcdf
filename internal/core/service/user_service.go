package service

import (
	"fmt"

	"dormidine/internal/core/model"
	"dormidine/internal/core/repository"
)

type UserService interface {
	// SaveUser creates the user on first sight and returns the existing
	// record otherwise; email is the unique key. The bool reports whether
	// a new record was created.
	SaveUser(email, name string) (*model.User, bool, error)
	GetUser(email string) (*model.User, error)
	GetRole(email string) (model.Role, error)
	// MakeAdmin is one-way: there is no demotion path.
	MakeAdmin(email string) error
	ListUsers(search string) ([]*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) SaveUser(email, name string) (*model.User, bool, error) {
	if email == "" || name == "" {
		return nil, false, fmt.Errorf("%w: email and name are required", ErrInvalidInput)
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, false, fmt.Errorf("%w: user lookup: %v", ErrStorage, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	user := model.NewUser(email, name)
	if err := s.userRepo.Create(user); err != nil {
		return nil, false, fmt.Errorf("%w: create user: %v", ErrStorage, err)
	}
	return user, true, nil
}

func (s *userService) GetUser(email string) (*model.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: user lookup: %v", ErrStorage, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	return user, nil
}

func (s *userService) GetRole(email string) (model.Role, error) {
	user, err := s.GetUser(email)
	if err != nil {
		return "", err
	}
	if user.Role == "" {
		return model.RoleUser, nil
	}
	return user.Role, nil
}

func (s *userService) MakeAdmin(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	matched, err := s.userRepo.SetRole(email, model.RoleAdmin)
	if err != nil {
		return fmt.Errorf("%w: set role: %v", ErrStorage, err)
	}
	if !matched {
		return fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	return nil
}

func (s *userService) ListUsers(search string) ([]*model.User, error) {
	users, err := s.userRepo.FindAll(search)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", ErrStorage, err)
	}
	return users, nil
}
