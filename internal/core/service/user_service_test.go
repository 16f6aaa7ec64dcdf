package service

import (
	"errors"
	"testing"

	"dormidine/internal/core/model"
	"dormidine/internal/core/repository"
)

func newAdmin(email string) *model.User {
	user := model.NewUser(email, "Admin")
	user.Role = model.RoleAdmin
	return user
}

func TestSaveUser(t *testing.T) {
	userRepo := repository.NewInMemoryUserRepository()
	svc := NewUserService(userRepo)

	user, created, err := svc.SaveUser("a@x.com", "Aye")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !created {
		t.Error("first save should create")
	}
	if user.Role != model.RoleUser || user.Package != model.PackageFree {
		t.Errorf("defaults = (%q, %q), want (user, free)", user.Role, user.Package)
	}

	// Email is the unique key: saving again returns the existing record.
	again, created, err := svc.SaveUser("a@x.com", "Someone Else")
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if created {
		t.Error("second save should not create")
	}
	if again.Name != "Aye" {
		t.Errorf("existing record name = %q, want %q", again.Name, "Aye")
	}

	if _, _, err := svc.SaveUser("", "Aye"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing email error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestGetRole(t *testing.T) {
	userRepo := repository.NewInMemoryUserRepository()
	svc := NewUserService(userRepo)

	if _, _, err := svc.SaveUser("a@x.com", "Aye"); err != nil {
		t.Fatalf("save: %v", err)
	}

	role, err := svc.GetRole("a@x.com")
	if err != nil {
		t.Fatalf("role: %v", err)
	}
	if role != model.RoleUser {
		t.Errorf("role = %q, want %q", role, model.RoleUser)
	}

	if _, err := svc.GetRole("missing@x.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user error = %v, want %v", err, ErrNotFound)
	}
}

func TestMakeAdmin(t *testing.T) {
	userRepo := repository.NewInMemoryUserRepository()
	svc := NewUserService(userRepo)

	if _, _, err := svc.SaveUser("a@x.com", "Aye"); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.MakeAdmin("a@x.com"); err != nil {
		t.Fatalf("make admin: %v", err)
	}
	role, _ := svc.GetRole("a@x.com")
	if role != model.RoleAdmin {
		t.Errorf("role = %q, want %q", role, model.RoleAdmin)
	}

	if err := svc.MakeAdmin("missing@x.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user error = %v, want %v", err, ErrNotFound)
	}
}
