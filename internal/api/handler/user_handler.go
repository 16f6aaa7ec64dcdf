package handler

import (
	"encoding/json"
	"net/http"

	"dormidine/internal/api/util"
	"dormidine/internal/core/service"
)

type UserHandler struct {
	userService service.UserService
	jwtSecret   string
}

func NewUserHandler(userService service.UserService, jwtSecret string) *UserHandler {
	return &UserHandler{
		userService: userService,
		jwtSecret:   jwtSecret,
	}
}

type saveUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type makeAdminRequest struct {
	Email string `json:"email"`
}

type tokenRequest struct {
	Email string `json:"email"`
}

func (h *UserHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, created, err := h.userService.SaveUser(req.Email, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	message := "User already exists"
	status := http.StatusOK
	if created {
		message = "User created"
		status = http.StatusCreated
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": message,
		"user":    user,
	})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) Role(w http.ResponseWriter, r *http.Request) {
	role, err := h.userService.GetRole(r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"role": string(role)})
}

func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	var req makeAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.userService.MakeAdmin(req.Email); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "admin"})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// Token mints a bearer token for a known user. The frontend calls this
// right after its identity provider sign-in.
func (h *UserHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := h.userService.GetUser(req.Email); err != nil {
		writeError(w, err)
		return
	}

	token, err := util.MintToken(h.jwtSecret, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}
