package handler

import (
	"encoding/json"
	"net/http"

	"dormidine/internal/core/service"
)

type EngagementHandler struct {
	engagementService service.EngagementService
}

func NewEngagementHandler(engagementService service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
	}
}

type toggleLikeRequest struct {
	MealID string `json:"mealId"`
	Email  string `json:"mealEmail"`
}

type mealRequestRequest struct {
	MealID  string `json:"mealId"`
	Title   string `json:"title"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Likes   int    `json:"likes"`
	Reviews int    `json:"reviews"`
}

type cancelRequestRequest struct {
	RequestID string `json:"requestId"`
}

func (h *EngagementHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.engagementService.ToggleLike)
}

func (h *EngagementHandler) ToggleUpcomingLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.engagementService.ToggleUpcomingLike)
}

func (h *EngagementHandler) toggle(w http.ResponseWriter, r *http.Request, toggle func(string, string) (bool, error)) {
	var req toggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	liked, err := toggle(req.MealID, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"liked": liked})
}

func (h *EngagementHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req mealRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.engagementService.SubmitMealRequest(req.MealID, req.Title, req.Email, req.Name, req.Likes, req.Reviews)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"insertedId": created.ID.Hex()})
}

func (h *EngagementHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	var req cancelRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.engagementService.CancelMealRequest(req.RequestID); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "cancelled"})
}

func (h *EngagementHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.engagementService.ListRequestsByUser(r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}
