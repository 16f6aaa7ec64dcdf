package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"dormidine/internal/core/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Rating arrives as whatever the frontend sends, number or text; the
// service coerces unparsable values to 0.
type addReviewRequest struct {
	MealID  string      `json:"mealId"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Comment string      `json:"comment"`
	Rating  interface{} `json:"rating"`
}

type editReviewRequest struct {
	ReviewID string      `json:"reviewId"`
	Comment  string      `json:"comment"`
	Rating   interface{} `json:"rating"`
}

func ratingString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	review, err := h.reviewService.AddReview(req.MealID, req.Name, req.Email, req.Comment, ratingString(req.Rating))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"insertedId": review.ID.Hex()})
}

func (h *ReviewHandler) ListForMeal(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListForMeal(r.URL.Query().Get("mealId"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListForUser(r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req editReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.reviewService.EditReview(req.ReviewID, req.Comment, ratingString(req.Rating)); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reviewService.DeleteReview(r.URL.Query().Get("id")); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}
