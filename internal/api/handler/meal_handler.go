package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dormidine/internal/core/repository"
	"dormidine/internal/core/service"
)

type MealHandler struct {
	mealService service.MealService
}

func NewMealHandler(mealService service.MealService) *MealHandler {
	return &MealHandler{
		mealService: mealService,
	}
}

type addMealRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Distributor string   `json:"distributorName"`
	AddedBy     string   `json:"addedBy"`
}

func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.MealFilter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}
	if v := r.URL.Query().Get("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := r.URL.Query().Get("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}

	meals, err := h.mealService.ListMeals(filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meals)
}

func (h *MealHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	meals, err := h.mealService.ListUpcomingMeals()
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meals)
}

func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	meal, err := h.mealService.GetMeal(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meal)
}

func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, false)
}

func (h *MealHandler) CreateUpcoming(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, true)
}

func (h *MealHandler) create(w http.ResponseWriter, r *http.Request, upcoming bool) {
	var req addMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	input := service.MealInput{
		Title:       req.Title,
		Category:    req.Category,
		Ingredients: req.Ingredients,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Distributor: req.Distributor,
		AddedBy:     req.AddedBy,
	}

	create := h.mealService.AddMeal
	if upcoming {
		create = h.mealService.AddUpcomingMeal
	}
	meal, err := create(input)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"insertedId": meal.ID.Hex()})
}

func (h *MealHandler) Publish(w http.ResponseWriter, r *http.Request) {
	meal, err := h.mealService.PublishUpcomingMeal(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meal)
}
