package router

import (
	"encoding/json"
	"fmt"
	"net/http"

	"dormidine/internal/api/handler"
	"dormidine/internal/api/middleware"
	"dormidine/internal/config"
	"dormidine/internal/core/service"
)

func NewRouter(
	cfg *config.Config,
	userService service.UserService,
	mealService service.MealService,
	engagementService service.EngagementService,
	subscriptionService service.SubscriptionService,
	reviewService service.ReviewService,
) http.Handler {
	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, cfg.JWTSecret)
	mealHandler := handler.NewMealHandler(mealService)
	engagementHandler := handler.NewEngagementHandler(engagementService)
	paymentHandler := handler.NewPaymentHandler(subscriptionService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	// Create router
	mux := http.NewServeMux()

	// Public chain
	public := func(h http.Handler) http.Handler {
		return middleware.CORSMiddleware(cfg.CORSOrigin,
			middleware.LoggingMiddleware(h),
		)
	}

	// Guarded chain. Without a configured secret the guard is skipped so
	// local development matches the original unauthenticated server.
	guarded := func(h http.Handler) http.Handler {
		if cfg.JWTSecret == "" {
			return public(h)
		}
		return public(authMiddleware.Authenticate(h))
	}

	get := func(h http.HandlerFunc) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				h(w, r)
			case http.MethodOptions:
				w.WriteHeader(http.StatusOK)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
		})
	}

	post := func(h http.HandlerFunc) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost:
				h(w, r)
			case http.MethodOptions:
				w.WriteHeader(http.StatusOK)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
		})
	}

	// Health and welcome endpoints
	mux.Handle("/", public(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "Welcome to DormiDine Server")
	})))

	mux.Handle("/health", public(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":   "ok",
			"database": "connected",
		})
	})))

	// Catalog routes
	mux.Handle("/meals", public(get(mealHandler.List)))
	mux.Handle("/upcoming-meals", public(get(mealHandler.ListUpcoming)))
	mux.Handle("/api/meal", public(get(mealHandler.Get)))

	// User routes
	mux.Handle("/api/save-user", public(post(userHandler.Save)))
	mux.Handle("/api/user", public(get(userHandler.Get)))
	mux.Handle("/api/users/role", public(get(userHandler.Role)))
	mux.Handle("/api/auth/token", public(post(userHandler.Token)))

	// Admin routes
	mux.Handle("/api/meals", guarded(post(mealHandler.Create)))
	mux.Handle("/api/upcoming-meals", guarded(post(mealHandler.CreateUpcoming)))
	mux.Handle("/api/upcoming-meals/publish", guarded(post(mealHandler.Publish)))
	mux.Handle("/api/users", guarded(get(userHandler.List)))
	mux.Handle("/api/users/make-admin", guarded(post(userHandler.MakeAdmin)))

	// Engagement routes
	mux.Handle("/api/meals/like", guarded(post(engagementHandler.ToggleLike)))
	mux.Handle("/api/upcoming-meals/like", guarded(post(engagementHandler.ToggleUpcomingLike)))
	mux.Handle("/api/request-meal", guarded(post(engagementHandler.SubmitRequest)))
	mux.Handle("/api/requested-meals", guarded(get(engagementHandler.ListRequests)))
	mux.Handle("/api/requested-meals/cancel", guarded(post(engagementHandler.CancelRequest)))

	// Payment routes
	mux.Handle("/api/create-payment-intent", guarded(post(paymentHandler.CreateIntent)))
	mux.Handle("/api/payments", guarded(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			paymentHandler.Record(w, r)
		case http.MethodGet:
			paymentHandler.History(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))
	mux.Handle("/api/payments/already-paid", guarded(get(paymentHandler.AlreadyPaid)))
	mux.Handle("/api/users/upgrade", guarded(post(paymentHandler.Upgrade)))

	// Review routes
	mux.Handle("/api/reviews", guarded(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			reviewHandler.Create(w, r)
		case http.MethodGet:
			reviewHandler.ListForMeal(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))
	mux.Handle("/api/reviews/user", guarded(get(reviewHandler.ListForUser)))
	mux.Handle("/api/reviews/edit", guarded(post(reviewHandler.Edit)))
	mux.Handle("/api/reviews/delete", guarded(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			reviewHandler.Delete(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	return mux
}
