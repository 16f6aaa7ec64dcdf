package main

import (
	"context"
	"log"
	"net/http"

	"dormidine/internal/api/router"
	"dormidine/internal/cache"
	"dormidine/internal/config"
	"dormidine/internal/core/repository"
	"dormidine/internal/core/service"
	"dormidine/internal/payment"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()
	mongoConfig := config.NewMongoConfig()

	// Connect to MongoDB
	client, db, err := config.ConnectMongoDB(mongoConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	// Optional catalog cache
	catalogCache := cache.New(cfg.RedisURL)
	defer catalogCache.Close()

	// Initialize repositories with MongoDB
	mealRepo := repository.NewMongoMealRepository(db, "meals")
	upcomingRepo := repository.NewMongoMealRepository(db, "upcoming-meals")
	userRepo := repository.NewMongoUserRepository(db)
	requestRepo := repository.NewMongoRequestRepository(db)
	reviewRepo := repository.NewMongoReviewRepository(db)
	paymentRepo := repository.NewMongoPaymentRepository(db)

	// Payment gateway
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)

	// Initialize services
	userService := service.NewUserService(userRepo)
	mealService := service.NewMealService(mealRepo, upcomingRepo, userRepo, catalogCache)
	engagementService := service.NewEngagementService(mealRepo, upcomingRepo, requestRepo)
	subscriptionService := service.NewSubscriptionService(paymentRepo, userRepo, gateway)
	reviewService := service.NewReviewService(reviewRepo, mealRepo)

	// Initialize router
	r := router.NewRouter(cfg, userService, mealService, engagementService, subscriptionService, reviewService)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
