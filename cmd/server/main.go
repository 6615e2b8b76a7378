package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"vitaplan/fitness-planner/internal/api"
	"vitaplan/fitness-planner/internal/config"
	"vitaplan/fitness-planner/internal/planner"
	"vitaplan/fitness-planner/internal/repository/mongo"
	"vitaplan/fitness-planner/internal/service"
	"vitaplan/fitness-planner/internal/storage"
)

func main() {
	log.Println("Starting Fitness Planner Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation in the background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureMealPlanIndexes(ctx, appDB)
		mongo.EnsureWorkoutIndexes(ctx, appDB)
		mongo.EnsureLedgerIndexes(ctx, appDB)
		mongo.EnsureProgressIndexes(ctx, appDB.Collection("progress_entries"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	// Demo media is optional; without a bucket the plans simply carry no URLs.
	var media service.ExerciseMediaResolver
	if cfg.S3.BucketName != "" {
		log.Println("Initializing file storage service...")
		fileStorage, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
		media = storage.NewExerciseMedia(fileStorage)
	} else {
		log.Println("No media bucket configured, exercise demos disabled.")
	}

	// --- Initialize Plan Generator ---
	generator, err := planner.NewClient(cfg.Planner)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize plan generator: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	mealPlanRepo := mongo.NewMongoMealPlanRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	ledgerRepo := mongo.NewMongoLedgerRepository(appDB)
	progressRepo := mongo.NewMongoProgressRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(userRepo, progressRepo)
	ledgerService := service.NewLedgerService(ledgerRepo, mealPlanRepo, workoutRepo)
	mealService := service.NewMealPlanService(mealPlanRepo, generator, ledgerService)
	workoutService := service.NewWorkoutService(workoutRepo, generator, ledgerService, media)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, profileService, mealService, workoutService, ledgerService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // Plan generation calls can be slow
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
