package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitaplan/fitness-planner/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	mealService service.MealPlanService,
	workoutService service.WorkoutService,
	ledgerService service.LedgerService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	mealHandler := NewMealHandler(mealService, ledgerService, profileService)
	workoutHandler := NewWorkoutHandler(workoutService, profileService)
	catalogHandler := NewCatalogHandler()

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID.Hex()})
		})

		// --- Profile ---
		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("", profileHandler.UpdateProfile)
			profileGroup.PUT("/mode", profileHandler.SetPlanMode)
		}

		// --- Meals ---
		mealGroup := protected.Group("/meals")
		{
			// GET /api/v1/meals/2025-03-10/plan?force=true
			mealGroup.GET("/:date/plan", mealHandler.GetPlan)
			mealGroup.GET("/:date/manual", mealHandler.GetManualPlan)
			mealGroup.POST("/:date/foods", mealHandler.AddFood)
			mealGroup.DELETE("/:date/foods/:entryId", mealHandler.RemoveFood)
			mealGroup.POST("/:date/consume", mealHandler.ToggleFood)
			mealGroup.GET("/:date/summary", mealHandler.GetDailySummary)
		}

		// --- Workouts ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("/:date/plan", workoutHandler.GetPlan)
			workoutGroup.POST("/:date/complete", workoutHandler.CompleteExercise)
			workoutGroup.POST("/:date/log", workoutHandler.LogExercise)
			workoutGroup.GET("/:date/summary", workoutHandler.GetSummary)
		}

		// --- Progress ---
		progressGroup := protected.Group("/progress")
		{
			progressGroup.GET("/history", mealHandler.GetHistory)
			progressGroup.GET("/weight", profileHandler.WeightHistory)
			progressGroup.POST("/weight", profileHandler.LogWeight)
		}

		// --- Catalogs ---
		protected.GET("/foods/search", catalogHandler.SearchFoods)
		protected.GET("/exercises", catalogHandler.ListExercises)
	}
}
