package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitaplan/fitness-planner/internal/domain"
	"vitaplan/fitness-planner/internal/service"
)

// WorkoutHandler holds the workout service dependencies.
type WorkoutHandler struct {
	workoutService service.WorkoutService
	profileService service.ProfileService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService, profileService service.ProfileService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, profileService: profileService}
}

type CompleteExerciseRequest struct {
	Name string `json:"name" binding:"required"`
}

type LogExerciseRequest struct {
	Name string `json:"name" binding:"required"`
	Reps int    `json:"reps" binding:"required,gt=0"`
}

type WorkoutLogResponse struct {
	Log    domain.WorkoutLog         `json:"log"`
	Record domain.DailyWorkoutRecord `json:"record"`
}

// GetPlan returns the day's AI workout plan, generating one when needed.
func (h *WorkoutHandler) GetPlan(c *gin.Context) {
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}
	force := c.Query("force") == "true"

	plan, err := h.workoutService.GetPlan(c.Request.Context(), user, dateParam(c), force)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load workout plan")
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CompleteExercise marks a planned exercise as done. Reps and burned
// calories derive from the plan's set spec and the user's weight.
func (h *WorkoutHandler) CompleteExercise(c *gin.Context) {
	var req CompleteExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}

	workoutLog, record, err := h.workoutService.CompletePlanned(c.Request.Context(), user, dateParam(c), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotPlanned) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log exercise")
		}
		return
	}
	c.JSON(http.StatusOK, WorkoutLogResponse{Log: *workoutLog, Record: *record})
}

// LogExercise records an ad-hoc exercise outside the generated plan.
func (h *WorkoutHandler) LogExercise(c *gin.Context) {
	var req LogExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}

	workoutLog, record, err := h.workoutService.LogExercise(c.Request.Context(), user, dateParam(c), req.Name, req.Reps)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log exercise")
		}
		return
	}
	c.JSON(http.StatusOK, WorkoutLogResponse{Log: *workoutLog, Record: *record})
}

// GetSummary returns the day's completed exercises with their aggregate.
func (h *WorkoutHandler) GetSummary(c *gin.Context) {
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}
	date := dateParam(c)

	workoutLog, err := h.workoutService.GetLog(c.Request.Context(), user, date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load workout log")
		}
		return
	}
	c.JSON(http.StatusOK, WorkoutLogResponse{
		Log:    *workoutLog,
		Record: domain.AggregateWorkout(date, workoutLog),
	})
}
