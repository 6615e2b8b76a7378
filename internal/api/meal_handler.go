package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitaplan/fitness-planner/internal/domain"
	"vitaplan/fitness-planner/internal/service"
)

// MealHandler holds the meal planning and ledger service dependencies.
type MealHandler struct {
	mealService    service.MealPlanService
	ledgerService  service.LedgerService
	profileService service.ProfileService
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(mealService service.MealPlanService, ledgerService service.LedgerService, profileService service.ProfileService) *MealHandler {
	return &MealHandler{
		mealService:    mealService,
		ledgerService:  ledgerService,
		profileService: profileService,
	}
}

type AddFoodRequest struct {
	Name        string  `json:"name" binding:"required"`
	Calories    float64 `json:"calories" binding:"required,gte=0"`
	Protein     float64 `json:"protein" binding:"gte=0"`
	Carbs       float64 `json:"carbs" binding:"gte=0"`
	Fat         float64 `json:"fat" binding:"gte=0"`
	ServingSize string  `json:"servingSize"`
	Slot        string  `json:"slot" binding:"required,oneof=breakfast lunch dinner snack"`
}

type ToggleFoodRequest struct {
	Provenance string `json:"provenance" binding:"required,oneof=ai manual"`
	EntryID    string `json:"entryId" binding:"required"`
	Slot       string `json:"slot" binding:"required,oneof=breakfast lunch dinner snack"`
}

type ToggleFoodResponse struct {
	Consumed  bool                        `json:"consumed"`
	Nutrition domain.DailyNutritionRecord `json:"nutrition"`
}

// dateParam reads the date from the route path, falling back to a query
// parameter and then to today.
func dateParam(c *gin.Context) string {
	if date := c.Param("date"); date != "" {
		return date
	}
	if date := c.Query("date"); date != "" {
		return date
	}
	return domain.DateKey(timeNow())
}

// GetPlan returns the day's AI meal plan, generating one when needed.
// Pass force=true to regenerate over a stored plan.
func (h *MealHandler) GetPlan(c *gin.Context) {
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}
	force := c.Query("force") == "true"

	plan, err := h.mealService.GetPlan(c.Request.Context(), user, dateParam(c), force)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load meal plan")
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GetManualPlan returns the day's manually tracked entries.
func (h *MealHandler) GetManualPlan(c *gin.Context) {
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}

	plan, err := h.mealService.GetManualPlan(c.Request.Context(), user, dateParam(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load meal entries")
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// AddFood appends a food entry to the day's manual plan.
func (h *MealHandler) AddFood(c *gin.Context) {
	var req AddFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}

	plan, err := h.mealService.AddFood(c.Request.Context(), user, dateParam(c), service.FoodInput{
		Name:        req.Name,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		ServingSize: req.ServingSize,
		Slot:        domain.MealSlot(req.Slot),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) || errors.Is(err, service.ErrInvalidSlot) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to add food entry")
		}
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// RemoveFood deletes a food entry from the day's manual plan.
func (h *MealHandler) RemoveFood(c *gin.Context) {
	entryID := c.Param("entryId")
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}

	plan, err := h.mealService.RemoveFood(c.Request.Context(), user, dateParam(c), entryID)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to remove food entry")
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ToggleFood flips an entry's consumed state and returns the rebuilt totals.
func (h *MealHandler) ToggleFood(c *gin.Context) {
	var req ToggleFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}

	consumed, rec, err := h.ledgerService.ToggleFood(
		c.Request.Context(), user, dateParam(c),
		domain.Provenance(req.Provenance), req.EntryID, domain.MealSlot(req.Slot),
	)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) || errors.Is(err, service.ErrInvalidSlot) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to toggle food entry")
		}
		return
	}
	c.JSON(http.StatusOK, ToggleFoodResponse{Consumed: consumed, Nutrition: *rec})
}

// GetDailySummary returns the day's combined nutrition and activity view.
func (h *MealHandler) GetDailySummary(c *gin.Context) {
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}

	summary, err := h.ledgerService.GetDailySummary(c.Request.Context(), user, dateParam(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load daily summary")
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetHistory returns the rolling window of daily stats, oldest first.
func (h *MealHandler) GetHistory(c *gin.Context) {
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}
	end := c.Query("end")
	if end == "" {
		end = domain.DateKey(timeNow())
	}

	stats, err := h.ledgerService.WeeklyHistory(c.Request.Context(), user, end, 7)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load history")
		}
		return
	}
	c.JSON(http.StatusOK, stats)
}
