package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitaplan/fitness-planner/internal/domain"
	"vitaplan/fitness-planner/internal/service"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type UpdateProfileRequest struct {
	Gender              string   `json:"gender" binding:"required,oneof=male female"`
	Age                 int      `json:"age" binding:"required,gt=0,lt=120"`
	HeightCm            float64  `json:"heightCm" binding:"required,gt=0"`
	WeightKg            float64  `json:"weightKg" binding:"required,gt=0"`
	ActivityLevel       string   `json:"activityLevel" binding:"required,oneof=sedentary light moderate active very-active"`
	Goal                string   `json:"goal" binding:"required,oneof=weight-loss weight-gain muscle-gain"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Allergies           []string `json:"allergies"`
}

type SetPlanModeRequest struct {
	PlanMode string `json:"planMode" binding:"required,oneof=ai manual"`
}

type LogWeightRequest struct {
	Date     string  `json:"date" binding:"required"`
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
	Notes    string  `json:"notes"`
}

// GetProfile returns the authenticated user's profile with derived targets.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, ok := loadCurrentUser(c, h.profileService)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateProfile stores new measurements and recomputes all derived targets.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity in token")
		return
	}

	user, err := h.profileService.UpdateProfile(c.Request.Context(), userID, service.ProfileInput{
		Gender:              domain.Gender(req.Gender),
		Age:                 req.Age,
		HeightCm:            req.HeightCm,
		WeightKg:            req.WeightKg,
		ActivityLevel:       domain.ActivityLevel(req.ActivityLevel),
		Goal:                domain.Goal(req.Goal),
		DietaryRestrictions: req.DietaryRestrictions,
		Allergies:           req.Allergies,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidProfile) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// SetPlanMode switches between AI-generated and manual meal tracking.
func (h *ProfileHandler) SetPlanMode(c *gin.Context) {
	var req SetPlanModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity in token")
		return
	}

	user, err := h.profileService.SetPlanMode(c.Request.Context(), userID, domain.PlanMode(req.PlanMode))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update plan mode")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// LogWeight records a dated weight measurement.
func (h *ProfileHandler) LogWeight(c *gin.Context) {
	var req LogWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity in token")
		return
	}

	entry, err := h.profileService.LogWeight(c.Request.Context(), userID, req.Date, req.WeightKg, req.Notes)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// WeightHistory lists all weight entries in chronological order.
func (h *ProfileHandler) WeightHistory(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user identity in token")
		return
	}

	entries, err := h.profileService.WeightHistory(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load weight history")
		return
	}
	if entries == nil {
		entries = []domain.ProgressEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
