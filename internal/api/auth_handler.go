package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vitaplan/fitness-planner/internal/domain"
	"vitaplan/fitness-planner/internal/service"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse excludes sensitive info like password hash.
type UserResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Email            string               `json:"email"`
	Gender           domain.Gender        `json:"gender,omitempty"`
	Age              int                  `json:"age,omitempty"`
	HeightCm         float64              `json:"heightCm,omitempty"`
	WeightKg         float64              `json:"weightKg,omitempty"`
	ActivityLevel    domain.ActivityLevel `json:"activityLevel,omitempty"`
	Goal             domain.Goal          `json:"goal,omitempty"`
	BMI              float64              `json:"bmi,omitempty"`
	IdealWeightKg    float64              `json:"idealWeightKg,omitempty"`
	DailyCalories    float64              `json:"dailyCalories,omitempty"`
	ProteinTarget    float64              `json:"proteinTarget,omitempty"`
	CarbsTarget      float64              `json:"carbsTarget,omitempty"`
	FatTarget        float64              `json:"fatTarget,omitempty"`
	PlanMode         domain.PlanMode      `json:"planMode"`
	ProfileCompleted bool                 `json:"profileCompleted"`
	CreatedAt        time.Time            `json:"createdAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// Login authenticates a user and returns a JWT token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else if errors.Is(err, service.ErrTokenGeneration) {
			abortWithError(c, http.StatusInternalServerError, "Could not process login")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:               user.ID.Hex(),
		Name:             user.Name,
		Email:            user.Email,
		Gender:           user.Gender,
		Age:              user.Age,
		HeightCm:         user.HeightCm,
		WeightKg:         user.WeightKg,
		ActivityLevel:    user.ActivityLevel,
		Goal:             user.Goal,
		BMI:              user.BMI,
		IdealWeightKg:    user.IdealWeightKg,
		DailyCalories:    user.DailyCalories,
		ProteinTarget:    user.ProteinTarget,
		CarbsTarget:      user.CarbsTarget,
		FatTarget:        user.FatTarget,
		PlanMode:         user.ActivePlanMode(),
		ProfileCompleted: user.ProfileCompleted,
		CreatedAt:        user.CreatedAt,
	}
}
