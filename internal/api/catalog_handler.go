package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitaplan/fitness-planner/internal/domain"
)

// CatalogHandler serves the built-in food catalog.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// SearchFoods returns catalog foods matching the query; the full catalog when
// the query is empty.
func (h *CatalogHandler) SearchFoods(c *gin.Context) {
	results := domain.SearchFoods(c.Query("q"))
	if results == nil {
		results = []domain.CatalogFood{}
	}
	c.JSON(http.StatusOK, results)
}

// ListExercises returns the built-in exercise catalog.
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, domain.ListExercises())
}
