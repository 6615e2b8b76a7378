package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"vitaplan/fitness-planner/internal/domain"
)

func TestSearchFoodsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/foods/search", NewCatalogHandler().SearchFoods)

	req := httptest.NewRequest(http.MethodGet, "/foods/search?q=protein", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var foods []domain.CatalogFood
	if err := json.Unmarshal(w.Body.Bytes(), &foods); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(foods) != 2 {
		t.Errorf("got %d foods, want 2 in Protein category", len(foods))
	}

	// Unmatched query returns an empty array, not null.
	req = httptest.NewRequest(http.MethodGet, "/foods/search?q=pizza", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if body := w.Body.String(); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}
