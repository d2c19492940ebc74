package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"surya-admin/repository"
)

// DashboardController handles HTTP requests for the sales dashboard
type DashboardController struct {
	repository repository.DashboardRepositoryInterface
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(repo repository.DashboardRepositoryInterface) *DashboardController {
	return &DashboardController{
		repository: repo,
	}
}

// Metrics handles GET /api/dashboard
// Defaults to the current year; admins only (enforced by the router)
func (c *DashboardController) Metrics(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Metrics: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 2000 || parsed > year+1 {
			log.Printf("❌ Metrics: Invalid year: %s", yearStr)
			http.Error(w, "invalid year parameter", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	ctx := context.Background()

	metrics, err := c.repository.GetMetrics(ctx, year)
	if err != nil {
		log.Printf("❌ Metrics: Error computing metrics: %v", err)
		http.Error(w, fmt.Sprintf("Failed to compute dashboard metrics: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}
