package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"surya-admin/models"
	"surya-admin/pricing"
	"surya-admin/repository"
)

// OrderController handles HTTP requests for customer orders
type OrderController struct {
	repository repository.OrderRepositoryInterface
}

// NewOrderController creates a new OrderController
func NewOrderController(repo repository.OrderRepositoryInterface) *OrderController {
	return &OrderController{
		repository: repo,
	}
}

// List handles GET /api/orders
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 List: Received %s request to %s", r.Method, r.URL.Path)

	params := repository.OrderListParams{
		Page:   1,
		Limit:  25,
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}

	ctx := context.Background()

	response, err := c.repository.List(ctx, params)
	if err != nil {
		log.Printf("❌ List: Error fetching orders: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch orders: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Create handles POST /api/orders
// The submitted totals are advisory; the stored order carries the amounts
// recomputed here, and stock moves in the same transaction.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Create: Received %s request to %s", r.Method, r.URL.Path)

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Create: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if len(req.Items) == 0 {
		log.Printf("❌ Create: Order has no items")
		http.Error(w, "Please fill all required fields.", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	order, err := c.repository.Create(ctx, &req)
	if err != nil {
		writeOrderError(w, "Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// HandleOrder dispatches GET/PUT/DELETE /api/orders/{id}
func (c *OrderController) HandleOrder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 HandleOrder: Received %s request to %s", r.Method, r.URL.Path)

	id, err := parseIDPath(r.URL.Path, "/api/orders/")
	if err != nil {
		log.Printf("❌ HandleOrder: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	switch r.Method {
	case http.MethodGet:
		order, err := c.repository.GetByID(ctx, id)
		if err != nil {
			writeOrderError(w, "HandleOrder", err)
			return
		}
		writeJSON(w, http.StatusOK, order)

	case http.MethodPut:
		var req models.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("❌ HandleOrder: Failed to decode request body: %v", err)
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		if len(req.Items) == 0 {
			http.Error(w, "Please fill all required fields.", http.StatusBadRequest)
			return
		}
		order, err := c.repository.Update(ctx, id, &req)
		if err != nil {
			writeOrderError(w, "HandleOrder", err)
			return
		}
		writeJSON(w, http.StatusOK, order)

	case http.MethodDelete:
		if err := c.repository.Delete(ctx, id); err != nil {
			writeOrderError(w, "HandleOrder", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// writeOrderError maps repository errors onto HTTP statuses. Validation
// failures (including insufficient stock) surface as 400 with the message
// the order form shows.
func writeOrderError(w http.ResponseWriter, op string, err error) {
	log.Printf("❌ %s: %v", op, err)

	var validationErr *pricing.ValidationError
	if errors.As(err, &validationErr) {
		http.Error(w, validationErr.Message, http.StatusBadRequest)
		return
	}
	if strings.Contains(err.Error(), "not found") {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, fmt.Sprintf("Failed to process order: %v", err), http.StatusInternalServerError)
}
