package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"surya-admin/models"
	"surya-admin/repository"
)

// ItemController handles HTTP requests for catalog items
type ItemController struct {
	repository repository.ItemRepositoryInterface
}

// NewItemController creates a new ItemController
func NewItemController(repo repository.ItemRepositoryInterface) *ItemController {
	return &ItemController{
		repository: repo,
	}
}

// List handles GET /api/items
// Supports page, limit, category, search and stock query parameters
func (c *ItemController) List(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 List: Received %s request to %s", r.Method, r.URL.Path)

	params := repository.ItemListParams{
		Page:   1,
		Limit:  25,
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Stock:  repository.StockFilter(r.URL.Query().Get("stock")),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}
	if categoryStr := r.URL.Query().Get("category"); categoryStr != "" {
		categoryInt, err := strconv.Atoi(categoryStr)
		category := models.Category(categoryInt)
		if err != nil || !category.IsValid() {
			log.Printf("❌ List: Invalid category: %s", categoryStr)
			http.Error(w, "category must be 1 (medical) or 2 (optical)", http.StatusBadRequest)
			return
		}
		params.Category = &category
	}

	ctx := context.Background()

	response, err := c.repository.List(ctx, params)
	if err != nil {
		log.Printf("❌ List: Error fetching items: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch items: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Create handles POST /api/items
func (c *ItemController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Create: Received %s request to %s", r.Method, r.URL.Path)

	var req models.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Create: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	item, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ Create: Error creating item: %v", err)
		if strings.Contains(err.Error(), "invalid item") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to create item: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// UnitTypes handles GET /api/items/unit-types
// Returns the unit types allowed for the requested category
func (c *ItemController) UnitTypes(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UnitTypes: Received %s request to %s", r.Method, r.URL.Path)

	categoryInt, err := strconv.Atoi(r.URL.Query().Get("category"))
	category := models.Category(categoryInt)
	if err != nil || !category.IsValid() {
		log.Printf("❌ UnitTypes: Invalid category: %s", r.URL.Query().Get("category"))
		http.Error(w, "category must be 1 (medical) or 2 (optical)", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, models.UnitTypesResponse{
		Category:  category,
		UnitTypes: category.UnitTypes(),
	})
}

// Snapshot handles GET /api/items/snapshot
// Returns the current catalog rows for the requested ids (or all active
// items), the data the order form refreshes line fields from
func (c *ItemController) Snapshot(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Snapshot: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var ids []int64
	if idsParam := strings.TrimSpace(r.URL.Query().Get("ids")); idsParam != "" {
		for _, part := range strings.Split(idsParam, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil || id <= 0 {
				log.Printf("❌ Snapshot: Invalid id in ids parameter: %q", part)
				http.Error(w, "ids must be a comma-separated list of item ids", http.StatusBadRequest)
				return
			}
			ids = append(ids, id)
		}
	}

	ctx := context.Background()

	items, err := c.repository.Snapshot(ctx, ids)
	if err != nil {
		log.Printf("❌ Snapshot: Error fetching snapshot: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch catalog snapshot: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// HandleItem dispatches GET/PUT/DELETE /api/items/{id}
func (c *ItemController) HandleItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 HandleItem: Received %s request to %s", r.Method, r.URL.Path)

	id, err := parseIDPath(r.URL.Path, "/api/items/")
	if err != nil {
		log.Printf("❌ HandleItem: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	switch r.Method {
	case http.MethodGet:
		item, err := c.repository.GetByID(ctx, id)
		if err != nil {
			writeItemError(w, "HandleItem", err)
			return
		}
		writeJSON(w, http.StatusOK, item)

	case http.MethodPut:
		var req models.ItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("❌ HandleItem: Failed to decode request body: %v", err)
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		item, err := c.repository.Update(ctx, id, &req)
		if err != nil {
			if strings.Contains(err.Error(), "invalid item") {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			writeItemError(w, "HandleItem", err)
			return
		}
		writeJSON(w, http.StatusOK, item)

	case http.MethodDelete:
		if err := c.repository.Delete(ctx, id); err != nil {
			writeItemError(w, "HandleItem", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeItemError(w http.ResponseWriter, op string, err error) {
	log.Printf("❌ %s: %v", op, err)
	if strings.Contains(err.Error(), "not found") {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, fmt.Sprintf("Failed to process item: %v", err), http.StatusInternalServerError)
}
