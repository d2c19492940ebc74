package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"surya-admin/db"
	"surya-admin/models"
)

// StockFilter narrows an item list to in-stock or out-of-stock rows
type StockFilter string

const (
	StockAll        StockFilter = "all"
	StockInStock    StockFilter = "in_stock"
	StockOutOfStock StockFilter = "out_of_stock"
)

// ItemListParams represents optional filter parameters for listing items
type ItemListParams struct {
	Page     int
	Limit    int
	Category *models.Category
	Search   string
	Stock    StockFilter
}

// ItemRepository handles database operations for catalog items
type ItemRepository struct{}

// NewItemRepository creates a new ItemRepository
func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

// Ensure ItemRepository implements ItemRepositoryInterface
var _ ItemRepositoryInterface = (*ItemRepository)(nil)

const itemColumns = `id, name, description, price, category, stock, unit_type, is_active, created_at, updated_at`

func scanItem(row interface{ Scan(...interface{}) error }) (*models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.Stock,
		&item.UnitType,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List retrieves active items matching the provided filters, paginated
func (r *ItemRepository) List(ctx context.Context, params ItemListParams) (*models.ItemListResponse, error) {
	log.Printf("🔍 List: Filtering items page=%d limit=%d category=%v search=%q stock=%s",
		params.Page, params.Limit, params.Category, params.Search, params.Stock)

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 1000 {
		params.Limit = 25
	}

	where := []string{"is_active = true"}
	var args []interface{}
	argIndex := 1

	if params.Category != nil && params.Category.IsValid() {
		where = append(where, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, *params.Category)
		argIndex++
	}

	if params.Search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	switch params.Stock {
	case StockInStock:
		where = append(where, "stock > 0")
	case StockOutOfStock:
		where = append(where, "stock = 0")
	}

	whereClause := strings.Join(where, " AND ")

	// Total count for pagination
	var total int
	countQuery := `SELECT COUNT(*) FROM items WHERE ` + whereClause
	if err := db.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Printf("❌ List: Error counting items: %v", err)
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM items WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		itemColumns, whereClause, argIndex, argIndex+1)
	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ List: Error fetching items: %v", err)
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Printf("❌ List: Error scanning item: %v", err)
			continue
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		log.Printf("❌ List: Error iterating items: %v", err)
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	totalPages := (total + params.Limit - 1) / params.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	log.Printf("✅ List: Successfully fetched %d of %d items", len(items), total)
	return &models.ItemListResponse{
		Items: items,
		Pagination: models.Pagination{
			Page:        params.Page,
			Limit:       params.Limit,
			TotalItems:  total,
			TotalPages:  totalPages,
			HasNextPage: params.Page < totalPages,
			HasPrevPage: params.Page > 1,
		},
	}, nil
}

// GetByID retrieves a single active item
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND is_active = true`
	item, err := scanItem(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item not found")
		}
		log.Printf("❌ GetByID: Error fetching item %d: %v", id, err)
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}
	return item, nil
}

func validateItemRequest(req *models.ItemRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if req.Price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	if !req.Category.IsValid() {
		return fmt.Errorf("category must be 1 (medical) or 2 (optical)")
	}
	if req.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	if strings.TrimSpace(req.UnitType) == "" {
		return fmt.Errorf("unit_type is required")
	}
	return nil
}

// Create inserts a new catalog item
func (r *ItemRepository) Create(ctx context.Context, req *models.ItemRequest) (*models.Item, error) {
	log.Printf("📦 Create: Creating item name=%q category=%d stock=%d", req.Name, req.Category, req.Stock)

	if err := validateItemRequest(req); err != nil {
		return nil, fmt.Errorf("invalid item: %w", err)
	}

	query := `
		INSERT INTO items (name, description, price, category, stock, unit_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + itemColumns

	item, err := scanItem(db.DB.QueryRowContext(ctx, query,
		strings.TrimSpace(req.Name),
		req.Description,
		req.Price,
		req.Category,
		req.Stock,
		req.UnitType,
	))
	if err != nil {
		log.Printf("❌ Create: Error inserting item: %v", err)
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	log.Printf("✅ Create: Successfully created item id=%d", item.ID)
	return item, nil
}

// Update replaces every editable field of an item, stock included
func (r *ItemRepository) Update(ctx context.Context, id int64, req *models.ItemRequest) (*models.Item, error) {
	log.Printf("📦 Update: Updating item id=%d", id)

	if err := validateItemRequest(req); err != nil {
		return nil, fmt.Errorf("invalid item: %w", err)
	}

	query := `
		UPDATE items
		SET name = $1, description = $2, price = $3, category = $4, stock = $5, unit_type = $6, updated_at = NOW()
		WHERE id = $7 AND is_active = true
		RETURNING ` + itemColumns

	item, err := scanItem(db.DB.QueryRowContext(ctx, query,
		strings.TrimSpace(req.Name),
		req.Description,
		req.Price,
		req.Category,
		req.Stock,
		req.UnitType,
		id,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item not found")
		}
		log.Printf("❌ Update: Error updating item %d: %v", id, err)
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	log.Printf("✅ Update: Successfully updated item id=%d", item.ID)
	return item, nil
}

// Delete soft-deletes an item so existing order lines keep their reference
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	log.Printf("📦 Delete: Deactivating item id=%d", id)

	result, err := db.DB.ExecContext(ctx, `UPDATE items SET is_active = false, updated_at = NOW() WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		log.Printf("❌ Delete: Error deactivating item %d: %v", id, err)
		return fmt.Errorf("failed to delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item not found")
	}

	log.Printf("✅ Delete: Successfully deactivated item id=%d", id)
	return nil
}

// Snapshot loads the given items in one read. An empty ids slice returns
// every active item. Used to build the catalog snapshot the order form
// validates against.
func (r *ItemRepository) Snapshot(ctx context.Context, ids []int64) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE is_active = true`
	var args []interface{}
	if len(ids) > 0 {
		placeholders := make([]string, len(ids))
		for i, id := range ids {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args = append(args, id)
		}
		query += ` AND id IN (` + strings.Join(placeholders, ", ") + `)`
	}

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Snapshot: Error fetching items: %v", err)
		return nil, fmt.Errorf("failed to fetch catalog snapshot: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Printf("❌ Snapshot: Error scanning item: %v", err)
			continue
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
