package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"surya-admin/db"
	"surya-admin/models"
	"surya-admin/pricing"
)

// OrderListParams represents paging and search parameters for listing orders
type OrderListParams struct {
	Page   int
	Limit  int
	Search string
}

// OrderRepository handles database operations for orders.
//
// Order creation validates the submitted draft and decrements item stock in
// the same transaction, so an order can never be written without its stock
// movement (and vice versa). Insufficient stock fails the whole call with a
// validation error naming the short items; nothing is partially applied.
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// OrderNumber formats the printable order number for an order id
func OrderNumber(id int64) string {
	return fmt.Sprintf("ORD-%05d", id)
}

func lineItemIDs(req *models.OrderRequest) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, it := range req.Items {
		if it.ItemID > 0 && !seen[it.ItemID] {
			seen[it.ItemID] = true
			ids = append(ids, it.ItemID)
		}
	}
	return ids
}

// lockItems reads the given items FOR UPDATE inside tx so stock checks and
// stock movements run against a stable view
func lockItems(ctx context.Context, tx *sql.Tx, ids []int64) ([]models.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `
		SELECT id, name, description, price, category, stock, unit_type, is_active, created_at, updated_at
		FROM items
		WHERE is_active = true AND id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY id
		FOR UPDATE
	`

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to lock items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		err := rows.Scan(
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
			return nil, fmt.Errorf("failed to scan locked item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// refreshLines re-copies the denormalized item fields (name, category, unit
// type) from the catalog snapshot onto each draft line. The submitted unit
// price is kept: price is user-editable on the form.
func refreshLines(draft *pricing.Draft, catalog pricing.Catalog) {
	for i := range draft.Lines {
		if item, ok := catalog.Lookup(draft.Lines[i].ItemID); ok {
			draft.Lines[i].ItemName = item.Name
			draft.Lines[i].Category = item.Category
			if draft.Lines[i].UnitType == "" {
				draft.Lines[i].UnitType = item.UnitType
			}
		}
	}
}

func insertOrderLines(ctx context.Context, tx *sql.Tx, orderID int64, draft *pricing.Draft) ([]models.OrderItem, error) {
	query := `
		INSERT INTO order_items (order_id, item_id, item_name, category, quantity, unit_price, total_price, unit_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	items := make([]models.OrderItem, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		var lineID int64
		err := tx.QueryRowContext(ctx, query,
			orderID,
			line.ItemID,
			line.ItemName,
			line.Category,
			line.Quantity,
			line.UnitPrice,
			line.TotalPrice,
			line.UnitType,
		).Scan(&lineID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order line: %w", err)
		}
		items = append(items, models.OrderItem{
			ID:         lineID,
			OrderID:    orderID,
			ItemID:     line.ItemID,
			ItemName:   line.ItemName,
			Category:   line.Category,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
			UnitType:   line.UnitType,
		})
	}
	return items, nil
}

// Create validates the draft against a locked catalog snapshot, recomputes
// the totals server-side and writes the order, its lines and the stock
// decrements in one transaction
func (r *OrderRepository) Create(ctx context.Context, req *models.OrderRequest) (*models.Order, error) {
	log.Printf("📦 Create: Creating order for customer=%q with %d lines", req.CustomerName, len(req.Items))

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Create: Error starting transaction: %v", err)
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	snapshot, err := lockItems(ctx, tx, lineItemIDs(req))
	if err != nil {
		log.Printf("❌ Create: %v", err)
		return nil, err
	}
	catalog := pricing.NewCatalog(snapshot)

	draft := pricing.DraftFromRequest(req)
	refreshLines(draft, catalog)
	if err := pricing.Validate(draft, catalog); err != nil {
		log.Printf("❌ Create: Validation failed: %v", err)
		return nil, err
	}
	totals := pricing.ComputeTotals(draft)

	var order models.Order
	queryOrder := `
		INSERT INTO orders (customer_name, customer_phone, discount, tax, subtotal, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, customer_name, customer_phone, discount, tax, subtotal, total_amount, created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, queryOrder,
		strings.TrimSpace(draft.CustomerName),
		draft.CustomerPhone,
		draft.Discount,
		draft.Tax,
		totals.Subtotal,
		totals.GrandTotal,
	).Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.Discount,
		&order.Tax,
		&order.Subtotal,
		&order.TotalAmount,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		log.Printf("❌ Create: Error inserting order: %v", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order.Items, err = insertOrderLines(ctx, tx, order.ID, draft)
	if err != nil {
		log.Printf("❌ Create: %v", err)
		return nil, err
	}

	// Stock was validated under lock above, so the decrement cannot go
	// negative here. Lines whose item is no longer in the catalog carry no
	// stock movement, matching the validation.
	for _, line := range draft.Lines {
		if _, ok := catalog.Lookup(line.ItemID); !ok {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE items SET stock = stock - $1, updated_at = NOW() WHERE id = $2`,
			line.Quantity, line.ItemID,
		)
		if err != nil {
			log.Printf("❌ Create: Error decrementing stock for item_id=%d: %v", line.ItemID, err)
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ Create: Error committing transaction: %v", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	order.OrderNumber = OrderNumber(order.ID)
	log.Printf("✅ Create: Successfully created order id=%d total=%v", order.ID, order.TotalAmount)
	return &order, nil
}

// Update rewrites an order's fields and lines and adjusts item stock by the
// per-item difference between the old and new lines, all in one transaction.
// Stock already held by this order counts as available when validating.
func (r *OrderRepository) Update(ctx context.Context, id int64, req *models.OrderRequest) (*models.Order, error) {
	log.Printf("📦 Update: Updating order id=%d with %d lines", id, len(req.Items))

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Update: Error starting transaction: %v", err)
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT true FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order not found")
		}
		log.Printf("❌ Update: Error fetching order: %v", err)
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	// Current per-item quantities held by this order.
	oldQty := make(map[int64]int)
	rows, err := tx.QueryContext(ctx, `SELECT item_id, quantity FROM order_items WHERE order_id = $1`, id)
	if err != nil {
		log.Printf("❌ Update: Error fetching existing lines: %v", err)
		return nil, fmt.Errorf("failed to fetch order lines: %w", err)
	}
	for rows.Next() {
		var itemID int64
		var qty int
		if err := rows.Scan(&itemID, &qty); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		oldQty[itemID] += qty
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}

	// Lock the union of old and new items.
	idSet := make(map[int64]bool)
	var ids []int64
	for _, itemID := range lineItemIDs(req) {
		if !idSet[itemID] {
			idSet[itemID] = true
			ids = append(ids, itemID)
		}
	}
	for itemID := range oldQty {
		if !idSet[itemID] {
			idSet[itemID] = true
			ids = append(ids, itemID)
		}
	}

	snapshot, err := lockItems(ctx, tx, ids)
	if err != nil {
		log.Printf("❌ Update: %v", err)
		return nil, err
	}
	catalog := pricing.NewCatalog(snapshot)

	// Validate against the effective availability: stock on hand plus
	// whatever this order already reserved.
	adjusted := make([]models.Item, len(snapshot))
	copy(adjusted, snapshot)
	for i := range adjusted {
		adjusted[i].Stock += oldQty[adjusted[i].ID]
	}

	draft := pricing.DraftFromRequest(req)
	refreshLines(draft, catalog)
	if err := pricing.Validate(draft, pricing.NewCatalog(adjusted)); err != nil {
		log.Printf("❌ Update: Validation failed: %v", err)
		return nil, err
	}
	totals := pricing.ComputeTotals(draft)

	var order models.Order
	queryOrder := `
		UPDATE orders
		SET customer_name = $1, customer_phone = $2, discount = $3, tax = $4,
		    subtotal = $5, total_amount = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id, customer_name, customer_phone, discount, tax, subtotal, total_amount, created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, queryOrder,
		strings.TrimSpace(draft.CustomerName),
		draft.CustomerPhone,
		draft.Discount,
		draft.Tax,
		totals.Subtotal,
		totals.GrandTotal,
		id,
	).Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.Discount,
		&order.Tax,
		&order.Subtotal,
		&order.TotalAmount,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		log.Printf("❌ Update: Error updating order: %v", err)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		log.Printf("❌ Update: Error clearing old lines: %v", err)
		return nil, fmt.Errorf("failed to clear order lines: %w", err)
	}

	order.Items, err = insertOrderLines(ctx, tx, id, draft)
	if err != nil {
		log.Printf("❌ Update: %v", err)
		return nil, err
	}

	newQty := make(map[int64]int)
	for _, line := range draft.Lines {
		newQty[line.ItemID] += line.Quantity
	}

	for _, itemID := range ids {
		if _, ok := catalog.Lookup(itemID); !ok {
			continue
		}
		delta := newQty[itemID] - oldQty[itemID]
		if delta == 0 {
			continue
		}
		// Negative delta restores stock; stock never drops below zero.
		_, err := tx.ExecContext(ctx,
			`UPDATE items SET stock = GREATEST(0, stock - $1), updated_at = NOW() WHERE id = $2`,
			delta, itemID,
		)
		if err != nil {
			log.Printf("❌ Update: Error adjusting stock for item_id=%d: %v", itemID, err)
			return nil, fmt.Errorf("failed to adjust stock: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ Update: Error committing transaction: %v", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	order.OrderNumber = OrderNumber(order.ID)
	log.Printf("✅ Update: Successfully updated order id=%d total=%v", order.ID, order.TotalAmount)
	return &order, nil
}

// GetByID retrieves an order with its lines
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	queryOrder := `
		SELECT id, customer_name, customer_phone, discount, tax, subtotal, total_amount, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	err := db.DB.QueryRowContext(ctx, queryOrder, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.Discount,
		&order.Tax,
		&order.Subtotal,
		&order.TotalAmount,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order not found")
		}
		log.Printf("❌ GetByID: Error fetching order %d: %v", id, err)
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	order.OrderNumber = OrderNumber(order.ID)

	queryLines := `
		SELECT id, order_id, item_id, item_name, category, quantity, unit_price, total_price, unit_type
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`
	rows, err := db.DB.QueryContext(ctx, queryLines, id)
	if err != nil {
		log.Printf("❌ GetByID: Error fetching lines: %v", err)
		return nil, fmt.Errorf("failed to fetch order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it models.OrderItem
		err := rows.Scan(
			&it.ID,
			&it.OrderID,
			&it.ItemID,
			&it.ItemName,
			&it.Category,
			&it.Quantity,
			&it.UnitPrice,
			&it.TotalPrice,
			&it.UnitType,
		)
		if err != nil {
			log.Printf("❌ GetByID: Error scanning line: %v", err)
			continue
		}
		order.Items = append(order.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}

	return &order, nil
}

// List retrieves orders newest-first, optionally filtered by a search term
// matched against customer name, phone and order number
func (r *OrderRepository) List(ctx context.Context, params OrderListParams) (*models.OrderListResponse, error) {
	log.Printf("🔍 List: Fetching orders page=%d limit=%d search=%q", params.Page, params.Limit, params.Search)

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 1000 {
		params.Limit = 25
	}

	where := "TRUE"
	var args []interface{}
	argIndex := 1
	if params.Search != "" {
		where = fmt.Sprintf(`(customer_name ILIKE $%d OR customer_phone LIKE $%d OR 'ORD-' || LPAD(id::text, 5, '0') ILIKE $%d)`,
			argIndex, argIndex, argIndex)
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	var total int
	if err := db.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE `+where, args...).Scan(&total); err != nil {
		log.Printf("❌ List: Error counting orders: %v", err)
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT o.id, o.customer_name, o.customer_phone, o.total_amount, o.created_at,
		       COUNT(oi.id) AS item_count
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE %s
		GROUP BY o.id, o.customer_name, o.customer_phone, o.total_amount, o.created_at
		ORDER BY o.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIndex, argIndex+1)
	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ List: Error fetching orders: %v", err)
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.OrderListItem, 0)
	for rows.Next() {
		var o models.OrderListItem
		err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.CustomerPhone,
			&o.TotalAmount,
			&o.CreatedAt,
			&o.ItemCount,
		)
		if err != nil {
			log.Printf("❌ List: Error scanning order: %v", err)
			continue
		}
		o.OrderNumber = OrderNumber(o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	totalPages := (total + params.Limit - 1) / params.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	log.Printf("✅ List: Successfully fetched %d of %d orders", len(orders), total)
	return &models.OrderListResponse{
		Orders: orders,
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

// Delete removes an order and restores each line's stock in one transaction
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	log.Printf("📦 Delete: Deleting order id=%d", id)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Delete: Error starting transaction: %v", err)
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT true FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("order not found")
		}
		log.Printf("❌ Delete: Error fetching order: %v", err)
		return fmt.Errorf("failed to fetch order: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `SELECT item_id, quantity FROM order_items WHERE order_id = $1`, id)
	if err != nil {
		log.Printf("❌ Delete: Error fetching lines: %v", err)
		return fmt.Errorf("failed to fetch order lines: %w", err)
	}
	type lineInfo struct {
		itemID int64
		qty    int
	}
	var lines []lineInfo
	for rows.Next() {
		var l lineInfo
		if err := rows.Scan(&l.itemID, &l.qty); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate order lines: %w", err)
	}

	for _, line := range lines {
		_, err := tx.ExecContext(ctx,
			`UPDATE items SET stock = stock + $1, updated_at = NOW() WHERE id = $2 AND is_active = true`,
			line.qty, line.itemID,
		)
		if err != nil {
			log.Printf("❌ Delete: Error restoring stock for item_id=%d: %v", line.itemID, err)
			return fmt.Errorf("failed to restore stock: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		log.Printf("❌ Delete: Error deleting order: %v", err)
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ Delete: Error committing transaction: %v", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Delete: Successfully deleted order id=%d and restored stock", id)
	return nil
}
