package repository

import (
	"context"
	"fmt"
	"log"

	"surya-admin/db"
	"surya-admin/models"
)

// DashboardRepository computes the sales dashboard aggregates
type DashboardRepository struct{}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{}
}

// Ensure DashboardRepository implements DashboardRepositoryInterface
var _ DashboardRepositoryInterface = (*DashboardRepository)(nil)

// GetMetrics aggregates order and stock figures for the given year
func (r *DashboardRepository) GetMetrics(ctx context.Context, year int) (*models.DashboardMetrics, error) {
	log.Printf("🔍 GetMetrics: Computing dashboard metrics for year=%d", year)

	metrics := &models.DashboardMetrics{Year: year}

	queryOrders := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE EXTRACT(YEAR FROM created_at) = $1
	`
	err := db.DB.QueryRowContext(ctx, queryOrders, year).Scan(&metrics.TotalOrders, &metrics.TotalRevenue)
	if err != nil {
		log.Printf("❌ GetMetrics: Error aggregating orders: %v", err)
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	queryItems := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE stock = 0)
		FROM items
		WHERE is_active = true
	`
	err = db.DB.QueryRowContext(ctx, queryItems).Scan(&metrics.TotalItems, &metrics.NoStockItems)
	if err != nil {
		log.Printf("❌ GetMetrics: Error aggregating items: %v", err)
		return nil, fmt.Errorf("failed to aggregate items: %w", err)
	}

	// Units sold per calendar month of the year.
	queryMonthly := `
		SELECT EXTRACT(MONTH FROM o.created_at)::int AS month, COALESCE(SUM(oi.quantity), 0)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE EXTRACT(YEAR FROM o.created_at) = $1
		GROUP BY month
		ORDER BY month
	`
	rows, err := db.DB.QueryContext(ctx, queryMonthly, year)
	if err != nil {
		log.Printf("❌ GetMetrics: Error aggregating monthly sales: %v", err)
		return nil, fmt.Errorf("failed to aggregate monthly sales: %w", err)
	}
	for rows.Next() {
		var month, units int
		if err := rows.Scan(&month, &units); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan monthly sales: %w", err)
		}
		if month >= 1 && month <= 12 {
			metrics.MonthlySales[month-1] = units
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly sales: %w", err)
	}

	// Revenue per year for the trailing five years, oldest first.
	queryYearly := `
		SELECT EXTRACT(YEAR FROM created_at)::int AS yr, COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE EXTRACT(YEAR FROM created_at) BETWEEN $1 AND $2
		GROUP BY yr
		ORDER BY yr
	`
	rows, err = db.DB.QueryContext(ctx, queryYearly, year-4, year)
	if err != nil {
		log.Printf("❌ GetMetrics: Error aggregating yearly revenue: %v", err)
		return nil, fmt.Errorf("failed to aggregate yearly revenue: %w", err)
	}
	byYear := make(map[int]float64)
	for rows.Next() {
		var yr int
		var revenue float64
		if err := rows.Scan(&yr, &revenue); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan yearly revenue: %w", err)
		}
		byYear[yr] = revenue
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate yearly revenue: %w", err)
	}
	for yr := year - 4; yr <= year; yr++ {
		metrics.YearlyRevenue = append(metrics.YearlyRevenue, models.YearRevenue{
			Year:    yr,
			Revenue: byYear[yr],
		})
	}

	queryStock := `
		SELECT category, COALESCE(SUM(stock), 0)
		FROM items
		WHERE is_active = true
		GROUP BY category
	`
	rows, err = db.DB.QueryContext(ctx, queryStock)
	if err != nil {
		log.Printf("❌ GetMetrics: Error aggregating stock by category: %v", err)
		return nil, fmt.Errorf("failed to aggregate stock: %w", err)
	}
	for rows.Next() {
		var category models.Category
		var stock int
		if err := rows.Scan(&category, &stock); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}
		switch category {
		case models.CategoryMedical:
			metrics.StockByCategory.Medical = stock
		case models.CategoryOptical:
			metrics.StockByCategory.Optical = stock
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock: %w", err)
	}

	log.Printf("✅ GetMetrics: orders=%d revenue=%v items=%d", metrics.TotalOrders, metrics.TotalRevenue, metrics.TotalItems)
	return metrics, nil
}
