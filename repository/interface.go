package repository

import (
	"context"

	"surya-admin/models"
)

// ItemRepositoryInterface defines the contract for catalog item operations
type ItemRepositoryInterface interface {
	List(ctx context.Context, params ItemListParams) (*models.ItemListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	Create(ctx context.Context, req *models.ItemRequest) (*models.Item, error)
	Update(ctx context.Context, id int64, req *models.ItemRequest) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
	Snapshot(ctx context.Context, ids []int64) ([]models.Item, error)
}

// OrderRepositoryInterface defines the contract for order operations
type OrderRepositoryInterface interface {
	Create(ctx context.Context, req *models.OrderRequest) (*models.Order, error)
	Update(ctx context.Context, id int64, req *models.OrderRequest) (*models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, params OrderListParams) (*models.OrderListResponse, error)
	Delete(ctx context.Context, id int64) error
}

// DashboardRepositoryInterface defines the contract for dashboard aggregates
type DashboardRepositoryInterface interface {
	GetMetrics(ctx context.Context, year int) (*models.DashboardMetrics, error)
}
