package models

// Order represents a customer order in the database
type Order struct {
	ID            int64       `json:"id"`
	OrderNumber   string      `json:"orderNumber"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Discount      float64     `json:"discount"`
	Tax           float64     `json:"tax"`
	Subtotal      float64     `json:"subtotal"`
	TotalAmount   float64     `json:"totalAmount"`
	Items         []OrderItem `json:"items"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
}

// OrderItem is a line on an order. Item fields are copied from the catalog
// at selection time so the invoice survives later catalog edits.
type OrderItem struct {
	ID         int64    `json:"id"`
	OrderID    int64    `json:"orderId"`
	ItemID     int64    `json:"itemId"`
	ItemName   string   `json:"itemName"`
	Category   Category `json:"category"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice"`
	TotalPrice float64  `json:"totalPrice"`
	UnitType   string   `json:"unitType"`
}

// OrderLineInput is one line of an order create/update request
type OrderLineInput struct {
	ItemID     int64    `json:"itemId"`
	ItemName   string   `json:"itemName"`
	Category   Category `json:"category"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice"`
	TotalPrice float64  `json:"totalPrice"`
	UnitType   string   `json:"unitType"`
}

// OrderRequest represents the request body for creating or updating an order.
// Subtotal and TotalAmount sent by the client are advisory; the server
// recomputes both before anything is persisted.
// Example: {
//   "customerName": "Ravi Kumar",
//   "customerPhone": "9876543210",
//   "discount": 10,
//   "tax": 5,
//   "items": [
//     {"itemId": 1, "itemName": "Paracetamol 500mg", "category": 1, "quantity": 2, "unitPrice": 100, "unitType": "strip"}
//   ]
// }
type OrderRequest struct {
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	Discount      float64          `json:"discount"`
	Tax           float64          `json:"tax"`
	Subtotal      float64          `json:"subtotal"`
	TotalAmount   float64          `json:"totalAmount"`
	Items         []OrderLineInput `json:"items"`
}

// OrderListItem represents an order row in a list response
type OrderListItem struct {
	ID            int64   `json:"id"`
	OrderNumber   string  `json:"orderNumber"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	TotalAmount   float64 `json:"totalAmount"`
	ItemCount     int     `json:"itemCount"`
	CreatedAt     string  `json:"createdAt"`
}

// OrderListResponse is the canonical list shape for GET /api/orders.
// Example response:
// {
//   "orders": [
//     {"id": 3, "orderNumber": "ORD-00003", "customerName": "Ravi Kumar", "customerPhone": "9876543210", "totalAmount": 236, "itemCount": 2, "createdAt": "2026-01-04T10:30:00Z"}
//   ],
//   "pagination": {"page": 1, "limit": 25, "totalItems": 1, "totalPages": 1, "hasNextPage": false, "hasPrevPage": false}
// }
type OrderListResponse struct {
	Orders     []OrderListItem `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}
