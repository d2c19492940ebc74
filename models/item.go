package models

// Item represents a catalog item in the database
type Item struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Stock       int      `json:"stock"`
	UnitType    string   `json:"unitType"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// ItemRequest represents the request body for creating or updating an item
// Example: {"name": "Paracetamol 500mg", "price": 20, "category": 1, "description": "Fever and pain relief", "stock": 120, "unitType": "strip"}
type ItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Stock       int      `json:"stock"`
	UnitType    string   `json:"unitType"`
}

// Pagination carries paging metadata for list responses
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// ItemListResponse is the canonical list shape for GET /api/items.
// Example response:
// {
//   "items": [
//     {"id": 1, "name": "Paracetamol 500mg", "price": 20, "category": 1, "stock": 120, "unitType": "strip", "isActive": true}
//   ],
//   "pagination": {"page": 1, "limit": 25, "totalItems": 1, "totalPages": 1, "hasNextPage": false, "hasPrevPage": false}
// }
type ItemListResponse struct {
	Items      []Item     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// UnitTypesResponse is the canonical shape for GET /api/items/unit-types
// Example: {"category": 1, "unitTypes": ["tablet", "bottle", "strip", "box", "syrup", "piece"]}
type UnitTypesResponse struct {
	Category  Category `json:"category"`
	UnitTypes []string `json:"unitTypes"`
}
