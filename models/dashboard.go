package models

// DashboardMetrics is the response for GET /api/dashboard.
// Example response:
// {
//   "year": 2026,
//   "totalOrders": 152,
//   "totalRevenue": 481230,
//   "totalItems": 340,
//   "noStockItems": 12,
//   "monthlySales": [10, 4, 0, 12, 8, 3, 0, 0, 9, 11, 5, 2],
//   "yearlyRevenue": [{"year": 2022, "revenue": 120000}],
//   "stockByCategory": {"medical": 2150, "optical": 830}
// }
type DashboardMetrics struct {
	Year            int             `json:"year"`
	TotalOrders     int             `json:"totalOrders"`
	TotalRevenue    float64         `json:"totalRevenue"`
	TotalItems      int             `json:"totalItems"`
	NoStockItems    int             `json:"noStockItems"`
	MonthlySales    [12]int         `json:"monthlySales"`
	YearlyRevenue   []YearRevenue   `json:"yearlyRevenue"`
	StockByCategory CategoryStock   `json:"stockByCategory"`
}

// YearRevenue is one bucket of the five-year revenue series
type YearRevenue struct {
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
}

// CategoryStock holds total stock units per business category
type CategoryStock struct {
	Medical int `json:"medical"`
	Optical int `json:"optical"`
}
