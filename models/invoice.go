package models

// Seller is the fixed business identity printed on every invoice
type Seller struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	UPIID   string `json:"upiId"`
	Account string `json:"account"`
	Branch  string `json:"branch"`
	IFSC    string `json:"ifsc"`
}

// Invoice is the fully derived invoice view of an order.
// All money fields are recomputed from the stored order, never edited directly.
type Invoice struct {
	InvoiceNumber  string      `json:"invoiceNumber"`
	OrderID        int64       `json:"orderId"`
	OrderNumber    string      `json:"orderNumber"`
	Date           string      `json:"date"`
	CustomerName   string      `json:"customerName"`
	CustomerPhone  string      `json:"customerPhone"`
	Items          []OrderItem `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	Discount       float64     `json:"discount"`
	DiscountAmount float64     `json:"discountAmount"`
	Tax            float64     `json:"tax"`
	TaxAmount      float64     `json:"taxAmount"`
	GrandTotal     float64     `json:"grandTotal"`
	Seller         Seller      `json:"seller"`
}

// InvoiceResponse wraps an invoice for GET /api/orders/{id}/invoice
type InvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

// WhatsAppShareResponse carries the prebuilt share link for an invoice
// Example: {"phone": "919876543210", "link": "https://wa.me/919876543210?text=..."}
type WhatsAppShareResponse struct {
	Phone string `json:"phone"`
	Link  string `json:"link"`
}

// InvoiceExportResponse reports the result of a Drive export
type InvoiceExportResponse struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	Link     string `json:"link,omitempty"`
}
