package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"surya-admin/models"
	"surya-admin/repository"
)

type stubOrderRepo struct {
	order *models.Order
}

var _ repository.OrderRepositoryInterface = (*stubOrderRepo)(nil)

func (s *stubOrderRepo) Create(ctx context.Context, req *models.OrderRequest) (*models.Order, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubOrderRepo) Update(ctx context.Context, id int64, req *models.OrderRequest) (*models.Order, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	if s.order == nil || s.order.ID != id {
		return nil, fmt.Errorf("order not found")
	}
	return s.order, nil
}

func (s *stubOrderRepo) List(ctx context.Context, params repository.OrderListParams) (*models.OrderListResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubOrderRepo) Delete(ctx context.Context, id int64) error {
	return fmt.Errorf("not implemented")
}

func testOrder() *models.Order {
	return &models.Order{
		ID:            7,
		OrderNumber:   "ORD-00007",
		CustomerName:  "Ramesh Kumar",
		CustomerPhone: "9876543210",
		Discount:      10,
		Tax:           5,
		Subtotal:      250,
		TotalAmount:   236,
		CreatedAt:     "2025-08-14T10:30:00Z",
		Items: []models.OrderItem{
			{ItemName: "Paracetamol 500mg", Category: models.CategoryMedical, Quantity: 10, UnitPrice: 20, TotalPrice: 200, UnitType: "strip"},
			{ItemName: "Cough Syrup", Category: models.CategoryMedical, Quantity: 1, UnitPrice: 50, TotalPrice: 50, UnitType: "bottle"},
		},
	}
}

func TestBuildInvoiceDerivesAmounts(t *testing.T) {
	svc := NewInvoiceService(&stubOrderRepo{order: testOrder()}, "http://localhost:8080")

	invoice, err := svc.BuildInvoice(context.Background(), 7)
	if err != nil {
		t.Fatalf("BuildInvoice failed: %v", err)
	}

	if invoice.InvoiceNumber != "INV-00007" {
		t.Errorf("expected invoice number INV-00007, got %s", invoice.InvoiceNumber)
	}
	if invoice.OrderNumber != "ORD-00007" {
		t.Errorf("expected order number ORD-00007, got %s", invoice.OrderNumber)
	}
	if invoice.DiscountAmount != 25 {
		t.Errorf("expected discount amount 25, got %v", invoice.DiscountAmount)
	}
	if invoice.TaxAmount != 11.25 {
		t.Errorf("expected tax amount 11.25, got %v", invoice.TaxAmount)
	}
	if invoice.GrandTotal != 236 {
		t.Errorf("expected grand total 236, got %v", invoice.GrandTotal)
	}
	if invoice.Seller.Name != "Surya Medical And Optical" {
		t.Errorf("unexpected seller: %+v", invoice.Seller)
	}
}

func TestBuildInvoiceUnknownOrder(t *testing.T) {
	svc := NewInvoiceService(&stubOrderRepo{order: testOrder()}, "http://localhost:8080")

	if _, err := svc.BuildInvoice(context.Background(), 99); err == nil {
		t.Error("expected error for unknown order")
	}
}

func TestRenderInvoiceHTML(t *testing.T) {
	svc := NewInvoiceService(&stubOrderRepo{order: testOrder()}, "http://localhost:8080")
	svc.templatePath = "../templates/invoice.html"

	invoice, err := svc.BuildInvoice(context.Background(), 7)
	if err != nil {
		t.Fatalf("BuildInvoice failed: %v", err)
	}

	html, err := svc.RenderInvoiceHTML(invoice)
	if err != nil {
		t.Fatalf("RenderInvoiceHTML failed: %v", err)
	}

	for _, want := range []string{
		"INV-00007",
		"Ramesh Kumar",
		"Paracetamol 500mg",
		"Surya Medical",
		"suryaapps@paytm",
		"₹236",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	svc := NewInvoiceService(&stubOrderRepo{order: testOrder()}, "http://localhost:8080")

	invoice, err := svc.BuildInvoice(context.Background(), 7)
	if err != nil {
		t.Fatalf("BuildInvoice failed: %v", err)
	}

	share := svc.WhatsAppLink(invoice)
	if share.Phone != "919876543210" {
		t.Errorf("expected phone 919876543210, got %s", share.Phone)
	}
	if !strings.HasPrefix(share.Link, "https://wa.me/919876543210?text=") {
		t.Errorf("unexpected link prefix: %s", share.Link)
	}
	if strings.ContainsAny(share.Link, " \n") {
		t.Errorf("link must be fully escaped: %s", share.Link)
	}
}

func TestInvoiceTextSummary(t *testing.T) {
	svc := NewInvoiceService(&stubOrderRepo{order: testOrder()}, "http://localhost:8080")

	invoice, err := svc.BuildInvoice(context.Background(), 7)
	if err != nil {
		t.Fatalf("BuildInvoice failed: %v", err)
	}

	text := invoiceText(invoice)
	for _, want := range []string{
		"Invoice INV-00007",
		"Paracetamol 500mg x10",
		"Discount (10%)",
		"Tax (5%)",
		"Total: ₹236",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("invoice text missing %q in:\n%s", want, text)
		}
	}
}
