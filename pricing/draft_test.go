package pricing

import (
	"strings"
	"testing"

	"surya-admin/models"
)

func testCatalog() Catalog {
	return NewCatalog([]models.Item{
		{ID: 1, Name: "Paracetamol 500mg", Price: 20, Category: models.CategoryMedical, Stock: 100, UnitType: "strip"},
		{ID: 2, Name: "Reading Glasses", Price: 450, Category: models.CategoryOptical, Stock: 3, UnitType: "pair"},
		{ID: 3, Name: "Cough Syrup", Price: 85, Category: models.CategoryMedical, Stock: 0, UnitType: "bottle"},
	})
}

func validDraft() *Draft {
	return &Draft{
		CustomerName:  "Ravi Kumar",
		CustomerPhone: "9876543210",
		Lines: []Line{
			{ItemID: 1, ItemName: "Paracetamol 500mg", Quantity: 2, UnitPrice: 20, TotalPrice: 40},
		},
	}
}

func TestComputeTotalsExample(t *testing.T) {
	d := &Draft{
		Discount: 10,
		Tax:      5,
		Lines: []Line{
			{Quantity: 2, UnitPrice: 100, TotalPrice: 200},
			{Quantity: 1, UnitPrice: 50, TotalPrice: 50},
		},
	}

	got := ComputeTotals(d)
	if got.Subtotal != 250 {
		t.Errorf("Subtotal = %v, want 250", got.Subtotal)
	}
	if got.DiscountAmount != 25 {
		t.Errorf("DiscountAmount = %v, want 25", got.DiscountAmount)
	}
	if got.AfterDiscount != 225 {
		t.Errorf("AfterDiscount = %v, want 225", got.AfterDiscount)
	}
	if got.TaxAmount != 11.25 {
		t.Errorf("TaxAmount = %v, want 11.25", got.TaxAmount)
	}
	if got.GrandTotal != 236 {
		t.Errorf("GrandTotal = %v, want 236", got.GrandTotal)
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	d := NewDraft()
	catalog := testCatalog()

	if err := d.SetLine(0, FieldItemID, int64(1), catalog); err != nil {
		t.Fatalf("SetLine itemId: %v", err)
	}
	if err := d.SetLine(0, FieldQuantity, 3, catalog); err != nil {
		t.Fatalf("SetLine quantity: %v", err)
	}
	d.AddLine()
	if err := d.SetLine(1, FieldItemID, int64(2), catalog); err != nil {
		t.Fatalf("SetLine itemId: %v", err)
	}
	d.Discount = 7
	d.Tax = 12

	first := ComputeTotals(d)
	second := ComputeTotals(d)
	if first != second {
		t.Errorf("recomputation changed totals: %+v vs %+v", first, second)
	}
}

func TestComputeTotalsFloorsAtZero(t *testing.T) {
	d := &Draft{
		Discount: 200,
		Lines:    []Line{{Quantity: 1, UnitPrice: 100, TotalPrice: 100}},
	}
	got := ComputeTotals(d)
	if got.GrandTotal != 0 {
		t.Errorf("GrandTotal = %v, want 0 with discount over 100%%", got.GrandTotal)
	}
}

func TestSetLineSelectionRefreshesAllFields(t *testing.T) {
	catalog := testCatalog()
	d := NewDraft()

	// Manual price override, then a selection: the override must be discarded
	// in favour of the selected item's price.
	if err := d.SetLine(0, FieldUnitPrice, 999.0, catalog); err != nil {
		t.Fatalf("SetLine unitPrice: %v", err)
	}
	if err := d.SetLine(0, FieldItemID, int64(2), catalog); err != nil {
		t.Fatalf("SetLine itemId: %v", err)
	}

	line := d.Lines[0]
	if line.UnitPrice != 450 {
		t.Errorf("UnitPrice = %v, want 450 (selection resets manual override)", line.UnitPrice)
	}
	if line.ItemName != "Reading Glasses" {
		t.Errorf("ItemName = %q, want %q", line.ItemName, "Reading Glasses")
	}
	if line.Category != models.CategoryOptical {
		t.Errorf("Category = %v, want %v", line.Category, models.CategoryOptical)
	}
	if line.UnitType != "pair" {
		t.Errorf("UnitType = %q, want %q", line.UnitType, "pair")
	}
	if line.TotalPrice != 450 {
		t.Errorf("TotalPrice = %v, want 450", line.TotalPrice)
	}
}

func TestSetLineQuantityPreservesManualPrice(t *testing.T) {
	catalog := testCatalog()
	d := NewDraft()

	if err := d.SetLine(0, FieldItemID, int64(1), catalog); err != nil {
		t.Fatalf("SetLine itemId: %v", err)
	}
	if err := d.SetLine(0, FieldUnitPrice, 15.0, catalog); err != nil {
		t.Fatalf("SetLine unitPrice: %v", err)
	}
	if err := d.SetLine(0, FieldQuantity, 4, catalog); err != nil {
		t.Fatalf("SetLine quantity: %v", err)
	}

	line := d.Lines[0]
	if line.UnitPrice != 15 {
		t.Errorf("UnitPrice = %v, want manual override 15 to survive quantity edit", line.UnitPrice)
	}
	if line.TotalPrice != 60 {
		t.Errorf("TotalPrice = %v, want 60", line.TotalPrice)
	}
}

func TestSetLineStaleIDClearsSelection(t *testing.T) {
	catalog := testCatalog()
	d := NewDraft()

	if err := d.SetLine(0, FieldItemID, int64(1), catalog); err != nil {
		t.Fatalf("SetLine itemId: %v", err)
	}
	if err := d.SetLine(0, FieldItemID, int64(99), catalog); err != nil {
		t.Fatalf("SetLine stale itemId: %v", err)
	}

	line := d.Lines[0]
	if line.ItemID != 0 {
		t.Errorf("ItemID = %d, want 0 after selecting unknown id", line.ItemID)
	}
	// Other fields keep their previous values.
	if line.ItemName != "Paracetamol 500mg" {
		t.Errorf("ItemName = %q, want previous value preserved", line.ItemName)
	}
	if line.UnitPrice != 20 {
		t.Errorf("UnitPrice = %v, want previous value preserved", line.UnitPrice)
	}
}

func TestSetLineCoercesBadInputToZero(t *testing.T) {
	catalog := testCatalog()
	d := NewDraft()

	if err := d.SetLine(0, FieldUnitPrice, "abc", catalog); err != nil {
		t.Fatalf("SetLine unitPrice: %v", err)
	}
	if d.Lines[0].UnitPrice != 0 {
		t.Errorf("UnitPrice = %v, want 0 for non-numeric input", d.Lines[0].UnitPrice)
	}
	if err := d.SetLine(0, FieldQuantity, nil, catalog); err != nil {
		t.Fatalf("SetLine quantity: %v", err)
	}
	if d.Lines[0].Quantity != 0 {
		t.Errorf("Quantity = %v, want 0 for missing input", d.Lines[0].Quantity)
	}
	if d.Lines[0].TotalPrice != 0 {
		t.Errorf("TotalPrice = %v, want 0", d.Lines[0].TotalPrice)
	}
}

func TestSetLineIndexOutOfRange(t *testing.T) {
	d := NewDraft()
	if err := d.SetLine(5, FieldQuantity, 1, Catalog{}); err == nil {
		t.Fatal("expected error for out-of-range line index")
	}
}

func TestRemoveLineKeepsMinimumOne(t *testing.T) {
	d := NewDraft()
	d.RemoveLine(0)
	if len(d.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1 (last line cannot be removed)", len(d.Lines))
	}

	d.AddLine()
	d.RemoveLine(0)
	if len(d.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1 after removing one of two lines", len(d.Lines))
	}
}

func TestAddLineDefaults(t *testing.T) {
	d := NewDraft()
	d.AddLine()
	line := d.Lines[1]
	if line.ItemID != 0 || line.Quantity != 1 || line.UnitPrice != 0 || line.TotalPrice != 0 {
		t.Errorf("new line = %+v, want empty selection with qty 1 and zero prices", line)
	}
}

func TestValidateOrder(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name    string
		mutate  func(*Draft)
		wantMsg string
	}{
		{
			name:    "name too short wins over bad phone",
			mutate:  func(d *Draft) { d.CustomerName = ""; d.CustomerPhone = "123" },
			wantMsg: "Customer name must be at least 3 characters.",
		},
		{
			name:    "name with digits",
			mutate:  func(d *Draft) { d.CustomerName = "Ravi 2" },
			wantMsg: "Customer name can only contain letters and spaces.",
		},
		{
			name:    "phone too short",
			mutate:  func(d *Draft) { d.CustomerPhone = "12345" },
			wantMsg: "Customer phone must be exactly 10 digits.",
		},
		{
			name:    "phone with letters",
			mutate:  func(d *Draft) { d.CustomerPhone = "987654321x" },
			wantMsg: "Customer phone must be exactly 10 digits.",
		},
		{
			name:    "line without selection",
			mutate:  func(d *Draft) { d.Lines[0].ItemID = 0 },
			wantMsg: "Please fill all required fields.",
		},
		{
			name:    "line with zero quantity",
			mutate:  func(d *Draft) { d.Lines[0].Quantity = 0 },
			wantMsg: "Please fill all required fields.",
		},
		{
			name:    "line with negative price",
			mutate:  func(d *Draft) { d.Lines[0].UnitPrice = -1 },
			wantMsg: "Please fill all required fields.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)
			err := Validate(d, catalog)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidatePhoneLeadingZero(t *testing.T) {
	d := validDraft()
	d.CustomerPhone = "0123456789"
	if err := Validate(d, testCatalog()); err != nil {
		t.Errorf("10 digits with leading zero should pass, got %v", err)
	}
}

func TestValidateInsufficientStock(t *testing.T) {
	catalog := testCatalog()

	d := validDraft()
	d.Lines = []Line{{ItemID: 2, Quantity: 5, UnitPrice: 450, TotalPrice: 2250}}
	err := Validate(d, catalog)
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	if !strings.Contains(err.Error(), "Insufficient stock for:") || !strings.Contains(err.Error(), "Reading Glasses") {
		t.Errorf("message = %q, want insufficient stock naming Reading Glasses", err.Error())
	}

	d.Lines[0].Quantity = 3
	if err := Validate(d, catalog); err != nil {
		t.Errorf("quantity equal to stock should pass, got %v", err)
	}
}

func TestValidateInsufficientStockNamesAllItems(t *testing.T) {
	catalog := testCatalog()
	d := validDraft()
	d.Lines = []Line{
		{ItemID: 2, Quantity: 5, UnitPrice: 450, TotalPrice: 2250},
		{ItemID: 3, Quantity: 1, UnitPrice: 85, TotalPrice: 85},
	}
	err := Validate(d, catalog)
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Reading Glasses") || !strings.Contains(msg, "Cough Syrup") {
		t.Errorf("message = %q, want both over-stock items named", msg)
	}
}

func TestValidatePasses(t *testing.T) {
	if err := Validate(validDraft(), testCatalog()); err != nil {
		t.Errorf("valid draft failed: %v", err)
	}
}

func TestDraftFromRequestRecomputesLineTotals(t *testing.T) {
	req := &models.OrderRequest{
		CustomerName:  "Ravi Kumar",
		CustomerPhone: "9876543210",
		Subtotal:      9999, // advisory values must be ignored
		TotalAmount:   9999,
		Items: []models.OrderLineInput{
			{ItemID: 1, Quantity: 2, UnitPrice: 100, TotalPrice: 5},
		},
	}
	d := DraftFromRequest(req)
	if d.Lines[0].TotalPrice != 200 {
		t.Errorf("TotalPrice = %v, want 200 recomputed from qty and price", d.Lines[0].TotalPrice)
	}
	if got := ComputeTotals(d); got.Subtotal != 200 {
		t.Errorf("Subtotal = %v, want 200", got.Subtotal)
	}
}

func TestDraftFromOrderBlankFallback(t *testing.T) {
	d := DraftFromOrder(models.Order{CustomerName: "Ravi Kumar"})
	if len(d.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want one blank line for an order without items", len(d.Lines))
	}
}
