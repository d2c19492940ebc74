package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"surya-admin/models"
)

// Field names accepted by SetLine
const (
	FieldItemID    = "itemId"
	FieldQuantity  = "quantity"
	FieldUnitPrice = "unitPrice"
	FieldUnitType  = "unitType"
)

// Line is one row of an order draft. ItemName, Category and UnitType are
// copies taken from the catalog when the item is selected; TotalPrice is
// derived and never set independently.
type Line struct {
	ItemID     int64
	ItemName   string
	Category   models.Category
	UnitType   string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// Draft is a mutable order form: customer fields, discount/tax percentages
// and an ordered list of lines. It lives only while the form is being edited;
// on submit it is converted into an order request and discarded.
type Draft struct {
	CustomerName  string
	CustomerPhone string
	Discount      float64
	Tax           float64
	Lines         []Line
}

// Totals is the fully derived money view of a draft, recomputed from the
// current lines and percentages on every relevant change.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	AfterDiscount  float64
	TaxAmount      float64
	GrandTotal     float64
}

// NewDraft creates an empty draft with a single blank line
func NewDraft() *Draft {
	return &Draft{
		Lines: []Line{blankLine()},
	}
}

// DraftFromOrder hydrates a draft from a stored order for editing
func DraftFromOrder(order models.Order) *Draft {
	d := &Draft{
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Discount:      order.Discount,
		Tax:           order.Tax,
	}
	for _, it := range order.Items {
		d.Lines = append(d.Lines, Line{
			ItemID:     it.ItemID,
			ItemName:   it.ItemName,
			Category:   it.Category,
			UnitType:   it.UnitType,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: float64(it.Quantity) * it.UnitPrice,
		})
	}
	if len(d.Lines) == 0 {
		d.Lines = []Line{blankLine()}
	}
	return d
}

// DraftFromRequest builds a draft from an order create/update payload,
// recomputing every line total from quantity and unit price. The subtotal
// and grand total on the request are ignored.
func DraftFromRequest(req *models.OrderRequest) *Draft {
	d := &Draft{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Discount:      req.Discount,
		Tax:           req.Tax,
	}
	for _, it := range req.Items {
		d.Lines = append(d.Lines, Line{
			ItemID:     it.ItemID,
			ItemName:   it.ItemName,
			Category:   it.Category,
			UnitType:   it.UnitType,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: float64(it.Quantity) * it.UnitPrice,
		})
	}
	return d
}

func blankLine() Line {
	return Line{Quantity: 1, UnitPrice: 0, TotalPrice: 0}
}

// SetLine mutates one field of an existing line and recomputes that line's
// total. Selecting an item id refreshes every denormalized field from the
// catalog snapshot, including a manually edited unit price; that reset is
// intentional. An id missing from the snapshot clears the selection and
// leaves the other fields alone. Quantity and price edits never touch the
// selection, so a manual price override survives later quantity changes.
func (d *Draft) SetLine(idx int, field string, value interface{}, catalog Catalog) error {
	if idx < 0 || idx >= len(d.Lines) {
		return fmt.Errorf("line index %d out of range", idx)
	}

	line := d.Lines[idx]

	switch field {
	case FieldItemID:
		id := toInt64(value)
		line.ItemID = id
		if item, ok := catalog.Lookup(id); ok {
			line.ItemName = item.Name
			line.UnitPrice = item.Price
			line.Category = item.Category
			line.UnitType = item.UnitType
		} else {
			line.ItemID = 0
		}
	case FieldQuantity:
		line.Quantity = toInt(value)
	case FieldUnitPrice:
		line.UnitPrice = toFloat(value)
	case FieldUnitType:
		s, _ := value.(string)
		line.UnitType = s
	default:
		return fmt.Errorf("unknown line field %q", field)
	}

	line.TotalPrice = float64(line.Quantity) * line.UnitPrice
	d.Lines[idx] = line
	return nil
}

// AddLine appends a blank line. There is no upper bound on line count.
func (d *Draft) AddLine() {
	d.Lines = append(d.Lines, blankLine())
}

// RemoveLine removes the line at idx. A draft always keeps at least one
// line: removing the last remaining line is a no-op, not an error.
func (d *Draft) RemoveLine(idx int) {
	if len(d.Lines) <= 1 {
		return
	}
	if idx < 0 || idx >= len(d.Lines) {
		return
	}
	d.Lines = append(d.Lines[:idx], d.Lines[idx+1:]...)
}

// ComputeTotals derives the order totals from the draft's current state.
// It is a pure function of lines, discount and tax: recomputing without
// further edits always yields the same result. The grand total is rounded
// to the nearest whole rupee and floored at zero.
func ComputeTotals(d *Draft) Totals {
	var t Totals
	for _, line := range d.Lines {
		t.Subtotal += line.TotalPrice
	}
	t.DiscountAmount = t.Subtotal * d.Discount / 100
	t.AfterDiscount = t.Subtotal - t.DiscountAmount
	t.TaxAmount = t.AfterDiscount * d.Tax / 100
	t.GrandTotal = math.Round(math.Max(0, t.AfterDiscount+t.TaxAmount))
	return t
}

// toFloat coerces a loosely typed form value to a float64, treating
// anything non-numeric as 0
func toFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// toInt coerces a loosely typed form value to an int, truncating fractions
// and treating anything non-numeric as 0
func toInt(value interface{}) int {
	return int(toFloat(value))
}

func toInt64(value interface{}) int64 {
	return int64(toFloat(value))
}
