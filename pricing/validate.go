package pricing

import (
	"regexp"
	"strings"
)

// ValidationError carries a user-facing message for a failed submission
// rule. Validation stops at the first failing rule, so a draft that fails
// never reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	customerNameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	customerPhoneRe = regexp.MustCompile(`^\d{10}$`)
)

// Validate runs the submission rules in fixed order and returns the first
// failure as a *ValidationError. The stock rule checks every line against
// the catalog snapshot and names each over-requested item; lines whose id
// is no longer in the snapshot are skipped rather than failed, since the
// missing-item case is already covered by the required-fields rule when
// the selection was cleared.
func Validate(d *Draft, catalog Catalog) error {
	name := strings.TrimSpace(d.CustomerName)
	if len(name) < 3 {
		return &ValidationError{Message: "Customer name must be at least 3 characters."}
	}
	if !customerNameRe.MatchString(name) {
		return &ValidationError{Message: "Customer name can only contain letters and spaces."}
	}
	if !customerPhoneRe.MatchString(d.CustomerPhone) {
		return &ValidationError{Message: "Customer phone must be exactly 10 digits."}
	}

	for _, line := range d.Lines {
		if line.ItemID == 0 || line.Quantity <= 0 || line.UnitPrice < 0 {
			return &ValidationError{Message: "Please fill all required fields."}
		}
	}

	var outOfStock []string
	for _, line := range d.Lines {
		item, ok := catalog.Lookup(line.ItemID)
		if !ok {
			continue
		}
		if line.Quantity > item.Stock {
			outOfStock = append(outOfStock, item.Name)
		}
	}
	if len(outOfStock) > 0 {
		return &ValidationError{Message: "Insufficient stock for: " + strings.Join(outOfStock, ", ")}
	}

	return nil
}
