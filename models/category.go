package models

// Category identifies which side of the business an item belongs to
type Category int

const (
	CategoryMedical Category = 1
	CategoryOptical Category = 2
)

// IsValid reports whether the category is one of the known values
func (c Category) IsValid() bool {
	return c == CategoryMedical || c == CategoryOptical
}

// Label returns the display name used on invoices and item lists
func (c Category) Label() string {
	switch c {
	case CategoryMedical:
		return "Surya Medical"
	case CategoryOptical:
		return "Surya Optical"
	default:
		return ""
	}
}

// unit vocabularies per category; served via GET /api/items/unit-types
var (
	medicalUnitTypes = []string{"tablet", "bottle", "strip", "box", "syrup", "piece"}
	opticalUnitTypes = []string{"piece", "pair", "frame", "lens", "box"}
)

// UnitTypes returns the unit vocabulary for the category.
// Unknown categories get an empty list rather than an error.
func (c Category) UnitTypes() []string {
	switch c {
	case CategoryMedical:
		return append([]string(nil), medicalUnitTypes...)
	case CategoryOptical:
		return append([]string(nil), opticalUnitTypes...)
	default:
		return nil
	}
}
