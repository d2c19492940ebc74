package models

import "testing"

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryMedical, "Surya Medical"},
		{CategoryOptical, "Surya Optical"},
		{Category(0), ""},
		{Category(9), ""},
	}

	for _, tt := range tests {
		if got := tt.category.Label(); got != tt.want {
			t.Errorf("Category(%d).Label() = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestCategoryUnitTypes(t *testing.T) {
	medical := CategoryMedical.UnitTypes()
	if len(medical) == 0 {
		t.Fatal("expected unit types for medical category")
	}
	if medical[0] != "tablet" {
		t.Errorf("expected tablet first for medical, got %s", medical[0])
	}

	optical := CategoryOptical.UnitTypes()
	found := false
	for _, u := range optical {
		if u == "pair" {
			found = true
		}
	}
	if !found {
		t.Error("expected pair in optical unit types")
	}

	if got := Category(0).UnitTypes(); got != nil {
		t.Errorf("expected nil unit types for invalid category, got %v", got)
	}

	// Returned slices are copies; mutating one must not leak.
	medical[0] = "mutated"
	if CategoryMedical.UnitTypes()[0] != "tablet" {
		t.Error("UnitTypes must return a copy")
	}
}

func TestCategoryIsValid(t *testing.T) {
	if !CategoryMedical.IsValid() || !CategoryOptical.IsValid() {
		t.Error("expected both known categories to be valid")
	}
	if Category(0).IsValid() || Category(3).IsValid() {
		t.Error("expected out-of-range categories to be invalid")
	}
}
