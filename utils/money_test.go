package utils

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{5, "₹5"},
		{236, "₹236"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{85450, "₹85,450"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{450.5, "₹450.50"},
		{1234.05, "₹1,234.05"},
		{-1500, "-₹1,500"},
	}

	for _, tt := range tests {
		if got := FormatINR(tt.amount); got != tt.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
