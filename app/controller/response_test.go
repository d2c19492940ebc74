package controller

import "testing"

func TestParseIDPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{"plain id", "/api/orders/42", "/api/orders/", 42, false},
		{"id with action", "/api/orders/7/invoice", "/api/orders/", 7, false},
		{"id with nested action", "/api/orders/7/invoice/pdf", "/api/orders/", 7, false},
		{"missing id", "/api/orders/", "/api/orders/", 0, true},
		{"non-numeric id", "/api/orders/abc", "/api/orders/", 0, true},
		{"zero id", "/api/orders/0", "/api/orders/", 0, true},
		{"negative id", "/api/orders/-3", "/api/orders/", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDPath(tt.path, tt.prefix)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for path %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseIDPath(%s) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}
