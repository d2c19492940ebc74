package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"surya-admin/app/controller"
	"surya-admin/models"
	"surya-admin/service"
)

func testSessions(t *testing.T) (*service.SessionService, string, string) {
	t.Helper()

	t.Setenv("SESSION_SECRET", "router-test-secret")
	t.Setenv("ADMIN_USER", "admin")
	t.Setenv("ADMIN_PASSWORD", "admin123")
	t.Setenv("STAFF_USER", "staff")
	t.Setenv("STAFF_PASSWORD", "staff123")

	sessions, err := service.NewSessionServiceFromEnv()
	if err != nil {
		t.Fatalf("failed to build session service: %v", err)
	}

	adminToken, _, err := sessions.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	staffToken, _, err := sessions.Login("staff", "staff123")
	if err != nil {
		t.Fatalf("staff login failed: %v", err)
	}
	return sessions, adminToken, staffToken
}

func TestRequireSession(t *testing.T) {
	sessions, adminToken, _ := testSessions(t)

	var gotSession *models.Session
	handler := requireSession(sessions, func(w http.ResponseWriter, r *http.Request) {
		gotSession, _ = controller.SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
	}{
		{"no token", "", "", http.StatusUnauthorized},
		{"bad token", "Bearer garbage", "", http.StatusUnauthorized},
		{"bearer token", "Bearer " + adminToken, "", http.StatusOK},
		{"query token", "", "?token=" + adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/items"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}

	if gotSession == nil || gotSession.Username != "admin" {
		t.Errorf("expected admin session on context, got %+v", gotSession)
	}
}

func TestRequireAdmin(t *testing.T) {
	sessions, adminToken, staffToken := testSessions(t)

	handler := requireAdmin(sessions, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected staff to get 403, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected admin to get 200, got %d", rec.Code)
	}
}
