package service

import (
	"strings"
	"testing"
	"time"

	"surya-admin/models"
)

func newTestSessionService() *SessionService {
	return NewSessionService("test-secret", map[string]sessionUser{
		"admin": {Password: "admin123", Name: "Dr. Chaturvedi", Role: models.RoleAdmin},
		"staff": {Password: "staff123", Name: "Counter Staff", Role: models.RoleStaff},
	})
}

func TestLoginAndVerifyRoundTrip(t *testing.T) {
	svc := newTestSessionService()

	token, session, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if session.Role != models.RoleAdmin || !session.IsAdmin() {
		t.Errorf("expected admin session, got role %d", session.Role)
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if got.Username != "admin" || got.Name != "Dr. Chaturvedi" || got.Role != models.RoleAdmin {
		t.Errorf("unexpected session from token: %+v", got)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestSessionService()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"unknown user", "ghost", "admin123"},
		{"empty password", "staff", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Login(tt.username, tt.password); err == nil {
				t.Errorf("expected login to fail for %s/%s", tt.username, tt.password)
			}
		})
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := newTestSessionService()

	token, _, err := svc.Login("staff", "staff123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// Forge an admin payload but keep the staff signature.
	adminToken, err := svc.Issue(&models.Session{Username: "staff", Name: "Counter Staff", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	forgedPayload := strings.SplitN(adminToken, ".", 2)[0]
	staffSig := strings.SplitN(token, ".", 2)[1]

	if _, err := svc.Verify(forgedPayload + "." + staffSig); err == nil {
		t.Error("expected tampered token to be rejected")
	}
	if _, err := svc.Verify("not-a-token"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := newTestSessionService()
	svc.now = func() time.Time { return time.Now().Add(-2 * SessionTTL) }

	token, _, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Verify(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	svc := newTestSessionService()
	other := NewSessionService("other-secret", nil)

	token, err := svc.Issue(&models.Session{Username: "admin", Name: "Dr. Chaturvedi", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}
