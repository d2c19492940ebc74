package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"surya-admin/models"
)

// SessionTTL is how long an issued token stays valid
const SessionTTL = 12 * time.Hour

type sessionUser struct {
	Password string
	Name     string
	Role     models.Role
}

type tokenPayload struct {
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
	Exp      int64       `json:"exp"`
}

// SessionService issues and verifies signed session tokens. A token is the
// base64url-encoded JSON payload joined with an HMAC-SHA256 signature, so the
// server stays stateless: no session table, verification is a signature check.
type SessionService struct {
	secret []byte
	users  map[string]sessionUser
	now    func() time.Time
}

// NewSessionService creates a session service with an explicit secret and
// user set
func NewSessionService(secret string, users map[string]sessionUser) *SessionService {
	return &SessionService{
		secret: []byte(secret),
		users:  users,
		now:    time.Now,
	}
}

// NewSessionServiceFromEnv builds the user set from environment variables:
// SESSION_SECRET, ADMIN_USER/ADMIN_PASSWORD/ADMIN_NAME and
// STAFF_USER/STAFF_PASSWORD/STAFF_NAME
func NewSessionServiceFromEnv() (*SessionService, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET not configured")
	}

	users := make(map[string]sessionUser)
	if u := os.Getenv("ADMIN_USER"); u != "" {
		users[u] = sessionUser{
			Password: os.Getenv("ADMIN_PASSWORD"),
			Name:     envOr("ADMIN_NAME", "Administrator"),
			Role:     models.RoleAdmin,
		}
	}
	if u := os.Getenv("STAFF_USER"); u != "" {
		users[u] = sessionUser{
			Password: os.Getenv("STAFF_PASSWORD"),
			Name:     envOr("STAFF_NAME", "Staff"),
			Role:     models.RoleStaff,
		}
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("no users configured: set ADMIN_USER/ADMIN_PASSWORD")
	}

	log.Printf("✓ Session service configured with %d user(s)", len(users))
	return NewSessionService(secret, users), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Login checks the credentials and issues a token for the matched user
func (s *SessionService) Login(username, password string) (string, *models.Session, error) {
	user, ok := s.users[username]
	if !ok || subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		log.Printf("⚠️ Login: Invalid credentials for username=%q", username)
		return "", nil, fmt.Errorf("invalid username or password")
	}

	session := &models.Session{
		Username: username,
		Name:     user.Name,
		Role:     user.Role,
	}
	token, err := s.Issue(session)
	if err != nil {
		return "", nil, err
	}

	log.Printf("✅ Login: Issued session for username=%q role=%d", username, user.Role)
	return token, session, nil
}

// Issue signs a token for the given session
func (s *SessionService) Issue(session *models.Session) (string, error) {
	payload := tokenPayload{
		Username: session.Username,
		Name:     session.Name,
		Role:     session.Role,
		Exp:      s.now().Add(SessionTTL).Unix(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode session payload: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(body)
	return encoded + "." + s.sign(encoded), nil
}

// Verify checks a token's signature and expiry and returns the session it
// carries
func (s *SessionService) Verify(token string) (*models.Session, error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok {
		return nil, fmt.Errorf("malformed token")
	}
	expected := s.sign(encoded)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return nil, fmt.Errorf("invalid token signature")
	}

	body, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("malformed token payload")
	}
	var payload tokenPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed token payload")
	}
	if s.now().Unix() > payload.Exp {
		return nil, fmt.Errorf("token expired")
	}

	return &models.Session{
		Username: payload.Username,
		Name:     payload.Name,
		Role:     payload.Role,
	}, nil
}

func (s *SessionService) sign(encoded string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(encoded))
	return hex.EncodeToString(mac.Sum(nil))
}
