package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"surya-admin/models"
	"surya-admin/service"
)

// AuthController handles login requests
type AuthController struct {
	sessions *service.SessionService
}

// NewAuthController creates a new AuthController
func NewAuthController(sessions *service.SessionService) *AuthController {
	return &AuthController{
		sessions: sessions,
	}
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Login: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Login: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	token, session, err := c.sessions.Login(req.Username, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token:   token,
		Session: *session,
	})
}
