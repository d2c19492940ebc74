package router

import (
	"net/http"
	"strings"

	"surya-admin/app/controller"
	"surya-admin/service"
)

type Controllers struct {
	Auth      *controller.AuthController
	Item      *controller.ItemController
	Order     *controller.OrderController
	Invoice   *controller.InvoiceController
	Dashboard *controller.DashboardController
	Sessions  *service.SessionService
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// requireSession verifies the session token before calling next. The token
// comes from the Authorization header, or from the token query parameter for
// URLs loaded by the headless browser.
func requireSession(sessions *service.SessionService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		session, err := sessions.Verify(token)
		if err != nil {
			http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
			return
		}

		next(w, r.WithContext(controller.WithSession(r.Context(), session, token)))
	}
}

// requireAdmin restricts a handler to admin sessions
func requireAdmin(sessions *service.SessionService, next http.HandlerFunc) http.HandlerFunc {
	return requireSession(sessions, func(w http.ResponseWriter, r *http.Request) {
		session, ok := controller.SessionFromContext(r.Context())
		if !ok || !session.IsAdmin() {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next(w, r)
	})
}

func SetupRoutes(controllers *Controllers) {
	sessions := controllers.Sessions

	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Auth routes
	http.HandleFunc("/api/auth/login", controllers.Auth.Login)

	// Items routes
	http.HandleFunc("/api/items", requireSession(sessions, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Item.List(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Item.Create(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Unit types and catalog snapshot (must be before the generic /:id route)
	http.HandleFunc("/api/items/unit-types", requireSession(sessions, controllers.Item.UnitTypes))
	http.HandleFunc("/api/items/snapshot", requireSession(sessions, controllers.Item.Snapshot))

	// Item by id - handles GET, PUT and DELETE
	http.HandleFunc("/api/items/", requireSession(sessions, controllers.Item.HandleItem))

	// Orders routes
	http.HandleFunc("/api/orders", requireSession(sessions, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Order.Create(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Order.List(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Order actions and order by id
	http.HandleFunc("/api/orders/", requireSession(sessions, func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/orders/")

		// Invoice views live under /api/orders/:id/invoice
		if strings.Contains(path, "/invoice") {
			controllers.Invoice.Handle(w, r)
			return
		}

		// Otherwise treat as GET/PUT/DELETE /api/orders/:id
		controllers.Order.HandleOrder(w, r)
	}))

	// Dashboard route (admin only)
	http.HandleFunc("/api/dashboard", requireAdmin(sessions, controllers.Dashboard.Metrics))
}
