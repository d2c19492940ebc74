package app

import (
	"fmt"
	"log"
	"os"

	"surya-admin/app/controller"
	"surya-admin/app/router"
	"surya-admin/db"
	"surya-admin/repository"
	"surya-admin/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Session service needs SESSION_SECRET and at least one user configured
	sessions, err := service.NewSessionServiceFromEnv()
	if err != nil {
		return err
	}

	// Base URL the headless browser uses to reach this server when rendering
	// invoices. Defaults to localhost with the serving port.
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}

	// Initialize repositories
	itemRepo := repository.NewItemRepository()
	orderRepo := repository.NewOrderRepository()
	dashboardRepo := repository.NewDashboardRepository()

	// Invoice service renders the printable views
	invoiceService := service.NewInvoiceService(orderRepo, baseURL)

	// Drive export is optional: without credentials the endpoint reports 503
	var driveService service.DriveServiceInterface
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		ds, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return err
		}
		driveService = ds
		log.Printf("✓ Drive export configured")
	} else {
		log.Printf("⚠️ GOOGLE_APPLICATION_CREDENTIALS not set, Drive export disabled")
	}
	exportFolderID := os.Getenv("DRIVE_INVOICE_FOLDER_ID")

	// Create controllers
	controllers := &router.Controllers{
		Auth:      controller.NewAuthController(sessions),
		Item:      controller.NewItemController(itemRepo),
		Order:     controller.NewOrderController(orderRepo),
		Invoice:   controller.NewInvoiceController(invoiceService, driveService, exportFolderID),
		Dashboard: controller.NewDashboardController(dashboardRepo),
		Sessions:  sessions,
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
