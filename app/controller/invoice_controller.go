package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"surya-admin/models"
	"surya-admin/service"
)

// InvoiceController handles the invoice views of an order: JSON, printable
// HTML, PDF, share image, WhatsApp link and Drive export
type InvoiceController struct {
	invoices       *service.InvoiceService
	drive          service.DriveServiceInterface // nil when Drive export is not configured
	exportFolderID string
}

// NewInvoiceController creates a new InvoiceController
func NewInvoiceController(invoices *service.InvoiceService, drive service.DriveServiceInterface, exportFolderID string) *InvoiceController {
	return &InvoiceController{
		invoices:       invoices,
		drive:          drive,
		exportFolderID: exportFolderID,
	}
}

// Handle dispatches /api/orders/{id}/invoice and its sub-resources
func (c *InvoiceController) Handle(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Invoice: Received %s request to %s", r.Method, r.URL.Path)

	orderID, err := parseIDPath(r.URL.Path, "/api/orders/")
	if err != nil {
		log.Printf("❌ Invoice: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch {
	case strings.HasSuffix(r.URL.Path, "/invoice/render"):
		c.render(w, r, orderID)
	case strings.HasSuffix(r.URL.Path, "/invoice/pdf"):
		c.pdf(w, r, orderID)
	case strings.HasSuffix(r.URL.Path, "/invoice/image"):
		c.image(w, r, orderID)
	case strings.HasSuffix(r.URL.Path, "/invoice/whatsapp"):
		c.whatsapp(w, r, orderID)
	case strings.HasSuffix(r.URL.Path, "/invoice/export"):
		c.export(w, r, orderID)
	case strings.HasSuffix(r.URL.Path, "/invoice"):
		c.get(w, r, orderID)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (c *InvoiceController) buildInvoice(w http.ResponseWriter, op string, orderID int64) (*models.Invoice, bool) {
	ctx := context.Background()
	invoice, err := c.invoices.BuildInvoice(ctx, orderID)
	if err != nil {
		log.Printf("❌ %s: %v", op, err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return nil, false
		}
		http.Error(w, fmt.Sprintf("Failed to build invoice: %v", err), http.StatusInternalServerError)
		return nil, false
	}
	return invoice, true
}

// get handles GET /api/orders/{id}/invoice
func (c *InvoiceController) get(w http.ResponseWriter, r *http.Request, orderID int64) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	invoice, ok := c.buildInvoice(w, "GetInvoice", orderID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, models.InvoiceResponse{Invoice: *invoice})
}

// render handles GET /api/orders/{id}/invoice/render
// Serves the printable HTML page the PDF and share image are generated from
func (c *InvoiceController) render(w http.ResponseWriter, r *http.Request, orderID int64) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	invoice, ok := c.buildInvoice(w, "RenderInvoice", orderID)
	if !ok {
		return
	}

	html, err := c.invoices.RenderInvoiceHTML(invoice)
	if err != nil {
		log.Printf("❌ RenderInvoice: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render invoice: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// pdf handles GET /api/orders/{id}/invoice/pdf
func (c *InvoiceController) pdf(w http.ResponseWriter, r *http.Request, orderID int64) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	pdfData, err := c.invoices.GeneratePDF(ctx, orderID, TokenFromContext(r.Context()))
	if err != nil {
		log.Printf("❌ InvoicePDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, service.InvoiceNumber(orderID)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfData)
}

// image handles GET /api/orders/{id}/invoice/image
func (c *InvoiceController) image(w http.ResponseWriter, r *http.Request, orderID int64) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	jpegData, err := c.invoices.GenerateShareImage(ctx, orderID, TokenFromContext(r.Context()))
	if err != nil {
		log.Printf("❌ InvoiceImage: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(jpegData)
}

// whatsapp handles GET /api/orders/{id}/invoice/whatsapp
func (c *InvoiceController) whatsapp(w http.ResponseWriter, r *http.Request, orderID int64) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	invoice, ok := c.buildInvoice(w, "InvoiceWhatsApp", orderID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c.invoices.WhatsAppLink(invoice))
}

// export handles POST /api/orders/{id}/invoice/export
// Uploads the generated PDF to the configured Google Drive folder
func (c *InvoiceController) export(w http.ResponseWriter, r *http.Request, orderID int64) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.drive == nil {
		log.Printf("⚠️ InvoiceExport: Drive export requested but not configured")
		http.Error(w, "Drive export is not configured", http.StatusServiceUnavailable)
		return
	}

	ctx := context.Background()
	pdfData, err := c.invoices.GeneratePDF(ctx, orderID, TokenFromContext(r.Context()))
	if err != nil {
		log.Printf("❌ InvoiceExport: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	fileName := service.InvoiceNumber(orderID) + ".pdf"
	fileID, link, err := c.drive.UploadInvoicePDF(ctx, c.exportFolderID, fileName, pdfData)
	if err != nil {
		log.Printf("❌ InvoiceExport: %v", err)
		http.Error(w, fmt.Sprintf("Failed to export invoice: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ InvoiceExport: Exported %s as %s", fileName, fileID)
	writeJSON(w, http.StatusOK, models.InvoiceExportResponse{
		FileID:   fileID,
		FileName: fileName,
		Link:     link,
	})
}
