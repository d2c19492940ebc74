package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"strings"
	"time"

	"surya-admin/models"
	"surya-admin/repository"
	"surya-admin/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// defaultSeller is the business identity printed on every invoice
var defaultSeller = models.Seller{
	Name:    "Surya Medical And Optical",
	Contact: "Dr. Chaturvedi",
	Phone:   "9234679597",
	Website: "suryamedical.com",
	UPIID:   "suryaapps@paytm",
	Account: "1234567890",
	Branch:  "HDFC Bank",
	IFSC:    "HDFC0001678",
}

// InvoiceService derives printable invoices from stored orders and renders
// them as HTML, PDF and a shareable JPEG
type InvoiceService struct {
	orders       repository.OrderRepositoryInterface
	baseURL      string // Base URL the headless browser navigates to (e.g. "http://localhost:8080")
	templatePath string
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(orders repository.OrderRepositoryInterface, baseURL string) *InvoiceService {
	return &InvoiceService{
		orders:       orders,
		baseURL:      baseURL,
		templatePath: "templates/invoice.html",
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// InvoiceNumber formats the printable invoice number for an order id
func InvoiceNumber(orderID int64) string {
	return fmt.Sprintf("INV-%05d", orderID)
}

// BuildInvoice derives the invoice view of an order. All money fields come
// from the stored order; the percentage amounts are recomputed so the
// breakdown always matches the stored totals.
func (s *InvoiceService) BuildInvoice(ctx context.Context, orderID int64) (*models.Invoice, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	discountAmount := order.Subtotal * order.Discount / 100
	taxAmount := (order.Subtotal - discountAmount) * order.Tax / 100

	return &models.Invoice{
		InvoiceNumber:  InvoiceNumber(order.ID),
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		Date:           order.CreatedAt,
		CustomerName:   order.CustomerName,
		CustomerPhone:  order.CustomerPhone,
		Items:          order.Items,
		Subtotal:       order.Subtotal,
		Discount:       order.Discount,
		DiscountAmount: discountAmount,
		Tax:            order.Tax,
		TaxAmount:      taxAmount,
		GrandTotal:     order.TotalAmount,
		Seller:         defaultSeller,
	}, nil
}

// RenderInvoiceHTML renders the invoice HTML template
func (s *InvoiceService) RenderInvoiceHTML(invoice *models.Invoice) (string, error) {
	tmpl, err := template.New("invoice.html").Funcs(template.FuncMap{
		"inr": utils.FormatINR,
	}).ParseFiles(s.templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, invoice); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// newChromeContext builds a chromedp context against the detected browser.
// The returned cancel releases both the allocator and the browser context.
func newChromeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	return chromedpCtx, func() {
		chromedpCancel()
		allocCancel()
	}
}

// renderURL builds the invoice render URL the headless browser loads. The
// session token travels as a query parameter because Chrome cannot send an
// Authorization header here.
func (s *InvoiceService) renderURL(orderID int64, token string) string {
	return fmt.Sprintf("%s/api/orders/%d/invoice/render?token=%s", s.baseURL, orderID, url.QueryEscape(token))
}

// GeneratePDF renders the invoice page in headless Chrome and prints it to
// an A4 PDF
func (s *InvoiceService) GeneratePDF(ctx context.Context, orderID int64, token string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromedpCtx, chromedpCancel := newChromeContext(ctx)
	defer chromedpCancel()

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(s.renderURL(orderID, token)),
		chromedp.WaitReady("body"),
		chromedp.Sleep(time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// 210mm x 297mm in inches; margins come from the CSS
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// GenerateShareImage screenshots the rendered invoice and optimizes it into
// a JPEG sized for messaging apps
func (s *InvoiceService) GenerateShareImage(ctx context.Context, orderID int64, token string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromedpCtx, chromedpCancel := newChromeContext(ctx)
	defer chromedpCancel()

	var pngBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(s.renderURL(orderID, token)),
		chromedp.WaitReady("body"),
		chromedp.Sleep(time.Second),
		chromedp.FullScreenshot(&pngBuf, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	return OptimizeShareImage(pngBuf)
}

// WhatsAppLink builds the wa.me link that opens a chat with the customer
// with the invoice summary prefilled
func (s *InvoiceService) WhatsAppLink(invoice *models.Invoice) *models.WhatsAppShareResponse {
	phone := "91" + invoice.CustomerPhone
	return &models.WhatsAppShareResponse{
		Phone: phone,
		Link:  fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(invoiceText(invoice))),
	}
}

// invoiceText builds the plain-text invoice summary shared over WhatsApp
func invoiceText(invoice *models.Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", invoice.Seller.Name)
	fmt.Fprintf(&b, "Invoice %s\n", invoice.InvoiceNumber)
	fmt.Fprintf(&b, "Customer: %s\n\n", invoice.CustomerName)
	for i, item := range invoice.Items {
		fmt.Fprintf(&b, "%d. %s x%d @ %s = %s\n",
			i+1, item.ItemName, item.Quantity,
			utils.FormatINR(item.UnitPrice), utils.FormatINR(item.TotalPrice))
	}
	if invoice.Discount > 0 {
		fmt.Fprintf(&b, "\nDiscount (%v%%): -%s", invoice.Discount, utils.FormatINR(invoice.DiscountAmount))
	}
	if invoice.Tax > 0 {
		fmt.Fprintf(&b, "\nTax (%v%%): %s", invoice.Tax, utils.FormatINR(invoice.TaxAmount))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n\nThank you for choosing our medical services.", utils.FormatINR(invoice.GrandTotal))
	return b.String()
}
