package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(credentialsPath string) (*DriveService, error) {
	ctx := context.Background()

	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// UploadInvoicePDF uploads an invoice PDF into the given Drive folder and
// returns the new file's id and web link
func (ds *DriveService) UploadInvoicePDF(ctx context.Context, folderID, fileName string, pdf []byte) (string, string, error) {
	log.Printf("📥 UploadInvoicePDF: Uploading %s (%d bytes) to folder %s", fileName, len(pdf), folderID)

	meta := &drive.File{
		Name:     fileName,
		MimeType: "application/pdf",
	}
	if folderID != "" {
		meta.Parents = []string{folderID}
	}

	file, err := ds.client.Files.Create(meta).
		Media(bytes.NewReader(pdf)).
		Fields("id, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", fmt.Errorf("failed to upload invoice PDF: %w", err)
	}

	log.Printf("✓ UploadInvoicePDF: Uploaded %s as file id %s", fileName, file.Id)
	return file.Id, file.WebViewLink, nil
}
