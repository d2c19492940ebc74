package service

import "context"

// DriveServiceInterface defines the contract for Google Drive exports
type DriveServiceInterface interface {
	UploadInvoicePDF(ctx context.Context, folderID, fileName string, pdf []byte) (fileID, link string, err error)
}
