package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations. Files are
// always written under generated unique names, so storing never overwrites.
type FileStorage interface {
	// SaveFile saves an uploaded file and returns the stored reference
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath saves an uploaded file under a subdirectory or key prefix
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage. Deleting a file that is
	// already absent is not an error.
	DeleteFile(filePath string) error
}
