package dto

import "time"

// DocumentResponse is the API view of an uploaded document
type DocumentResponse struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"applicationId"`
	DocumentType  string    `json:"documentType"`
	DocumentName  string    `json:"documentName"`
	FilePath      string    `json:"filePath"`
	UploadedAt    time.Time `json:"uploadedAt"`
}
