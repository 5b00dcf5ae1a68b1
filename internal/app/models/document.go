package models

import "time"

// DocumentType tags what an uploaded artifact is
type DocumentType string

const (
	DocumentTypeProfilePicture DocumentType = "profile_picture"
	DocumentTypeSupporting     DocumentType = "supporting_document"
)

// Document represents an uploaded file attached to an application
type Document struct {
	ID            int64        `json:"id"`
	ApplicationID int64        `json:"applicationId"`
	UserID        int64        `json:"userId"`
	DocumentType  DocumentType `json:"documentType"`
	DocumentName  string       `json:"documentName"`
	FilePath      string       `json:"filePath"`
	UploadedAt    time.Time    `json:"uploadedAt"`
}
