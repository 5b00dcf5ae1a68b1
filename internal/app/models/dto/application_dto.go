package dto

import "time"

// SubmitApplicationRequest is the application-intake payload. Uploads, when
// present, arrive as multipart files alongside these fields.
type SubmitApplicationRequest struct {
	SchemeID    int64  `json:"schemeId" form:"schemeId"`
	DateOfBirth string `json:"dateOfBirth" form:"dateOfBirth"`
	Gender      string `json:"gender" form:"gender"`
	Category    string `json:"category" form:"category"`
	Major       string `json:"major" form:"major"`
	Address     string `json:"address" form:"address"`
	StudentID   string `json:"studentId" form:"studentId"`
}

// SubmitApplicationResponse confirms a created application
type SubmitApplicationResponse struct {
	ApplicationID     int64  `json:"applicationId"`
	ApplicationNumber string `json:"applicationNumber"`
	Status            string `json:"status"`
}

// ApplicationStatusResponse is the compact status view
type ApplicationStatusResponse struct {
	ID                int64      `json:"id"`
	ApplicationNumber string     `json:"applicationNumber"`
	Status            string     `json:"status"`
	Remark            string     `json:"remark"`
	DisbursedAmount   *float64   `json:"disbursedAmount,omitempty"`
	ApplyDate         time.Time  `json:"applyDate"`
	UpdationDate      *time.Time `json:"updationDate,omitempty"`
}

// SetStatusRequest is the admin payload for a lifecycle transition
type SetStatusRequest struct {
	Status          string   `json:"status" binding:"required"`
	Remark          string   `json:"remark" binding:"required"`
	DisbursedAmount *float64 `json:"disbursedAmount,omitempty"`
}
