package models

import "time"

// ApplicationStatus is the closed set of lifecycle states
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusApproved  ApplicationStatus = "approved"
	StatusRejected  ApplicationStatus = "rejected"
	StatusDisbursed ApplicationStatus = "disbursed"
)

// ValidStatus reports whether s is one of the known states
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDisbursed:
		return true
	}
	return false
}

// CanTransition reports whether the lifecycle allows moving from one status
// to another: pending -> approved|rejected, approved -> disbursed.
func CanTransition(from, to ApplicationStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusDisbursed
	}
	return false
}

// Application is one applicant's submission against one scheme
type Application struct {
	ID                int64             `json:"id"`
	UserID            int64             `json:"userId"`
	SchemeID          int64             `json:"schemeId"`
	ApplicationNumber string            `json:"applicationNumber"`
	DateOfBirth       string            `json:"dateOfBirth"`
	Gender            string            `json:"gender"`
	Category          string            `json:"category"`
	Major             string            `json:"major"`
	Address           string            `json:"address"`
	StudentID         string            `json:"studentId"`
	ProfilePic        string            `json:"profilePic"`
	DocumentRef       string            `json:"documentRef"`
	Status            ApplicationStatus `json:"status"`
	Remark            string            `json:"remark"`
	DisbursedAmount   *float64          `json:"disbursedAmount,omitempty"`
	ApplyDate         time.Time         `json:"applyDate"`
	UpdationDate      *time.Time        `json:"updationDate,omitempty"`

	// SchemeName is populated on reads that join the scheme
	SchemeName string `json:"schemeName,omitempty"`
}
