package models

import "time"

// BankDetail is the payout banking information captured once per application.
// It is keyed by the application's identity; the application number is kept
// only as a display alias.
type BankDetail struct {
	ID                int64     `json:"id"`
	ApplicationID     int64     `json:"applicationId"`
	ApplicationNumber string    `json:"applicationNumber"`
	UserID            int64     `json:"userId"`
	AccountHolderName string    `json:"accountHolderName"`
	BankName          string    `json:"bankName"`
	BranchName        string    `json:"branchName"`
	SwiftCode         string    `json:"swiftCode"`
	AccountNumber     string    `json:"accountNumber"`
	CreatedAt         time.Time `json:"createdAt"`
}
