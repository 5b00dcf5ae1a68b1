package dto

import "time"

// SubmitBankDetailsRequest captures payout banking information.
// ApplicationNumber is the externally visible application identifier.
type SubmitBankDetailsRequest struct {
	ApplicationNumber string `json:"applicationNumber" binding:"required"`
	AccountHolderName string `json:"accountHolderName" binding:"required,min=2,max=120"`
	BankName          string `json:"bankName" binding:"required"`
	BranchName        string `json:"branchName" binding:"required"`
	SwiftCode         string `json:"swiftCode" binding:"required"`
	AccountNumber     string `json:"accountNumber" binding:"required,min=4,max=34"`
}

// BankDetailResponse is the API view of stored bank details
type BankDetailResponse struct {
	ID                int64     `json:"id"`
	ApplicationID     int64     `json:"applicationId"`
	ApplicationNumber string    `json:"applicationNumber"`
	AccountHolderName string    `json:"accountHolderName"`
	BankName          string    `json:"bankName"`
	BranchName        string    `json:"branchName"`
	SwiftCode         string    `json:"swiftCode"`
	AccountNumber     string    `json:"accountNumber"`
	CreatedAt         time.Time `json:"createdAt"`
}
