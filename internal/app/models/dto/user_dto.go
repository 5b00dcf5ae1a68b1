package dto

import "time"

// ProfileResponse is the authenticated user's profile
type ProfileResponse struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber"`
	Role         string    `json:"role"`
	RegDate      time.Time `json:"regDate"`
}

// UpdateProfileRequest updates mutable profile fields
type UpdateProfileRequest struct {
	FullName     string `json:"fullName" binding:"required,min=2,max=120"`
	MobileNumber string `json:"mobileNumber" binding:"required,min=7,max=15"`
}

// ChangePasswordRequest changes the account password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
