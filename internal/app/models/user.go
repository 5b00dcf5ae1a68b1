package models

import "time"

// Role distinguishes applicants from portal administrators
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleAdmin     Role = "admin"
)

// User represents a registered account
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber"`
	Password     string    `json:"-"`
	Role         Role      `json:"role"`
	RegDate      time.Time `json:"regDate"`
}
