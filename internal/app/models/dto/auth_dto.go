package dto

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	FullName     string `json:"fullName" binding:"required,min=2,max=120"`
	Email        string `json:"email" binding:"required,email"`
	MobileNumber string `json:"mobileNumber" binding:"required,min=7,max=15"`
	Password     string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the public view of an account
type UserInfo struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthResponse carries a bearer token and the authenticated user
type AuthResponse struct {
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expiresIn"`
	User      UserInfo `json:"user"`
}
