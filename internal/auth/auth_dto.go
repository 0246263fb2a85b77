package auth

import "go-attendance/internal/employee"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type TokenResponse struct {
	AccessToken  string                    `json:"access_token"`
	RefreshToken string                    `json:"refresh_token,omitempty"`
	TokenType    string                    `json:"token_type"`
	Employee     employee.EmployeeResponse `json:"employee"`
}
