package dto

import (
	"github.com/restobill/backend/internal/application/usecase/auth"
)

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

// ToLoginResponse converts a LoginAdminOutput to a LoginResponse DTO.
func ToLoginResponse(output *auth.LoginAdminOutput) LoginResponse {
	return LoginResponse{
		AccessToken: output.AccessToken,
		Username:    output.Username,
	}
}
