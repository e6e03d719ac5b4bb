package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restobill/backend/internal/application/usecase/auth"
	domainerror "github.com/restobill/backend/internal/domain/error"
	"github.com/restobill/backend/internal/integration/entrypoint/dto"
)

// AuthController handles admin authentication endpoints.
type AuthController struct {
	loginUseCase *auth.LoginAdminUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(loginUseCase *auth.LoginAdminUseCase) *AuthController {
	return &AuthController{
		loginUseCase: loginUseCase,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "username and password are required",
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginAdminInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid username or password",
				Code:  string(domainerror.ErrCodeInvalidCredentials),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process login",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoginResponse(output))
}
