// Package auth contains the admin authentication use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/restobill/backend/internal/application/adapter"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// LoginAdminInput represents the input for admin login.
type LoginAdminInput struct {
	Username string
	Password string
}

// LoginAdminOutput represents the result of a successful login.
type LoginAdminOutput struct {
	AccessToken string
	Username    string
}

// LoginAdminUseCase verifies admin credentials and issues an access token.
type LoginAdminUseCase struct {
	adminRepo       adapter.AdminUserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginAdminUseCase creates a new LoginAdminUseCase instance.
func NewLoginAdminUseCase(
	adminRepo adapter.AdminUserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginAdminUseCase {
	return &LoginAdminUseCase{
		adminRepo:       adminRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute authenticates the admin. Unknown usernames and wrong passwords
// return the same credentials error.
func (uc *LoginAdminUseCase) Execute(ctx context.Context, input LoginAdminInput) (*LoginAdminOutput, error) {
	admin, err := uc.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerror.ErrAdminNotFound) {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("failed to find admin user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(admin.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	token, err := uc.tokenService.GenerateAccessToken(admin.ID, admin.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginAdminOutput{
		AccessToken: token,
		Username:    admin.Username,
	}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid username or password",
		domainerror.ErrInvalidCredentials,
	)
}
