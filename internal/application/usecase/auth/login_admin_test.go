package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

type stubAdminRepository struct {
	admins map[string]*entity.AdminUser
}

func newStubAdminRepository(admins ...*entity.AdminUser) *stubAdminRepository {
	repo := &stubAdminRepository{admins: make(map[string]*entity.AdminUser)}
	for _, a := range admins {
		repo.admins[a.Username] = a
	}
	return repo
}

func (r *stubAdminRepository) Create(_ context.Context, user *entity.AdminUser) error {
	r.admins[user.Username] = user
	return nil
}

func (r *stubAdminRepository) FindByUsername(_ context.Context, username string) (*entity.AdminUser, error) {
	admin, ok := r.admins[username]
	if !ok {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"admin user not found",
			domainerror.ErrAdminNotFound,
		)
	}
	return admin, nil
}

func (r *stubAdminRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.admins)), nil
}

// plainPasswordService treats the stored hash as the plain password itself.
type plainPasswordService struct{}

func (plainPasswordService) HashPassword(password string) (string, error) {
	return password, nil
}

func (plainPasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != password {
		return errors.New("password mismatch")
	}
	return nil
}

type stubTokenService struct {
	token string
}

func (s stubTokenService) GenerateAccessToken(_ uuid.UUID, _ string) (string, error) {
	return s.token, nil
}

func (s stubTokenService) ValidateAccessToken(_ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func TestLoginAdminSuccess(t *testing.T) {
	admin := entity.NewAdminUser("admin", "secret123")
	useCase := NewLoginAdminUseCase(
		newStubAdminRepository(admin),
		plainPasswordService{},
		stubTokenService{token: "signed-token"},
	)

	output, err := useCase.Execute(context.Background(), LoginAdminInput{
		Username: "admin",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "admin", output.Username)
}

func TestLoginAdminWrongPassword(t *testing.T) {
	admin := entity.NewAdminUser("admin", "secret123")
	useCase := NewLoginAdminUseCase(
		newStubAdminRepository(admin),
		plainPasswordService{},
		stubTokenService{},
	)

	_, err := useCase.Execute(context.Background(), LoginAdminInput{
		Username: "admin",
		Password: "wrong",
	})

	assert.True(t, errors.Is(err, domainerror.ErrInvalidCredentials))
}

func TestLoginAdminUnknownUserGetsSameError(t *testing.T) {
	admin := entity.NewAdminUser("admin", "secret123")
	useCase := NewLoginAdminUseCase(
		newStubAdminRepository(admin),
		plainPasswordService{},
		stubTokenService{},
	)

	_, wrongPassword := useCase.Execute(context.Background(), LoginAdminInput{
		Username: "admin",
		Password: "wrong",
	})
	_, unknownUser := useCase.Execute(context.Background(), LoginAdminInput{
		Username: "nobody",
		Password: "secret123",
	})

	// Both failures look identical to the caller.
	assert.True(t, errors.Is(wrongPassword, domainerror.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownUser, domainerror.ErrInvalidCredentials))
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}
