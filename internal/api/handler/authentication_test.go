package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	t.Run("devolve token e usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		service.EXPECT().LoginUser(gomock.Any(), "ana@agencia.com", "Senha@123").Return("jwt-token", nil)
		service.EXPECT().ValidateToken("jwt-token").Return(managerClaims, nil)
		service.EXPECT().GetUserProfile(gomock.Any(), managerClaims.UserID).
			Return(&domain.User{ID: managerClaims.UserID, Email: "ana@agencia.com", RoleID: domain.RoleManager}, nil)

		rec := serve(Authentication(service, noLimit()), nil, http.MethodPost, "/v1/login",
			`{"email":" Ana@Agencia.com ","password":"Senha@123"}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "jwt-token", resp.Token)
		require.NotNil(t, resp.User)
		assert.Empty(t, resp.User.PasswordHash)
	})

	t.Run("credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		service.EXPECT().LoginUser(gomock.Any(), "ana@agencia.com", "errada").
			Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))

		rec := serve(Authentication(service, noLimit()), nil, http.MethodPost, "/v1/login",
			`{"email":"ana@agencia.com","password":"errada"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)
	})

	t.Run("campos obrigatórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		rec := serve(Authentication(service, noLimit()), nil, http.MethodPost, "/v1/login", `{"email":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("limite de tentativas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		service.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")).
			Times(2)

		routes := Authentication(service, middleware.NewRateLimiter("auth", 2, 2))
		body := `{"email":"ana@agencia.com","password":"errada"}`

		serve(routes, nil, http.MethodPost, "/v1/login", body)
		serve(routes, nil, http.MethodPost, "/v1/login", body)
		third := serve(routes, nil, http.MethodPost, "/v1/login", body)

		assert.Equal(t, http.StatusTooManyRequests, third.Code)
		assert.NotEmpty(t, third.Header().Get("Retry-After"))
	})
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "Senha@123", user.PasswordHash)
			return &domain.User{ID: 10, Name: user.Name, Email: "bia@agencia.com", RoleID: domain.RoleManager}, nil
		})
	service.EXPECT().LoginUser(gomock.Any(), "bia@agencia.com", "Senha@123").Return("jwt-token", nil)

	rec := serve(Authentication(service, noLimit()), nil, http.MethodPost, "/v1/register",
		`{"name":"Bia","email":"bia@agencia.com","password":"Senha@123","role_id":1}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.RoleManager, resp.User.RoleID)
}

func TestChangePasswordOnlySelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	rec := serve(Authentication(service, noLimit()), managerClaims, http.MethodPost, "/v1/users/99/change-password",
		`{"current_password":"a","new_password":"b"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
}

func TestGeneratePasswordAdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().GenerateStrongPassword(gomock.Any(), adminClaims, 3).Return("Nova@Senha#2024", nil)

	rec := serve(Authentication(service, noLimit()), adminClaims, http.MethodPost, "/v1/users/3/generate-password", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"password":"Nova@Senha#2024"}`, rec.Body.String())

	rec = serve(Authentication(service, noLimit()), managerClaims, http.MethodPost, "/v1/users/3/generate-password", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().DeleteUser(gomock.Any(), managerClaims, 3).Return(nil)

	rec := serve(User(service), managerClaims, http.MethodDelete, "/v1/users/3", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(User(service), clientClaims, http.MethodDelete, "/v1/users/3", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
