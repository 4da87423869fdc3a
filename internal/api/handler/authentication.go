package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithField("email", req.Email).WithError(err).Info("falha no login")
			handleError(w, r, err, "Erro interno ao realizar login")
			return
		}

		claims, err := service.ValidateToken(token)
		if err != nil {
			handleError(w, r, err, "Erro interno ao realizar login")
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			handleError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
	}
}

// Register cria uma conta de gestor e já devolve o token de acesso
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user domain.User
		if !decodeBody(w, r, &user) {
			return
		}

		password := user.PasswordHash
		if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" || password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
			return
		}

		created, err := service.Register(r.Context(), &user)
		if err != nil {
			handleError(w, r, err, "Erro ao registrar usuário")
			return
		}

		token, err := service.LoginUser(r.Context(), created.Email, password)
		if err != nil {
			handleError(w, r, err, "Erro ao registrar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, LoginResponse{Token: token, User: created})
	}
}

func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			handleError(w, r, err, "Erro ao buscar usuário")
			return
		}

		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ChangePassword permite que o usuário altere apenas a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		targetUserID, ok := pathInt(w, r, "id")
		if !ok {
			return
		}

		if claims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro usuário", nil)
			return
		}

		var req ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.CurrentPassword == "" || req.NewPassword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Senha atual e nova senha são obrigatórias", nil)
			return
		}

		if err := service.ChangePassword(r.Context(), targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			handleError(w, r, err, "Erro ao alterar senha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GeneratePassword gera uma senha forte para outro usuário, apenas administradores
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		targetUserID, ok := pathInt(w, r, "id")
		if !ok {
			return
		}

		newPassword, err := service.GenerateStrongPassword(r.Context(), claims, targetUserID)
		if err != nil {
			handleError(w, r, err, "Erro ao gerar senha")
			return
		}

		writeJSON(w, http.StatusOK, GeneratePasswordResponse{Password: newPassword})
	}
}
