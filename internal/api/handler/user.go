package handler

import (
	"net/http"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
)

// ListUsers devolve todos os usuários para o admin e os clientes próprios para o gerente
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		users, err := service.ListUsers(r.Context(), claims)
		if err != nil {
			handleError(w, r, err, "Erro ao listar usuários")
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}

		user, err := service.GetUser(r.Context(), claims, id)
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

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		var user domain.User
		if !decodeBody(w, r, &user) {
			return
		}

		if user.Name == "" || user.Email == "" || user.PasswordHash == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
			return
		}

		created, err := service.CreateUser(r.Context(), claims, &user)
		if err != nil {
			handleError(w, r, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = id

		user, err := service.UpdateUser(r.Context(), claims, &req)
		if err != nil {
			handleError(w, r, err, "Erro ao atualizar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

func DeleteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteUser(r.Context(), claims, id); err != nil {
			handleError(w, r, err, "Erro ao remover usuário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
