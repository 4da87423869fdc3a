package handler

import (
	"net/http"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/clienting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/syncing"
)

func ListClients(service clienting.ClientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		clients, err := service.List(r.Context(), claims)
		if err != nil {
			handleError(w, r, err, "Erro ao listar clientes")
			return
		}

		writeJSON(w, http.StatusOK, clients)
	}
}

func GetClient(service clienting.ClientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		client, err := service.Get(r.Context(), claims, pathParam(r, "id"))
		if err != nil {
			handleError(w, r, err, "Erro ao buscar cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func CreateClient(service clienting.ClientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		var req domain.ClientRequest
		if !decodeBody(w, r, &req) {
			return
		}

		client, err := service.Create(r.Context(), claims, &req)
		if err != nil {
			handleError(w, r, err, "Erro ao criar cliente")
			return
		}

		writeJSON(w, http.StatusCreated, client)
	}
}

func UpdateClient(service clienting.ClientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		var req domain.ClientRequest
		if !decodeBody(w, r, &req) {
			return
		}

		client, err := service.Update(r.Context(), claims, pathParam(r, "id"), &req)
		if err != nil {
			handleError(w, r, err, "Erro ao atualizar cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func DeleteClient(service clienting.ClientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), claims, pathParam(r, "id")); err != nil {
			handleError(w, r, err, "Erro ao remover cliente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SyncClient importa as campanhas Performance Max da conta Google Ads do cliente
func SyncClient(service syncing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		result, err := service.SyncClient(r.Context(), claims, pathParam(r, "id"))
		if err != nil {
			handleError(w, r, err, "Erro ao sincronizar cliente")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ListRemoteCampaigns(service syncing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		campaigns, err := service.ListRemoteCampaigns(r.Context(), claims, pathParam(r, "id"))
		if err != nil {
			handleError(w, r, err, "Erro ao listar campanhas do Google Ads")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}
