package handler

import (
	"net/http"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/recommending"
)

func ListAssetGroups(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		groups, err := service.ListAssetGroups(r.Context(), claims, pathParam(r, "id"))
		if err != nil {
			handleError(w, r, err, "Erro ao listar grupos de recursos")
			return
		}

		writeJSON(w, http.StatusOK, groups)
	}
}

func GetAssetGroup(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		group, err := service.GetAssetGroup(r.Context(), claims, id)
		if err != nil {
			handleError(w, r, err, "Erro ao buscar grupo de recursos")
			return
		}

		writeJSON(w, http.StatusOK, group)
	}
}

func CreateAssetGroup(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		var req domain.AssetGroupRequest
		if !decodeBody(w, r, &req) {
			return
		}

		group, err := service.CreateAssetGroup(r.Context(), claims, pathParam(r, "id"), &req)
		if err != nil {
			handleError(w, r, err, "Erro ao criar grupo de recursos")
			return
		}

		writeJSON(w, http.StatusCreated, group)
	}
}

func UpdateAssetGroup(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		var req domain.AssetGroupRequest
		if !decodeBody(w, r, &req) {
			return
		}

		group, err := service.UpdateAssetGroup(r.Context(), claims, id, &req)
		if err != nil {
			handleError(w, r, err, "Erro ao atualizar grupo de recursos")
			return
		}

		writeJSON(w, http.StatusOK, group)
	}
}

func DeleteAssetGroup(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteAssetGroup(r.Context(), claims, id); err != nil {
			handleError(w, r, err, "Erro ao remover grupo de recursos")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SuggestAssets pede à IA novos títulos e descrições para o grupo
func SuggestAssets(service recommending.RecommendationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		suggestion, err := service.SuggestAssets(r.Context(), claims, id)
		if err != nil {
			handleError(w, r, err, "Erro ao sugerir recursos")
			return
		}

		writeJSON(w, http.StatusOK, suggestion)
	}
}
