package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/recommending"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
)

type RejectRecommendationRequest struct {
	Reason string `json:"reason"`
}

func ListRecommendations(service recommending.RecommendationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		filters := domain.RecommendationFilters{CampaignID: optionalString(r, "campaign_id")}

		if status := optionalString(r, "status"); status != nil {
			s := domain.RecommendationStatus(strings.ToUpper(*status))
			if !s.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status deve ser PENDING, APPLIED ou REJECTED", nil)
				return
			}
			filters.Status = &s
		}

		recommendations, err := service.List(r.Context(), claims, filters)
		if err != nil {
			handleError(w, r, err, "Erro ao listar recomendações")
			return
		}

		writeJSON(w, http.StatusOK, recommendations)
	}
}

func GetRecommendation(service recommending.RecommendationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		recommendation, err := service.Get(r.Context(), claims, id)
		if err != nil {
			handleError(w, r, err, "Erro ao buscar recomendação")
			return
		}

		writeJSON(w, http.StatusOK, recommendation)
	}
}

func GenerateRecommendations(service recommending.RecommendationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		recommendations, err := service.Generate(r.Context(), claims, pathParam(r, "id"))
		if err != nil {
			handleError(w, r, err, "Erro ao gerar recomendações")
			return
		}

		writeJSON(w, http.StatusCreated, recommendations)
	}
}

func ApplyRecommendation(service recommending.RecommendationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		recommendation, err := service.Apply(r.Context(), claims, id)
		if err != nil {
			handleError(w, r, err, "Erro ao aplicar recomendação")
			return
		}

		writeJSON(w, http.StatusOK, recommendation)
	}
}

// RejectRecommendation aceita corpo vazio, o motivo é opcional
func RejectRecommendation(service recommending.RecommendationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		var req RejectRecommendationRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		recommendation, err := service.Reject(r.Context(), claims, id, req.Reason)
		if err != nil {
			handleError(w, r, err, "Erro ao rejeitar recomendação")
			return
		}

		writeJSON(w, http.StatusOK, recommendation)
	}
}

func AnalyzeCampaignPerformance(service recommending.RecommendationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		analysis, err := service.AnalyzePerformance(r.Context(), claims, pathParam(r, "id"))
		if err != nil {
			handleError(w, r, err, "Erro ao analisar desempenho")
			return
		}

		writeJSON(w, http.StatusOK, analysis)
	}
}
