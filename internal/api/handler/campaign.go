package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

const (
	defaultSyncDays        = 7
	defaultSearchTermsDays = 30
)

type MetricsSyncResponse struct {
	CampaignID string `json:"campaign_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Days       int    `json:"days_synced"`
}

func ListCampaigns(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		filters := domain.CampaignFilters{
			ClientID: optionalString(r, "client_id"),
			Search:   optionalString(r, "search"),
		}

		if status := optionalString(r, "status"); status != nil {
			s := domain.CampaignStatus(strings.ToUpper(*status))
			if !s.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status deve ser ENABLED, PAUSED ou REMOVED", nil)
				return
			}
			filters.Status = &s
		}

		campaigns, err := service.List(r.Context(), claims, filters)
		if err != nil {
			handleError(w, r, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

func GetCampaign(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		campaign, err := service.Get(r.Context(), claims, pathParam(r, "id"))
		if err != nil {
			handleError(w, r, err, "Erro ao buscar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func CreateCampaign(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		var req domain.CampaignRequest
		if !decodeBody(w, r, &req) {
			return
		}

		campaign, err := service.Create(r.Context(), claims, &req)
		if err != nil {
			handleError(w, r, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

func UpdateCampaign(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		var req domain.CampaignRequest
		if !decodeBody(w, r, &req) {
			return
		}

		campaign, err := service.Update(r.Context(), claims, pathParam(r, "id"), &req)
		if err != nil {
			handleError(w, r, err, "Erro ao atualizar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func DeleteCampaign(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), claims, pathParam(r, "id")); err != nil {
			handleError(w, r, err, "Erro ao remover campanha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetCampaignMetrics devolve a série diária e os totais do período
func GetCampaignMetrics(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		startDate, err := utils.ParseOptionalDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseOptionalDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		if startDate != nil && endDate != nil && startDate.After(*endDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve ser anterior a end_date", nil)
			return
		}

		report, err := service.GetMetrics(r.Context(), claims, pathParam(r, "id"), domain.MetricFilters{
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			handleError(w, r, err, "Erro ao buscar métricas")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// UpsertCampaignMetric grava as métricas de um dia, substituindo o registro existente
func UpsertCampaignMetric(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		var req domain.MetricRequest
		if !decodeBody(w, r, &req) {
			return
		}

		metric, err := service.UpsertMetric(r.Context(), claims, pathParam(r, "id"), &req)
		if err != nil {
			handleError(w, r, err, "Erro ao gravar métricas")
			return
		}

		writeJSON(w, http.StatusOK, metric)
	}
}

// SyncCampaignMetrics busca no Google Ads as métricas do período, por padrão os últimos 7 dias
func SyncCampaignMetrics(service syncing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		period, ok := parsePeriod(w, r, defaultSyncDays)
		if !ok {
			return
		}

		campaignID := pathParam(r, "id")
		days, err := service.SyncMetrics(r.Context(), claims, campaignID, period)
		if err != nil {
			handleError(w, r, err, "Erro ao sincronizar métricas")
			return
		}

		writeJSON(w, http.StatusOK, MetricsSyncResponse{
			CampaignID: campaignID,
			StartDate:  period.StartDate.Format(utils.DateLayout),
			EndDate:    period.EndDate.Format(utils.DateLayout),
			Days:       days,
		})
	}
}

func GetSearchTerms(service syncing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		period, ok := parsePeriod(w, r, defaultSearchTermsDays)
		if !ok {
			return
		}

		terms, err := service.GetSearchTerms(r.Context(), claims, pathParam(r, "id"), period)
		if err != nil {
			handleError(w, r, err, "Erro ao buscar termos de pesquisa")
			return
		}

		writeJSON(w, http.StatusOK, terms)
	}
}

func GetListingGroups(service syncing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		groups, err := service.GetListingGroups(r.Context(), claims, pathParam(r, "id"))
		if err != nil {
			handleError(w, r, err, "Erro ao buscar grupos de produtos")
			return
		}

		writeJSON(w, http.StatusOK, groups)
	}
}

func parsePeriod(w http.ResponseWriter, r *http.Request, defaultDays int) (domain.DateRange, bool) {
	start, end, err := utils.ParseDateRange(r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"), defaultDays, time.Now())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return domain.DateRange{}, false
	}
	return domain.DateRange{StartDate: start, EndDate: end}, true
}
