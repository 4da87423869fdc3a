package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/alerting"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type MarkedResponse struct {
	Updated int64 `json:"updated"`
}

func ListAlerts(service alerting.AlertManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		filters := domain.AlertFilters{CampaignID: optionalString(r, "campaign_id")}

		if unread := r.URL.Query().Get("unread"); unread != "" {
			value, err := strconv.ParseBool(unread)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "unread deve ser true ou false", nil)
				return
			}
			filters.Unread = value
		}

		if severity := optionalString(r, "severity"); severity != nil {
			s := domain.AlertSeverity(strings.ToUpper(*severity))
			filters.Severity = &s
		}

		limit, err := queryInt(r, "limit", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser numérico", nil)
			return
		}
		filters.Limit = limit

		alerts, err := service.List(r.Context(), claims, filters)
		if err != nil {
			handleError(w, r, err, "Erro ao listar alertas")
			return
		}

		writeJSON(w, http.StatusOK, alerts)
	}
}

func GetUnreadAlertCount(service alerting.AlertManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		count, err := service.UnreadCount(r.Context(), claims)
		if err != nil {
			handleError(w, r, err, "Erro ao contar alertas")
			return
		}

		writeJSON(w, http.StatusOK, UnreadCountResponse{Count: count})
	}
}

func MarkAlertRead(service alerting.AlertManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		if err := service.MarkRead(r.Context(), claims, id); err != nil {
			handleError(w, r, err, "Erro ao marcar alerta como lido")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func MarkAllAlertsRead(service alerting.AlertManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		updated, err := service.MarkAllRead(r.Context(), claims)
		if err != nil {
			handleError(w, r, err, "Erro ao marcar alertas como lidos")
			return
		}

		writeJSON(w, http.StatusOK, MarkedResponse{Updated: updated})
	}
}

func DeleteAlert(service alerting.AlertManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), claims, id); err != nil {
			handleError(w, r, err, "Erro ao remover alerta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AnalyzeCampaignAlerts avalia as regras para o dia informado em date, por padrão ontem
func AnalyzeCampaignAlerts(service alerting.AlertManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		date := utils.Truncate(time.Now()).AddDate(0, 0, -1)
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date deve estar no formato YYYY-MM-DD", nil)
				return
			}
			date = *parsed
		}

		alerts, err := service.AnalyzeCampaign(r.Context(), claims, pathParam(r, "id"), date)
		if err != nil {
			handleError(w, r, err, "Erro ao analisar campanha")
			return
		}

		writeJSON(w, http.StatusOK, alerts)
	}
}
