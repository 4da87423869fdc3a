package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

const defaultDashboardDays = 30

// GetDashboard consolida os indicadores do período, por padrão os últimos 30 dias até ontem
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		start, end, err := utils.ParseDateRange(r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"), defaultDashboardDays, time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), claims, domain.DashboardFilters{
			StartDate:  start,
			EndDate:    end,
			ClientID:   optionalString(r, "client_id"),
			CampaignID: optionalString(r, "campaign_id"),
		})
		if err != nil {
			handleError(w, r, err, "Erro ao montar dashboard")
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}
