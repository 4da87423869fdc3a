package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

// ListHistory devolve o histórico de alterações paginado, mais recente primeiro
func ListHistory(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filters := domain.HistoryFilters{EntityID: optionalString(r, "entity_id")}

		if entityType := query.Get("entity_type"); entityType != "" {
			upper := strings.ToUpper(entityType)
			filters.EntityType = &upper
		}

		if action := query.Get("action"); action != "" {
			a := domain.HistoryAction(strings.ToUpper(action))
			filters.Action = &a
		}

		if userID := query.Get("user_id"); userID != "" {
			id, err := strconv.Atoi(userID)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "user_id deve ser numérico", nil)
				return
			}
			filters.UserID = &id
		}

		var err error
		if filters.StartDate, err = utils.ParseOptionalDate(query.Get("start_date")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
			return
		}
		if filters.EndDate, err = utils.ParseOptionalDate(query.Get("end_date")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		if filters.Page, err = queryInt(r, "page", 1); err != nil || filters.Page < 1 || filters.Page > domain.MaxPage {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, fmt.Sprintf("page deve ser um número entre 1 e %d", domain.MaxPage), nil)
			return
		}
		if filters.PageSize, err = queryInt(r, "page_size", domain.DefaultPageSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page_size deve ser numérico", nil)
			return
		}

		page, err := service.List(r.Context(), claims, filters)
		if err != nil {
			handleError(w, r, err, "Erro ao listar histórico")
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}
