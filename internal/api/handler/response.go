package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/scheduler"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/alerting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
	"github.com/vfg2006/ads-optimizer-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

type codedError interface {
	ErrorCode() string
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody escreve o erro de validação e devolve false quando o corpo é inválido
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Debug("corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return false
	}
	return true
}

func requester(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
		return nil, false
	}
	return claims, true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(pathParam(r, name))
	if err != nil || value <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return value, true
}

func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	value, err := strconv.ParseInt(pathParam(r, name), 10, 64)
	if err != nil || value <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return value, true
}

func optionalString(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

// queryInt devolve def quando o parâmetro não foi enviado
func queryInt(r *http.Request, key string, def int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return def, nil
	}
	return strconv.Atoi(value)
}

// handleError traduz os erros dos casos de uso para a resposta padrão da API
func handleError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var coded codedError
	if errors.As(err, &coded) {
		code := coded.ErrorCode()
		if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error(fallback)
		}
		apiErrors.WriteError(w, code, err.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, alerting.ErrAlertNotFound), errors.Is(err, alerting.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, alerting.ErrInvalidFilters),
		errors.Is(err, reporting.ErrInvalidPeriod),
		errors.Is(err, auditing.ErrInvalidFilters):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, scheduler.ErrAlreadyRunning):
		apiErrors.WriteError(w, apiErrors.ErrResourceConflict, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
