package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
)

// Pinger é satisfeito por *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				logrus.WithError(err).Warn("error responding to healthcheck")
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Banco de dados indisponível", nil)
				return
			}
		}

		writeJSON(w, http.StatusOK, HealthcheckResponse{Status: "ok", Time: time.Now()})
	})
}
