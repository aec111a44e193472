package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/social-insights-api/pkg/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde a hora atual e, com banco configurado, o resultado do ping
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}

		status := http.StatusOK
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.Area(r.Context(), "api").WithError(err).Warn("api: healthcheck database ping failed")
				body["status"] = "degraded"
				body["database"] = err.Error()
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, r, status, body)
	})
}
