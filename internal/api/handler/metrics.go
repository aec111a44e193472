package handler

import (
	"net/http"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/insighting"
)

// GetMetrics consolida as plataformas conectadas; date_range desconhecido vira 30d
func GetMetrics(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		rangeKey := domain.ParseDateRangeKey(r.URL.Query().Get("date_range"))

		result, err := service.FetchAggregateMetrics(r.Context(), owner, rangeKey)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar métricas")
			return
		}
		writeJSON(w, r, http.StatusOK, result)
	}
}

func GetLatestMetrics(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		result, found := service.LatestMetrics(r.Context(), owner)
		if !found {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, r, http.StatusOK, result)
	}
}

// GetMetricsHistory lê os snapshots diários; datas no formato 2006-01-02
func GetMetricsHistory(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		snapshots, err := service.MetricsHistory(r.Context(), owner, query.Get("start_date"), query.Get("end_date"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar histórico de métricas")
			return
		}
		writeJSON(w, r, http.StatusOK, snapshots)
	}
}
