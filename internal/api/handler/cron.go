package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeTokenCleanup = "token-cleanup"
	CronJobTypeMetricsSync  = "metrics-sync"
	CronJobTypeAll          = "all"
)

// CronJob é o contrato comum dos serviços agendados
type CronJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser disparados manualmente
type CronJobServices struct {
	TokenCleanup CronJob
	MetricsSync  CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.TokenCleanup != nil {
		jobs[CronJobTypeTokenCleanup] = s.TokenCleanup
	}
	if s.MetricsSync != nil {
		jobs[CronJobTypeMetricsSync] = s.MetricsSync
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica. Uma execução já em
// andamento não é duplicada.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.byType()

		triggered := make(map[string]bool)
		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				triggered[name] = job.TriggerManualSync(r.Context())
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: token-cleanup, metrics-sync, all", nil)
				return
			}
			triggered[cronType] = job.TriggerManualSync(r.Context())
		}

		log.Area(r.Context(), "scheduler").WithFields(log.Fields{
			"type":      cronType,
			"triggered": triggered,
		}).Info("scheduler: manual run requested")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message":   "Cron job iniciada com sucesso",
			"type":      cronType,
			"triggered": triggered,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}
