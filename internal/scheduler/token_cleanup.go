package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/usecases/tokening"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

// TokenCleanupService remove periodicamente credenciais expiradas ou corrompidas de todos os donos
type TokenCleanupService struct {
	scheduler           *gocron.Scheduler
	config              config.TokenCleanupSync
	tokens              tokening.ManagerProvider
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRemoved         int
}

func NewTokenCleanupService(tokens tokening.ManagerProvider, appConfig *config.Config) *TokenCleanupService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.TokenCleanupSync.CronSchedule,
		"sync_enabled":  appConfig.TokenCleanupSync.Enabled,
	}).Info("Configuração do agendador de limpeza de tokens carregada")

	return &TokenCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.TokenCleanupSync,
		tokens:    tokens,
	}
}

// Start agenda a limpeza e roda uma vez logo na subida
func (s *TokenCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de tokens desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de tokens")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de tokens: %w", err)
	}

	s.scheduler.StartAsync()
	go s.cleanupAll(ctx)

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de tokens")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *TokenCleanupService) cleanupAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de tokens já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.Area(ctx, "tokens")

	owners, err := s.tokens.Owners(ctx)
	if err != nil {
		logger.WithError(err).Error("tokens: failed to list credential owners")
		return
	}

	removed := 0
	for _, owner := range owners {
		n, err := s.tokens.ForOwner(owner).CleanupExpired(ctx)
		removed += n
		if err != nil {
			logger.WithError(err).WithField("owner_id", owner).Error("tokens: cleanup failed for owner")
		}
	}

	logger.WithFields(log.Fields{
		"owners":  len(owners),
		"removed": removed,
	}).Info("tokens: expired credential cleanup finished")

	s.syncMutex.Lock()
	s.lastRemoved = removed
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync dispara a limpeza fora do horário agendado
func (s *TokenCleanupService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()
	if running {
		logrus.Info("Limpeza de tokens já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando limpeza manual de tokens")
	go s.cleanupAll(context.WithoutCancel(ctx))
	return true
}

func (s *TokenCleanupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_removed":           s.lastRemoved,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
