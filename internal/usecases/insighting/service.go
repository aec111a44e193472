package insighting

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/social-insights-api/infrastructure/integrator"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/tokening"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

type Insighter interface {
	// FetchAggregateMetrics consolida as plataformas conectadas do dono no período pedido
	FetchAggregateMetrics(ctx context.Context, ownerID string, rangeKey domain.DateRangeKey) (*domain.AggregateResult, error)
	LatestMetrics(ctx context.Context, ownerID string) (*domain.AggregateResult, bool)
	MetricsHistory(ctx context.Context, ownerID, startDate, endDate string) ([]*domain.MetricSnapshot, error)
	SyncSnapshots(ctx context.Context, ownerID string, lookbackDays int) (int, error)
}

type Service struct {
	tokens     tokening.ManagerProvider
	factory    integrator.IntegrationFactory
	aggregator *Aggregator
	snapshots  repository.MetricSnapshotRepository
	clock      tokening.Clock

	mu          sync.Mutex
	generations map[string]uint64
	latest      map[string]*domain.AggregateResult
}

func NewService(
	tokens tokening.ManagerProvider,
	factory integrator.IntegrationFactory,
	aggregator *Aggregator,
	snapshots repository.MetricSnapshotRepository,
	clock tokening.Clock,
) *Service {
	if clock == nil {
		clock = tokening.SystemClock()
	}
	return &Service{
		tokens:      tokens,
		factory:     factory,
		aggregator:  aggregator,
		snapshots:   snapshots,
		clock:       clock,
		generations: make(map[string]uint64),
		latest:      make(map[string]*domain.AggregateResult),
	}
}

// connectedPlatforms ignora chaves reservadas sem integração (linkedin)
func (s *Service) connectedPlatforms(ctx context.Context, tokens tokening.TokenManager) []domain.PlatformKey {
	platforms := make([]domain.PlatformKey, 0)
	for _, p := range tokens.ConnectedPlatforms(ctx) {
		if s.factory.IsSupported(p) {
			platforms = append(platforms, p)
		}
	}
	return platforms
}

func (s *Service) nextGeneration(ownerID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[ownerID]++
	return s.generations[ownerID]
}

// commit só publica o resultado se nenhuma consulta mais nova começou nesse meio tempo
func (s *Service) commit(ownerID string, generation uint64, result *domain.AggregateResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[ownerID] != generation {
		return false
	}
	s.latest[ownerID] = result
	return true
}

func (s *Service) FetchAggregateMetrics(ctx context.Context, ownerID string, rangeKey domain.DateRangeKey) (*domain.AggregateResult, error) {
	generation := s.nextGeneration(ownerID)
	startDate, endDate := rangeKey.Bounds(s.clock.Now())

	tokens := s.tokens.ForOwner(ownerID)
	platforms := s.connectedPlatforms(ctx, tokens)

	logger := log.Area(ctx, "insights").WithFields(log.Fields{
		"owner_id":   ownerID,
		"date_range": rangeKey,
		"platforms":  len(platforms),
		"generation": generation,
	})

	result := s.aggregator.Aggregate(ctx, tokens, platforms, startDate, endDate)
	result.Generation = generation

	if !s.commit(ownerID, generation, result) {
		logger.Info("insights: discarding superseded aggregation")
		return nil, ErrSupersededFetch
	}

	logger.WithField("failures", len(result.Failures)).Info("insights: aggregation completed")
	return result, nil
}

func (s *Service) LatestMetrics(_ context.Context, ownerID string) (*domain.AggregateResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.latest[ownerID]
	return result, ok
}

// MetricsHistory aceita limites vazios; datas no formato 2006-01-02
func (s *Service) MetricsHistory(ctx context.Context, ownerID, startDate, endDate string) ([]*domain.MetricSnapshot, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, ErrInvalidRange
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, ErrInvalidRange
	}

	return s.snapshots.ListByOwner(ctx, ownerID, startDate, endDate)
}

// SyncSnapshots agrega os últimos lookbackDays e grava um snapshot por plataforma e dia.
// Não passa pelo contador de geração: o resultado não substitui a visão do dashboard.
func (s *Service) SyncSnapshots(ctx context.Context, ownerID string, lookbackDays int) (int, error) {
	if lookbackDays < 0 {
		return 0, ErrInvalidRange
	}

	now := s.clock.Now()
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startDate := endDate.AddDate(0, 0, -lookbackDays)

	tokens := s.tokens.ForOwner(ownerID)
	platforms := s.connectedPlatforms(ctx, tokens)
	if len(platforms) == 0 {
		return 0, nil
	}

	result := s.aggregator.Aggregate(ctx, tokens, platforms, startDate, endDate)

	snapshots := make([]*domain.MetricSnapshot, 0)
	for platform, points := range result.PlatformSeries {
		for _, p := range points {
			snapshots = append(snapshots, &domain.MetricSnapshot{
				OwnerID:           ownerID,
				Platform:          platform,
				Date:              p.Date,
				NormalizedMetrics: p.NormalizedMetrics,
			})
		}
	}

	if err := s.snapshots.SaveOrUpdate(ctx, snapshots); err != nil {
		return 0, err
	}

	log.Area(ctx, "insights").WithFields(log.Fields{
		"owner_id":  ownerID,
		"snapshots": len(snapshots),
		"failures":  len(result.Failures),
	}).Info("insights: snapshots synchronized")

	return len(snapshots), nil
}
