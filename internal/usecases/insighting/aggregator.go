package insighting

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/social-insights-api/infrastructure/integrator"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/tokening"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/telemetry"
)

const notConnected = "plataforma não conectada"

// Aggregator consulta as plataformas conectadas em paralelo e consolida as métricas
type Aggregator struct {
	factory integrator.IntegrationFactory
	timeout time.Duration
	metrics *telemetry.Metrics
}

func NewAggregator(factory integrator.IntegrationFactory, timeout time.Duration, metrics *telemetry.Metrics) *Aggregator {
	return &Aggregator{
		factory: factory,
		timeout: timeout,
		metrics: metrics,
	}
}

type platformOutcome struct {
	platform domain.PlatformKey
	points   []domain.DailyPoint
	err      error
}

// Aggregate espera todas as plataformas terminarem. A falha de uma plataforma
// só zera a contribuição dela e fica registrada em Failures.
func (a *Aggregator) Aggregate(ctx context.Context, tokens tokening.TokenManager, platforms []domain.PlatformKey, startDate, endDate time.Time) *domain.AggregateResult {
	outcomes := make([]platformOutcome, len(platforms))

	wg := sync.WaitGroup{}
	for i, platform := range platforms {
		wg.Add(1)
		go func(i int, platform domain.PlatformKey) {
			defer wg.Done()
			points, err := a.fetch(ctx, tokens, platform, startDate, endDate)
			outcomes[i] = platformOutcome{platform: platform, points: points, err: err}
		}(i, platform)
	}
	wg.Wait()

	result := &domain.AggregateResult{
		Series:         make([]domain.DailyPoint, 0),
		PerPlatform:    make(map[domain.PlatformKey]domain.NormalizedMetrics),
		PlatformSeries: make(map[domain.PlatformKey][]domain.DailyPoint),
		Failures:       make(map[domain.PlatformKey]string),
		StartDate:      startDate.Format(domain.DateLayout),
		EndDate:        endDate.Format(domain.DateLayout),
	}

	series := make([][]domain.DailyPoint, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.err != nil {
			a.metrics.RecordAggregationFailure(outcome.platform.String())
			log.Area(ctx, "insights").WithError(outcome.err).WithField("platform", outcome.platform).Warn("insights: platform excluded from aggregation")
			result.Failures[outcome.platform] = outcome.err.Error()
			continue
		}

		total := domain.SumPoints(outcome.points)
		result.PerPlatform[outcome.platform] = total
		result.PlatformSeries[outcome.platform] = outcome.points
		result.Totals.Add(total)
		series = append(series, outcome.points)
	}

	result.Series = MergeSeries(series...)
	return result
}

func (a *Aggregator) fetch(ctx context.Context, tokens tokening.TokenManager, platform domain.PlatformKey, startDate, endDate time.Time) ([]domain.DailyPoint, error) {
	credential, err := tokens.Get(ctx, platform)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, integration.NewError(platform, integration.ErrMissingCredential, notConnected)
	}

	client, err := a.factory.Create(platform, credential, tokens)
	if err != nil {
		return nil, err
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	return client.FetchData(ctx, startDate, endDate)
}

// MergeSeries soma campo a campo os pontos do mesmo dia e ordena por data.
// Um dia presente em uma só série entra com as demais valendo zero.
func MergeSeries(series ...[]domain.DailyPoint) []domain.DailyPoint {
	byDate := make(map[string]*domain.DailyPoint)

	for _, points := range series {
		for _, p := range points {
			merged, ok := byDate[p.Date]
			if !ok {
				merged = &domain.DailyPoint{Date: p.Date}
				byDate[p.Date] = merged
			}
			merged.Add(p.NormalizedMetrics)
		}
	}

	out := make([]domain.DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
