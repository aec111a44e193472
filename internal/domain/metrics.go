package domain

import "time"

// DateLayout é o rótulo de data usado nas séries diárias
const DateLayout = "2006-01-02"

// NormalizedMetrics é o formato comum para onde toda plataforma é mapeada.
// Os seis campos são sempre presentes; conceitos sem equivalente valem zero.
type NormalizedMetrics struct {
	Impressions int64 `json:"impressions"`
	Reach       int64 `json:"reach"`
	Engagement  int64 `json:"engagement"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
	Followers   int64 `json:"followers"`

	Extra map[string]float64 `json:"extra,omitempty"`
}

// Add soma campo a campo. Extensões não entram na soma.
func (m *NormalizedMetrics) Add(other NormalizedMetrics) {
	m.Impressions += other.Impressions
	m.Reach += other.Reach
	m.Engagement += other.Engagement
	m.Clicks += other.Clicks
	m.Conversions += other.Conversions
	m.Followers += other.Followers
}

// Clamp zera qualquer campo negativo vindo de um mapeamento
func (m *NormalizedMetrics) Clamp() {
	for _, v := range []*int64{&m.Impressions, &m.Reach, &m.Engagement, &m.Clicks, &m.Conversions, &m.Followers} {
		if *v < 0 {
			*v = 0
		}
	}
}

// DailyPoint é o valor de um dia para uma plataforma (ou a soma de todas)
type DailyPoint struct {
	Date string `json:"date"`
	NormalizedMetrics
}

func (p DailyPoint) Day() (time.Time, error) {
	return time.Parse(DateLayout, p.Date)
}

// SumPoints soma uma série inteira
func SumPoints(points []DailyPoint) NormalizedMetrics {
	var total NormalizedMetrics
	for _, p := range points {
		total.Add(p.NormalizedMetrics)
	}
	return total
}

// AggregateResult é o que o dashboard consome
type AggregateResult struct {
	Totals      NormalizedMetrics                 `json:"totals"`
	Series      []DailyPoint                      `json:"series"`
	PerPlatform map[PlatformKey]NormalizedMetrics `json:"per_platform"`
	// Série diária de cada plataforma que respondeu, usada pelos snapshots
	PlatformSeries map[PlatformKey][]DailyPoint `json:"platform_series,omitempty"`
	Failures       map[PlatformKey]string       `json:"failures,omitempty"`
	StartDate      string                       `json:"start_date"`
	EndDate        string                       `json:"end_date"`
	Generation     uint64                       `json:"generation"`
}

// MetricSnapshot é um ponto diário persistido pela sincronização agendada
type MetricSnapshot struct {
	ID       string      `json:"id"`
	OwnerID  string      `json:"owner_id"`
	Platform PlatformKey `json:"platform"`
	Date     string      `json:"date"`
	NormalizedMetrics
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
