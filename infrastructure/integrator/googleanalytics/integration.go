package googleanalytics

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

const (
	DisplayName = "Google Analytics"
	Description = "Connect your Google Analytics account"

	reportDateLayout = "20060102"
	propertyPrefix   = "properties/"
)

var Scopes = []string{
	"https://www.googleapis.com/auth/analytics.readonly",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/userinfo.email",
}

// Ordem dos metrics no runReport; o mapeamento usa os mesmos índices
var reportMetrics = []string{"sessions", "totalUsers", "screenPageViews", "engagementRate", "conversions", "eventCount"}

type Integration struct {
	integration.Base
	cfg         config.Google
	redirectURL string
}

func New(client *integration.Client, cfg config.Google, redirectURL string) *Integration {
	return &Integration{
		Base:        integration.NewBase(client, domain.PlatformGoogleAnalytics, DisplayName),
		cfg:         cfg,
		redirectURL: redirectURL,
	}
}

func (g *Integration) tokenEndpoint() integration.TokenEndpoint {
	return integration.TokenEndpoint{URL: g.cfg.TokenURL, ClientID: g.cfg.ClientID, ClientSecret: g.cfg.ClientSecret}
}

func (g *Integration) TestConnection(ctx context.Context) bool {
	var resp accountSummariesResponse
	err := g.Client.GetJSON(ctx, g.cfg.AnalyticsAdminURL+"/accountSummaries", url.Values{"pageSize": {"1"}}, &resp)
	if err != nil {
		log.Area(ctx, "integrations").WithError(err).Debug("integrations: google analytics connection test failed")
		return false
	}
	return true
}

func (g *Integration) RefreshToken(ctx context.Context) (*domain.CredentialRecord, error) {
	return g.Client.RefreshWithRefreshToken(ctx, g.tokenEndpoint())
}

// ExchangeCode troca o code do callback do Google e anexa a identidade do usuário
func (g *Integration) ExchangeCode(ctx context.Context, code, _ string) (*domain.CredentialRecord, error) {
	return ExchangeGoogleCode(ctx, g.Client, g.tokenEndpoint(), g.cfg.UserInfoURL, code, g.redirectURL)
}

// ExchangeGoogleCode é compartilhado com o YouTube, que usa o mesmo OAuth do Google
func ExchangeGoogleCode(ctx context.Context, client *integration.Client, endpoint integration.TokenEndpoint, userInfoURL, code, redirectURL string) (*domain.CredentialRecord, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", redirectURL)

	resp, err := client.ExchangeToken(ctx, endpoint, form)
	if err != nil {
		return nil, err
	}
	record := resp.Record()

	var user userInfo
	if err := client.Send(ctx, integration.Request{Method: http.MethodGet, URL: userInfoURL, Token: record.AccessToken}, &user); err != nil {
		log.Area(ctx, "integrations").WithError(err).WithField("platform", client.Platform).Warn("integrations: google userinfo lookup failed")
	} else {
		record.UserID = user.ID
		record.UserName = user.Name
		record.UserEmail = user.Email
	}

	return record, nil
}

// ListResources lista todas as propriedades GA4 de todas as contas
func (g *Integration) ListResources(ctx context.Context) ([]domain.SelectableResource, error) {
	summaries, err := g.accountSummaries(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]domain.SelectableResource, 0)
	for _, account := range summaries {
		for _, property := range account.PropertySummaries {
			resources = append(resources, domain.SelectableResource{
				ID:       strings.TrimPrefix(property.Property, propertyPrefix),
				Name:     property.DisplayName,
				Category: account.DisplayName,
			})
		}
	}
	return resources, nil
}

func (g *Integration) accountSummaries(ctx context.Context) ([]accountSummary, error) {
	summaries := make([]accountSummary, 0)
	query := url.Values{}

	for {
		var resp accountSummariesResponse
		if err := g.Client.GetJSON(ctx, g.cfg.AnalyticsAdminURL+"/accountSummaries", query, &resp); err != nil {
			return nil, err
		}
		summaries = append(summaries, resp.AccountSummaries...)

		if resp.NextPageToken == "" {
			return summaries, nil
		}
		query.Set("pageToken", resp.NextPageToken)
	}
}

// resolveProperty usa a propriedade selecionada ou descobre a primeira disponível
func (g *Integration) resolveProperty(ctx context.Context) (string, error) {
	if g.Client.Credential != nil && g.Client.Credential.SelectedResourceID != "" {
		return strings.TrimPrefix(g.Client.Credential.SelectedResourceID, propertyPrefix), nil
	}

	var resp accountSummariesResponse
	if err := g.Client.GetJSON(ctx, g.cfg.AnalyticsAdminURL+"/accountSummaries", nil, &resp); err != nil {
		return "", err
	}

	for _, account := range resp.AccountSummaries {
		for _, property := range account.PropertySummaries {
			if id := strings.TrimPrefix(property.Property, propertyPrefix); id != "" {
				return id, nil
			}
		}
	}

	return "", integration.NewError(domain.PlatformGoogleAnalytics, integration.ErrNoAccountFound, "nenhuma propriedade GA4 encontrada")
}

func (g *Integration) FetchData(ctx context.Context, startDate, endDate time.Time) ([]domain.DailyPoint, error) {
	propertyID, err := g.resolveProperty(ctx)
	if err != nil {
		return nil, err
	}

	body := reportRequest{
		DateRanges: []dateRange{{StartDate: startDate.Format(domain.DateLayout), EndDate: endDate.Format(domain.DateLayout)}},
		Dimensions: []named{{Name: "date"}},
	}
	for _, metric := range reportMetrics {
		body.Metrics = append(body.Metrics, named{Name: metric})
	}

	var resp reportResponse
	endpoint := fmt.Sprintf("%s/properties/%s:runReport", g.cfg.AnalyticsDataURL, url.PathEscape(propertyID))
	if err := g.Client.PostJSON(ctx, endpoint, body, &resp); err != nil {
		return nil, err
	}

	return normalize(resp)
}

// normalize: sessions→impressions, users→reach, pageViews→clicks,
// pageViews×engagementRate→engagement; GA não tem seguidores.
func normalize(resp reportResponse) ([]domain.DailyPoint, error) {
	points := make([]domain.DailyPoint, 0, len(resp.Rows))

	for _, row := range resp.Rows {
		if len(row.DimensionValues) == 0 || len(row.MetricValues) < len(reportMetrics) {
			return nil, integration.NewError(domain.PlatformGoogleAnalytics, integration.ErrMalformedResponse, "linha do relatório incompleta")
		}

		day, err := time.Parse(reportDateLayout, row.DimensionValues[0].Value)
		if err != nil {
			return nil, integration.NewError(domain.PlatformGoogleAnalytics, integration.ErrMalformedResponse, "data inválida: "+row.DimensionValues[0].Value)
		}

		values := make([]float64, len(reportMetrics))
		for i := range reportMetrics {
			values[i], err = parseMetric(row.MetricValues[i].Value)
			if err != nil {
				return nil, integration.NewError(domain.PlatformGoogleAnalytics, integration.ErrMalformedResponse, err.Error())
			}
		}

		sessions, users, pageViews, engagementRate, conversions, events := values[0], values[1], values[2], values[3], values[4], values[5]

		point := domain.DailyPoint{
			Date: day.Format(domain.DateLayout),
			NormalizedMetrics: domain.NormalizedMetrics{
				Impressions: int64(sessions),
				Reach:       int64(users),
				Engagement:  int64(math.Round(pageViews * engagementRate)),
				Clicks:      int64(pageViews),
				Conversions: int64(math.Round(conversions)),
				Extra: map[string]float64{
					"engagement_rate": utils.RoundWithTwoDecimalPlace(engagementRate),
					"events":          events,
				},
			},
		}
		point.Clamp()
		points = append(points, point)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

func parseMetric(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("valor de métrica inválido: %q", raw)
	}
	return v, nil
}

// AuthorizationURL monta a URL de consentimento; o state identifica a plataforma
func AuthorizationURL(cfg config.Google, redirectURL string) string {
	params := url.Values{}
	params.Set("client_id", cfg.ClientID)
	params.Set("redirect_uri", redirectURL)
	params.Set("scope", strings.Join(Scopes, " "))
	params.Set("response_type", "code")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", string(domain.PlatformGoogleAnalytics))
	return cfg.AuthURL + "?" + params.Encode()
}
