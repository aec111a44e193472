package meta

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
)

const (
	DisplayName = "Meta (Facebook & Instagram)"
	Description = "Connect your Facebook and Instagram business accounts"

	Scope = "pages_show_list,pages_read_engagement,pages_manage_posts,instagram_basic,instagram_content_publish,business_management"

	// end_time da Graph API marca o fim do dia, o valor pertence ao dia anterior
	endTimeLayout = "2006-01-02T15:04:05-0700"
)

// Métricas diárias da página; o mapeamento para os campos normalizados fica em normalize
var insightMetrics = []string{
	"page_impressions",
	"page_impressions_unique",
	"page_post_engagements",
	"page_consumptions",
	"page_fan_adds",
}

type Integration struct {
	integration.Base
	cfg         config.Meta
	redirectURL string
}

func New(client *integration.Client, cfg config.Meta, redirectURL string) *Integration {
	client.IsAuthFailure = isAuthFailure
	return &Integration{
		Base:        integration.NewBase(client, domain.PlatformMeta, DisplayName),
		cfg:         cfg,
		redirectURL: redirectURL,
	}
}

func (m *Integration) TestConnection(ctx context.Context) bool {
	var me meResponse
	if err := m.Client.GetJSON(ctx, m.cfg.URL+"/me", url.Values{"fields": {"id,name"}}, &me); err != nil {
		log.Area(ctx, "integrations").WithError(err).Debug("integrations: meta connection test failed")
		return false
	}
	return me.ID != ""
}

// exchange chama oauth/access_token; usado tanto no code quanto no fb_exchange_token
func (m *Integration) exchange(ctx context.Context, params url.Values) (*integration.TokenResponse, error) {
	params.Set("client_id", m.cfg.AppID)
	params.Set("client_secret", m.cfg.AppSecret)

	var resp integration.TokenResponse
	err := m.Client.Send(ctx, integration.Request{
		Method:          http.MethodGet,
		URL:             m.cfg.URL + "/oauth/access_token",
		Query:           params,
		Unauthenticated: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, integration.NewError(domain.PlatformMeta, integration.ErrMalformedResponse, "access_token ausente na resposta")
	}
	return &resp, nil
}

func (m *Integration) longLived(ctx context.Context, shortLived string) (*integration.TokenResponse, error) {
	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("fb_exchange_token", shortLived)
	return m.exchange(ctx, params)
}

// RefreshToken: a Graph API não emite refresh token, então o token de longa
// duração atual é trocado por um novo via fb_exchange_token.
func (m *Integration) RefreshToken(ctx context.Context) (*domain.CredentialRecord, error) {
	current := m.Client.AccessToken()
	if current == "" {
		return nil, integration.NewError(domain.PlatformMeta, integration.ErrAuthRefresh, "nenhum token armazenado")
	}

	resp, err := m.longLived(ctx, current)
	if err != nil {
		return nil, integration.NewError(domain.PlatformMeta, integration.ErrAuthRefresh, err.Error())
	}

	return m.Client.Persist(ctx, integration.MergeToken(m.Client.Credential, resp))
}

func (m *Integration) ExchangeCode(ctx context.Context, code, _ string) (*domain.CredentialRecord, error) {
	params := url.Values{}
	params.Set("redirect_uri", m.redirectURL)
	params.Set("code", code)

	short, err := m.exchange(ctx, params)
	if err != nil {
		return nil, err
	}

	token := short
	if long, err := m.longLived(ctx, short.AccessToken); err != nil {
		log.Area(ctx, "integrations").WithError(err).Warn("integrations: meta long-lived exchange failed, keeping short-lived token")
	} else {
		token = long
	}

	record := token.Record()

	var me meResponse
	if err := m.Client.Send(ctx, integration.Request{
		Method: http.MethodGet,
		URL:    m.cfg.URL + "/me",
		Query:  url.Values{"fields": {"id,name"}},
		Token:  record.AccessToken,
	}, &me); err != nil {
		log.Area(ctx, "integrations").WithError(err).Warn("integrations: meta identity lookup failed")
	} else {
		record.UserID = me.ID
		record.UserName = me.Name
	}

	return record, nil
}

func (m *Integration) pages(ctx context.Context) ([]page, error) {
	var resp accountsResponse
	if err := m.Client.GetJSON(ctx, m.cfg.URL+"/me/accounts", url.Values{"fields": {"id,name,category,access_token"}}, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListResources lista as páginas do Facebook administradas pelo usuário
func (m *Integration) ListResources(ctx context.Context) ([]domain.SelectableResource, error) {
	pages, err := m.pages(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]domain.SelectableResource, 0, len(pages))
	for _, p := range pages {
		resources = append(resources, domain.SelectableResource{ID: p.ID, Name: p.Name, Category: p.Category})
	}
	return resources, nil
}

// resolvePage devolve a página selecionada (ou a primeira) com o token de página
func (m *Integration) resolvePage(ctx context.Context) (page, error) {
	pages, err := m.pages(ctx)
	if err != nil {
		return page{}, err
	}

	selected := ""
	if m.Client.Credential != nil {
		selected = m.Client.Credential.SelectedResourceID
	}

	for _, p := range pages {
		if p.ID == "" {
			continue
		}
		if selected == "" || p.ID == selected {
			return p, nil
		}
	}

	return page{}, integration.NewError(domain.PlatformMeta, integration.ErrNoAccountFound, "nenhuma página do Facebook encontrada")
}

func (m *Integration) FetchData(ctx context.Context, startDate, endDate time.Time) ([]domain.DailyPoint, error) {
	p, err := m.resolvePage(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("period", "day")
	query.Set("since", strconv.FormatInt(startDate.Unix(), 10))
	query.Set("until", strconv.FormatInt(endDate.AddDate(0, 0, 1).Unix(), 10))
	query.Set("metric", strings.Join(insightMetrics, ","))

	var resp insightsResponse
	err = m.Client.Send(ctx, integration.Request{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/%s/insights", m.cfg.URL, url.PathEscape(p.ID)),
		Query:  query,
		Token:  p.AccessToken,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return normalize(resp)
}

// normalize agrupa cada valor no dia anterior ao end_time.
// Conversões não existem nos insights de página e ficam em zero.
func normalize(resp insightsResponse) ([]domain.DailyPoint, error) {
	byDay := make(map[string]*domain.DailyPoint)

	for _, series := range resp.Data {
		for _, v := range series.Values {
			end, err := time.Parse(endTimeLayout, v.EndTime)
			if err != nil {
				return nil, integration.NewError(domain.PlatformMeta, integration.ErrMalformedResponse, "end_time inválido: "+v.EndTime)
			}
			day := end.Add(-24 * time.Hour).Format(domain.DateLayout)

			value, err := insightNumber(v.Value)
			if err != nil {
				return nil, integration.NewError(domain.PlatformMeta, integration.ErrMalformedResponse, err.Error())
			}

			point, ok := byDay[day]
			if !ok {
				point = &domain.DailyPoint{Date: day}
				byDay[day] = point
			}

			switch series.Name {
			case "page_impressions":
				point.Impressions += value
			case "page_impressions_unique":
				point.Reach += value
			case "page_post_engagements":
				point.Engagement += value
			case "page_consumptions":
				point.Clicks += value
			case "page_fan_adds":
				point.Followers += value
			}
		}
	}

	points := make([]domain.DailyPoint, 0, len(byDay))
	for _, p := range byDay {
		p.Clamp()
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

// insightNumber aceita valores escalares e objetos por categoria, que são somados
func insightNumber(raw []byte) (int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}

	var scalar float64
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return int64(math.Round(scalar)), nil
	}

	var breakdown map[string]float64
	if err := json.Unmarshal(raw, &breakdown); err != nil {
		return 0, fmt.Errorf("valor de insight inválido: %s", string(raw))
	}
	var total float64
	for _, v := range breakdown {
		total += v
	}
	return int64(math.Round(total)), nil
}

// AuthorizationURL monta a URL do diálogo OAuth do Facebook
func AuthorizationURL(cfg config.Meta, redirectURL string) string {
	params := url.Values{}
	params.Set("client_id", cfg.AppID)
	params.Set("redirect_uri", redirectURL)
	params.Set("scope", Scope)
	params.Set("response_type", "code")
	return cfg.DialogURL + "?" + params.Encode()
}
