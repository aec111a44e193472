package youtube

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/social-insights-api/infrastructure/integrator/googleanalytics"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

const (
	DisplayName = "YouTube Analytics"
	Description = "Connect your YouTube channel"
)

var Scopes = []string{
	"https://www.googleapis.com/auth/youtube.readonly",
	"https://www.googleapis.com/auth/yt-analytics.readonly",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/userinfo.email",
}

var reportMetrics = []string{
	"views",
	"estimatedMinutesWatched",
	"averageViewDuration",
	"subscribersGained",
	"subscribersLost",
	"likes",
	"comments",
	"shares",
}

type channelsResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

type reportResponse struct {
	ColumnHeaders []struct {
		Name string `json:"name"`
	} `json:"columnHeaders"`
	Rows [][]any `json:"rows"`
}

type Integration struct {
	integration.Base
	cfg         config.Google
	redirectURL string
}

func New(client *integration.Client, cfg config.Google, redirectURL string) *Integration {
	return &Integration{
		Base:        integration.NewBase(client, domain.PlatformYouTube, DisplayName),
		cfg:         cfg,
		redirectURL: redirectURL,
	}
}

func (y *Integration) tokenEndpoint() integration.TokenEndpoint {
	return integration.TokenEndpoint{URL: y.cfg.TokenURL, ClientID: y.cfg.ClientID, ClientSecret: y.cfg.ClientSecret}
}

func (y *Integration) TestConnection(ctx context.Context) bool {
	var resp channelsResponse
	err := y.Client.GetJSON(ctx, y.cfg.YouTubeDataURL+"/channels", url.Values{"part": {"snippet"}, "mine": {"true"}}, &resp)
	if err != nil {
		log.Area(ctx, "integrations").WithError(err).Debug("integrations: youtube connection test failed")
		return false
	}
	return true
}

func (y *Integration) RefreshToken(ctx context.Context) (*domain.CredentialRecord, error) {
	return y.Client.RefreshWithRefreshToken(ctx, y.tokenEndpoint())
}

func (y *Integration) ExchangeCode(ctx context.Context, code, _ string) (*domain.CredentialRecord, error) {
	record, err := googleanalytics.ExchangeGoogleCode(ctx, y.Client, y.tokenEndpoint(), y.cfg.UserInfoURL, code, y.redirectURL)
	if err != nil {
		return nil, err
	}

	// O canal é opcional na conexão; sem ele a descoberta é refeita na consulta
	y.Client.Credential = record
	if channelID, err := y.channelID(ctx); err == nil {
		record.ChannelID = channelID
	}
	return record, nil
}

func (y *Integration) channelID(ctx context.Context) (string, error) {
	var resp channelsResponse
	if err := y.Client.GetJSON(ctx, y.cfg.YouTubeDataURL+"/channels", url.Values{"part": {"id"}, "mine": {"true"}}, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 || resp.Items[0].ID == "" {
		return "", integration.NewError(domain.PlatformYouTube, integration.ErrNoAccountFound, "nenhum canal do YouTube encontrado")
	}
	return resp.Items[0].ID, nil
}

// knownChannelID devolve o canal salvo na troca do código, quando houver
func (y *Integration) knownChannelID() string {
	if y.Client.Credential == nil {
		return ""
	}
	return y.Client.Credential.ChannelID
}

func (y *Integration) FetchData(ctx context.Context, startDate, endDate time.Time) ([]domain.DailyPoint, error) {
	channelID := y.knownChannelID()
	if channelID == "" {
		discovered, err := y.channelID(ctx)
		if err != nil {
			return nil, err
		}
		channelID = discovered
	}

	query := url.Values{}
	query.Set("ids", "channel=="+channelID)
	query.Set("startDate", startDate.Format(domain.DateLayout))
	query.Set("endDate", endDate.Format(domain.DateLayout))
	query.Set("metrics", strings.Join(reportMetrics, ","))
	query.Set("dimensions", "day")

	var resp reportResponse
	if err := y.Client.GetJSON(ctx, y.cfg.YouTubeAnalyticsURL+"/reports", query, &resp); err != nil {
		return nil, err
	}

	return normalize(resp)
}

// normalize: views alimentam impressões, alcance e cliques; likes+comentários+shares
// formam o engajamento; inscritos ganhos são conversões e o saldo vira seguidores.
func normalize(resp reportResponse) ([]domain.DailyPoint, error) {
	points := make([]domain.DailyPoint, 0, len(resp.Rows))

	for _, row := range resp.Rows {
		if len(row) < len(reportMetrics)+1 {
			return nil, integration.NewError(domain.PlatformYouTube, integration.ErrMalformedResponse, "linha do relatório incompleta")
		}

		day, ok := row[0].(string)
		if !ok {
			return nil, integration.NewError(domain.PlatformYouTube, integration.ErrMalformedResponse, "dimensão day ausente")
		}
		if _, err := time.Parse(domain.DateLayout, day); err != nil {
			return nil, integration.NewError(domain.PlatformYouTube, integration.ErrMalformedResponse, "data inválida: "+day)
		}

		values := make(map[string]float64, len(reportMetrics))
		for i, metric := range reportMetrics {
			v, err := number(row[i+1])
			if err != nil {
				return nil, integration.NewError(domain.PlatformYouTube, integration.ErrMalformedResponse, err.Error())
			}
			values[metric] = v
		}

		views := int64(values["views"])
		gained := int64(values["subscribersGained"])
		net := gained - int64(values["subscribersLost"])
		if net < 0 {
			net = 0
		}

		point := domain.DailyPoint{
			Date: day,
			NormalizedMetrics: domain.NormalizedMetrics{
				Impressions: views,
				Reach:       views,
				Clicks:      views,
				Engagement:  int64(values["likes"] + values["comments"] + values["shares"]),
				Conversions: gained,
				Followers:   net,
				Extra: map[string]float64{
					"watch_minutes":     values["estimatedMinutesWatched"],
					"avg_view_duration": utils.RoundWithTwoDecimalPlace(values["averageViewDuration"]),
					"subscribers_lost":  values["subscribersLost"],
				},
			},
		}
		point.Clamp()
		points = append(points, point)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

func number(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("valor de métrica inválido: %v", v)
		}
		return v, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("valor de métrica inválido: %v", v)
	}
}

func AuthorizationURL(cfg config.Google, redirectURL string) string {
	params := url.Values{}
	params.Set("client_id", cfg.ClientID)
	params.Set("redirect_uri", redirectURL)
	params.Set("scope", strings.Join(Scopes, " "))
	params.Set("response_type", "code")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", string(domain.PlatformYouTube))
	return cfg.AuthURL + "?" + params.Encode()
}
