package twitter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

const (
	DisplayName = "Twitter/X"
	Description = "Connect your Twitter/X account"

	Scope = "tweet.read tweet.write users.read offline.access"

	MaxTweetLength = 280

	pageSize = 100
	// A API recusa end_time a menos de 10s do horário da requisição
	endTimeMargin = 30 * time.Second
)

type Integration struct {
	integration.Base
	cfg         config.Twitter
	redirectURL string
	maxPages    int
	now         func() time.Time
}

func New(client *integration.Client, cfg config.Twitter, redirectURL string, maxPages int) *Integration {
	if maxPages <= 0 {
		maxPages = 1
	}
	return &Integration{
		Base:        integration.NewBase(client, domain.PlatformTwitter, DisplayName),
		cfg:         cfg,
		redirectURL: redirectURL,
		maxPages:    maxPages,
		now:         time.Now,
	}
}

func (t *Integration) tokenEndpoint() integration.TokenEndpoint {
	return integration.TokenEndpoint{URL: t.cfg.TokenURL, ClientID: t.cfg.ClientID, ClientSecret: t.cfg.ClientSecret, BasicAuth: true}
}

func (t *Integration) me(ctx context.Context, token string) (*user, error) {
	var resp userResponse
	err := t.Client.Send(ctx, integration.Request{
		Method: http.MethodGet,
		URL:    t.cfg.APIURL + "/users/me",
		Query:  url.Values{"user.fields": {"id,name,username,public_metrics"}},
		Token:  token,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Data.ID == "" {
		return nil, integration.NewError(domain.PlatformTwitter, integration.ErrNoAccountFound, "usuário do Twitter não encontrado")
	}
	return &resp.Data, nil
}

func (t *Integration) TestConnection(ctx context.Context) bool {
	if _, err := t.me(ctx, ""); err != nil {
		log.Area(ctx, "integrations").WithError(err).Debug("integrations: twitter connection test failed")
		return false
	}
	return true
}

func (t *Integration) RefreshToken(ctx context.Context) (*domain.CredentialRecord, error) {
	return t.Client.RefreshWithRefreshToken(ctx, t.tokenEndpoint())
}

// ExchangeCode troca o code usando o verifier PKCE que voltou no state
func (t *Integration) ExchangeCode(ctx context.Context, code, codeVerifier string) (*domain.CredentialRecord, error) {
	if codeVerifier == "" {
		return nil, integration.NewError(domain.PlatformTwitter, integration.ErrValidation, "code_verifier ausente no state")
	}

	form := url.Values{}
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", t.redirectURL)
	form.Set("code_verifier", codeVerifier)

	resp, err := t.Client.ExchangeToken(ctx, t.tokenEndpoint(), form)
	if err != nil {
		return nil, err
	}
	record := resp.Record()

	if record.RefreshToken == "" {
		log.Area(ctx, "integrations").Warn("integrations: twitter returned no refresh token, offline.access may be disabled")
	}

	if u, err := t.me(ctx, record.AccessToken); err != nil {
		log.Area(ctx, "integrations").WithError(err).Warn("integrations: twitter identity lookup failed")
	} else {
		record.UserID = u.ID
		record.UserName = u.Name
		record.Username = u.Username
	}

	return record, nil
}

// FetchData soma as métricas públicas dos tweets por dia de criação.
// O total de seguidores é um valor instantâneo e fica no último dia do período.
func (t *Integration) FetchData(ctx context.Context, startDate, endDate time.Time) ([]domain.DailyPoint, error) {
	u, err := t.me(ctx, "")
	if err != nil {
		return nil, err
	}

	end := endDate.AddDate(0, 0, 1)
	if latest := t.now().Add(-endTimeMargin); end.After(latest) {
		end = latest
	}

	query := url.Values{}
	query.Set("start_time", startDate.UTC().Format(time.RFC3339))
	query.Set("end_time", end.UTC().Format(time.RFC3339))
	query.Set("tweet.fields", "public_metrics,created_at")
	query.Set("max_results", fmt.Sprint(pageSize))

	byDay := make(map[string]*domain.DailyPoint)
	endpoint := fmt.Sprintf("%s/users/%s/tweets", t.cfg.APIURL, url.PathEscape(u.ID))

	for page := 0; page < t.maxPages; page++ {
		var resp timelineResponse
		if err := t.Client.GetJSON(ctx, endpoint, query, &resp); err != nil {
			return nil, err
		}

		for _, tw := range resp.Data {
			created, err := time.Parse(time.RFC3339, tw.CreatedAt)
			if err != nil {
				return nil, integration.NewError(domain.PlatformTwitter, integration.ErrMalformedResponse, "created_at inválido: "+tw.CreatedAt)
			}
			day := created.UTC().Format(domain.DateLayout)

			point, ok := byDay[day]
			if !ok {
				point = &domain.DailyPoint{Date: day}
				byDay[day] = point
			}
			m := tw.PublicMetrics
			point.Impressions += m.ImpressionCount
			point.Engagement += m.LikeCount + m.ReplyCount + m.RetweetCount + m.QuoteCount
		}

		if resp.Meta.NextToken == "" {
			break
		}
		query.Set("pagination_token", resp.Meta.NextToken)
	}

	// A API só expõe o total atual de seguidores, sem série diária. Ele vira um ponto
	// no último dia do intervalo, o único dia que existe mesmo sem tweet.
	lastDay := endDate.Format(domain.DateLayout)
	point, ok := byDay[lastDay]
	if !ok {
		point = &domain.DailyPoint{Date: lastDay}
		byDay[lastDay] = point
	}
	point.Followers = u.PublicMetrics.FollowersCount

	points := make([]domain.DailyPoint, 0, len(byDay))
	for _, p := range byDay {
		p.Clamp()
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

// Post publica um tweet. O texto é validado antes de qualquer chamada de rede.
func (t *Integration) Post(ctx context.Context, item *domain.ContentCalendarItem) (*domain.PostResult, error) {
	text, err := TweetText(item)
	if err != nil {
		return nil, err
	}
	if !t.Client.Credential.Valid() {
		return nil, integration.NewError(domain.PlatformTwitter, integration.ErrMissingCredential, "twitter não conectado")
	}

	var resp createTweetResponse
	if err := t.Client.PostJSON(ctx, t.cfg.APIURL+"/tweets", createTweetRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	if resp.Data.ID == "" {
		return nil, integration.NewError(domain.PlatformTwitter, integration.ErrMalformedResponse, "id do tweet ausente")
	}

	log.Area(ctx, "posting").WithFields(log.Fields{
		"platform": domain.PlatformTwitter,
		"tweet_id": resp.Data.ID,
	}).Info("posting: tweet published")

	return &domain.PostResult{Success: true, PlatformPostID: resp.Data.ID}, nil
}

// TweetText compõe legenda e hashtags e aplica o limite de caracteres
func TweetText(item *domain.ContentCalendarItem) (string, error) {
	if item == nil {
		return "", integration.NewError(domain.PlatformTwitter, integration.ErrValidation, "conteúdo ausente")
	}

	text := item.ComposedText()
	if text == "" {
		return "", integration.NewError(domain.PlatformTwitter, integration.ErrValidation, "o texto do tweet é obrigatório")
	}
	if n := utf8.RuneCountInString(text); n > MaxTweetLength {
		return "", integration.NewError(domain.PlatformTwitter, integration.ErrValidation, fmt.Sprintf("o tweet tem %d caracteres, o limite é %d", n, MaxTweetLength))
	}
	return text, nil
}

// AuthorizationURL leva o verifier no state para o callback recuperá-lo sem sessão
func AuthorizationURL(cfg config.Twitter, redirectURL, verifier, challenge string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", cfg.ClientID)
	params.Set("redirect_uri", redirectURL)
	params.Set("scope", Scope)
	params.Set("state", verifier)
	params.Set("code_challenge", challenge)
	params.Set("code_challenge_method", "S256")
	return cfg.AuthURL + "?" + params.Encode()
}
