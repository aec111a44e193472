package integrator

import (
	"net/http"

	"github.com/vfg2006/social-insights-api/infrastructure/integrator/googleanalytics"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/twitter"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/telemetry"
)

const (
	googleCallbackPath  = "/api/auth/google/callback"
	metaCallbackPath    = "/api/auth/meta/callback"
	twitterCallbackPath = "/api/auth/twitter/callback"
)

// catalogOrder é a ordem de exibição no dashboard
var catalogOrder = []domain.PlatformKey{
	domain.PlatformMeta,
	domain.PlatformTwitter,
	domain.PlatformGoogleAnalytics,
	domain.PlatformYouTube,
}

type IntegrationFactory interface {
	Create(platform domain.PlatformKey, credential *domain.CredentialRecord, keeper integration.CredentialKeeper) (integration.Integration, error)
	SupportedPlatforms() ([]domain.PlatformInfo, error)
	Platform(platform domain.PlatformKey) (domain.PlatformInfo, error)
	IsSupported(platform domain.PlatformKey) bool
}

type Factory struct {
	cfg        *config.Config
	httpClient *http.Client
	metrics    *telemetry.Metrics
}

func NewFactory(cfg *config.Config, httpClient *http.Client, metrics *telemetry.Metrics) *Factory {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Integrations.RequestTimeout}
	}
	return &Factory{
		cfg:        cfg,
		httpClient: httpClient,
		metrics:    metrics,
	}
}

func (f *Factory) redirectURL(path string) string {
	return f.cfg.App.URL + path
}

func (f *Factory) IsSupported(platform domain.PlatformKey) bool {
	for _, p := range catalogOrder {
		if p == platform {
			return true
		}
	}
	return false
}

// Create só constrói a variante; nenhuma chamada de rede acontece aqui
func (f *Factory) Create(platform domain.PlatformKey, credential *domain.CredentialRecord, keeper integration.CredentialKeeper) (integration.Integration, error) {
	client := integration.NewClient(platform, f.httpClient, keeper, f.metrics, credential)

	switch platform {
	case domain.PlatformGoogleAnalytics:
		return googleanalytics.New(client, f.cfg.Google, f.redirectURL(googleCallbackPath)), nil
	case domain.PlatformYouTube:
		return youtube.New(client, f.cfg.Google, f.redirectURL(googleCallbackPath)), nil
	case domain.PlatformMeta:
		return meta.New(client, f.cfg.Meta, f.redirectURL(metaCallbackPath)), nil
	case domain.PlatformTwitter:
		return twitter.New(client, f.cfg.Twitter, f.redirectURL(twitterCallbackPath), f.cfg.Integrations.TwitterMaxPages), nil
	default:
		return nil, integration.NewError(platform, integration.ErrUnsupportedPlatform, "plataforma desconhecida: "+platform.String())
	}
}

// SupportedPlatforms monta o catálogo; cada chamada gera um verifier PKCE novo para o Twitter
func (f *Factory) SupportedPlatforms() ([]domain.PlatformInfo, error) {
	catalog := make([]domain.PlatformInfo, 0, len(catalogOrder))
	for _, platform := range catalogOrder {
		info, err := f.Platform(platform)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, info)
	}
	return catalog, nil
}

func (f *Factory) Platform(platform domain.PlatformKey) (domain.PlatformInfo, error) {
	switch platform {
	case domain.PlatformMeta:
		return domain.PlatformInfo{
			Identifier:       platform,
			DisplayName:      meta.DisplayName,
			Description:      meta.Description,
			AuthorizationURL: meta.AuthorizationURL(f.cfg.Meta, f.redirectURL(metaCallbackPath)),
		}, nil
	case domain.PlatformTwitter:
		verifier, err := GenerateCodeVerifier()
		if err != nil {
			return domain.PlatformInfo{}, err
		}
		return domain.PlatformInfo{
			Identifier:       platform,
			DisplayName:      twitter.DisplayName,
			Description:      twitter.Description,
			AuthorizationURL: twitter.AuthorizationURL(f.cfg.Twitter, f.redirectURL(twitterCallbackPath), verifier, CodeChallenge(verifier)),
		}, nil
	case domain.PlatformGoogleAnalytics:
		return domain.PlatformInfo{
			Identifier:       platform,
			DisplayName:      googleanalytics.DisplayName,
			Description:      googleanalytics.Description,
			AuthorizationURL: googleanalytics.AuthorizationURL(f.cfg.Google, f.redirectURL(googleCallbackPath)),
		}, nil
	case domain.PlatformYouTube:
		return domain.PlatformInfo{
			Identifier:       platform,
			DisplayName:      youtube.DisplayName,
			Description:      youtube.Description,
			AuthorizationURL: youtube.AuthorizationURL(f.cfg.Google, f.redirectURL(googleCallbackPath)),
		}, nil
	default:
		return domain.PlatformInfo{}, integration.NewError(platform, integration.ErrUnsupportedPlatform, "plataforma desconhecida: "+platform.String())
	}
}
