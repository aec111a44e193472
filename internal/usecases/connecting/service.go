package connecting

import (
	"context"
	"strings"

	"github.com/vfg2006/social-insights-api/infrastructure/integrator"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/tokening"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

// GoogleCallback é o identificador do redirect compartilhado por Analytics e YouTube
const GoogleCallback = "google"

type Connector interface {
	Exchange(ctx context.Context, ownerID, platform, code, state string) (*domain.ConnectionStatus, error)
	ListResources(ctx context.Context, ownerID string, platform domain.PlatformKey) ([]domain.SelectableResource, error)
	SelectResource(ctx context.Context, ownerID string, platform domain.PlatformKey, resourceID string) error
	Status(ctx context.Context, ownerID string, verify bool) ([]domain.ConnectionStatus, error)
	Refresh(ctx context.Context, ownerID string, platform domain.PlatformKey) (*domain.ConnectionStatus, error)
	Disconnect(ctx context.Context, ownerID string, platform domain.PlatformKey) error
	DisconnectAll(ctx context.Context, ownerID string) error
}

type Service struct {
	tokens  tokening.ManagerProvider
	factory integrator.IntegrationFactory
}

func NewService(tokens tokening.ManagerProvider, factory integrator.IntegrationFactory) *Service {
	return &Service{
		tokens:  tokens,
		factory: factory,
	}
}

// resolveExchangePlatform decide a plataforma do callback. No Google o state diz
// qual produto pediu a autorização; no Twitter o state é o code_verifier.
func resolveExchangePlatform(platform, state string) (domain.PlatformKey, string) {
	if strings.EqualFold(strings.TrimSpace(platform), GoogleCallback) {
		target := domain.NormalizePlatform(state)
		if target != domain.PlatformYouTube {
			target = domain.PlatformGoogleAnalytics
		}
		return target, ""
	}

	key := domain.NormalizePlatform(platform)
	if key == domain.PlatformTwitter {
		return key, state
	}
	return key, ""
}

func (s *Service) Exchange(ctx context.Context, ownerID, platform, code, state string) (*domain.ConnectionStatus, error) {
	key, verifier := resolveExchangePlatform(platform, state)
	if !s.factory.IsSupported(key) {
		return nil, integration.NewError(key, integration.ErrUnsupportedPlatform, "plataforma desconhecida: "+key.String())
	}
	if strings.TrimSpace(code) == "" {
		return nil, integration.NewError(key, integration.ErrValidation, "authorization code ausente")
	}

	tokens := s.tokens.ForOwner(ownerID)
	client, err := s.factory.Create(key, nil, tokens)
	if err != nil {
		return nil, err
	}

	exchanger, ok := client.(integration.Exchanger)
	if !ok {
		return nil, integration.NewError(key, integration.ErrUnsupportedPlatform, "troca de código não suportada")
	}

	record, err := exchanger.ExchangeCode(ctx, code, verifier)
	if err != nil {
		log.Area(ctx, "integrations").WithError(err).WithField("platform", key).Warn("integrations: code exchange failed")
		return nil, err
	}

	if err := tokens.Set(ctx, key, record); err != nil {
		return nil, err
	}

	log.Area(ctx, "integrations").WithFields(log.Fields{
		"owner_id":          ownerID,
		"platform":          key,
		"has_refresh_token": record.RefreshToken != "",
	}).Info("integrations: platform connected")

	return s.status(ctx, tokens, key, false), nil
}

// connectedClient monta a variante a partir da credencial guardada
func (s *Service) connectedClient(ctx context.Context, tokens tokening.TokenManager, platform domain.PlatformKey) (integration.Integration, error) {
	if !s.factory.IsSupported(platform) {
		return nil, integration.NewError(platform, integration.ErrUnsupportedPlatform, "plataforma desconhecida: "+platform.String())
	}

	credential, err := tokens.Get(ctx, platform)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, integration.NewError(platform, integration.ErrMissingCredential, "plataforma não conectada")
	}

	return s.factory.Create(platform, credential, tokens)
}

func (s *Service) ListResources(ctx context.Context, ownerID string, platform domain.PlatformKey) ([]domain.SelectableResource, error) {
	client, err := s.connectedClient(ctx, s.tokens.ForOwner(ownerID), platform)
	if err != nil {
		return nil, err
	}

	lister, ok := client.(integration.ResourceLister)
	if !ok {
		return nil, integration.NewError(platform, integration.ErrUnsupportedPlatform, "plataforma sem sub-recursos")
	}

	return lister.ListResources(ctx)
}

func (s *Service) SelectResource(ctx context.Context, ownerID string, platform domain.PlatformKey, resourceID string) error {
	if platform.SelectionKey() == "" {
		return integration.NewError(platform, integration.ErrUnsupportedPlatform, "plataforma sem sub-recursos")
	}
	if strings.TrimSpace(resourceID) == "" {
		return integration.NewError(platform, integration.ErrValidation, "resource_id obrigatório")
	}

	tokens := s.tokens.ForOwner(ownerID)
	if !tokens.IsConnected(ctx, platform) {
		return integration.NewError(platform, integration.ErrMissingCredential, "plataforma não conectada")
	}

	return tokens.SelectResource(ctx, platform, strings.TrimSpace(resourceID))
}

// Status percorre as chaves conhecidas. verify dispara testConnection, que é só consultivo.
func (s *Service) Status(ctx context.Context, ownerID string, verify bool) ([]domain.ConnectionStatus, error) {
	tokens := s.tokens.ForOwner(ownerID)

	statuses := make([]domain.ConnectionStatus, 0, len(domain.KnownPlatforms))
	for _, platform := range domain.KnownPlatforms {
		statuses = append(statuses, *s.status(ctx, tokens, platform, verify))
	}
	return statuses, nil
}

func (s *Service) status(ctx context.Context, tokens tokening.TokenManager, platform domain.PlatformKey, verify bool) *domain.ConnectionStatus {
	status := &domain.ConnectionStatus{Platform: platform}

	credential, err := tokens.Get(ctx, platform)
	if err != nil || credential == nil {
		return status
	}

	status.Connected = true
	status.ExpiresAt = credential.ExpiresAt
	status.SelectedResourceID = credential.SelectedResourceID
	status.Username = credential.Username
	if status.Username == "" {
		status.Username = credential.UserName
	}

	if verify && s.factory.IsSupported(platform) {
		client, err := s.factory.Create(platform, credential, tokens)
		if err == nil {
			ok := client.TestConnection(ctx)
			status.Verified = &ok
		}
	}

	return status
}

func (s *Service) Refresh(ctx context.Context, ownerID string, platform domain.PlatformKey) (*domain.ConnectionStatus, error) {
	tokens := s.tokens.ForOwner(ownerID)
	client, err := s.connectedClient(ctx, tokens, platform)
	if err != nil {
		return nil, err
	}

	if _, err := client.RefreshToken(ctx); err != nil {
		log.Area(ctx, "tokens").WithError(err).WithField("platform", platform).Warn("tokens: refresh failed")
		return nil, err
	}

	return s.status(ctx, tokens, platform, false), nil
}

func (s *Service) Disconnect(ctx context.Context, ownerID string, platform domain.PlatformKey) error {
	if !platform.IsKnown() {
		return integration.NewError(platform, integration.ErrUnsupportedPlatform, "plataforma desconhecida: "+platform.String())
	}
	return s.tokens.ForOwner(ownerID).Remove(ctx, platform)
}

func (s *Service) DisconnectAll(ctx context.Context, ownerID string) error {
	return s.tokens.ForOwner(ownerID).DisconnectAll(ctx)
}
