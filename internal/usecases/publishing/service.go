package publishing

import (
	"context"

	"github.com/vfg2006/social-insights-api/infrastructure/integrator"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/tokening"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

type Publisher interface {
	// PostContent publica o item na plataforma indicada nele
	PostContent(ctx context.Context, ownerID string, item *domain.ContentCalendarItem) (*domain.PostResult, error)
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

func (s *Service) PostContent(ctx context.Context, ownerID string, item *domain.ContentCalendarItem) (*domain.PostResult, error) {
	if item == nil {
		return nil, integration.NewError("", integration.ErrValidation, "item de conteúdo ausente")
	}

	platform := domain.NormalizePlatform(item.Platform.String())
	if !s.factory.IsSupported(platform) {
		return nil, integration.NewError(platform, integration.ErrUnsupportedPlatform, "plataforma desconhecida: "+platform.String())
	}

	tokens := s.tokens.ForOwner(ownerID)
	credential, err := tokens.Get(ctx, platform)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, integration.NewError(platform, integration.ErrMissingCredential, "plataforma não conectada")
	}

	client, err := s.factory.Create(platform, credential, tokens)
	if err != nil {
		return nil, err
	}

	poster, ok := client.(integration.Poster)
	if !ok {
		return nil, integration.NewError(platform, integration.ErrUnsupportedPlatform, "publicação não suportada")
	}

	logger := log.Area(ctx, "posting").WithFields(log.Fields{
		"owner_id": ownerID,
		"platform": platform,
		"item_id":  item.ID,
	})

	result, err := poster.Post(ctx, item)
	if err != nil {
		logger.WithError(err).Warn("posting: publish failed")
		return nil, err
	}

	logger.WithField("platform_post_id", result.PlatformPostID).Info("posting: content published")
	return result, nil
}
