package integration

import (
	"context"
	"time"

	"github.com/vfg2006/social-insights-api/internal/domain"
)

// Integration é o contrato comum de todas as plataformas
type Integration interface {
	PlatformIdentifier() domain.PlatformKey
	DisplayName() string
	// TestConnection é consultivo: qualquer falha vira false
	TestConnection(ctx context.Context) bool
	RefreshToken(ctx context.Context) (*domain.CredentialRecord, error)
	FetchData(ctx context.Context, startDate, endDate time.Time) ([]domain.DailyPoint, error)
}

// Poster é implementado apenas pelas plataformas que publicam conteúdo
type Poster interface {
	Post(ctx context.Context, item *domain.ContentCalendarItem) (*domain.PostResult, error)
}

// Exchanger troca o authorization code pela credencial inicial
type Exchanger interface {
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*domain.CredentialRecord, error)
}

// ResourceLister lista sub-recursos selecionáveis (páginas, propriedades)
type ResourceLister interface {
	ListResources(ctx context.Context) ([]domain.SelectableResource, error)
}

// CredentialKeeper é a parte do gerenciador de tokens usada pelas integrações
type CredentialKeeper interface {
	Set(ctx context.Context, platform domain.PlatformKey, record *domain.CredentialRecord) error
	HandleAuthError(ctx context.Context, platform domain.PlatformKey) error
}

// Base guarda os metadados estáticos e o cliente HTTP compartilhado
type Base struct {
	Client      *Client
	platform    domain.PlatformKey
	displayName string
}

func NewBase(client *Client, platform domain.PlatformKey, displayName string) Base {
	return Base{Client: client, platform: platform, displayName: displayName}
}

func (b Base) PlatformIdentifier() domain.PlatformKey {
	return b.platform
}

func (b Base) DisplayName() string {
	return b.displayName
}
