package connecting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/infrastructure/credentialstore"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	integrationmocks "github.com/vfg2006/social-insights-api/infrastructure/integrator/integration/mocks"
	integratormocks "github.com/vfg2006/social-insights-api/infrastructure/integrator/mocks"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/tokening"
	"go.uber.org/mock/gomock"
)

type exchangingIntegration struct {
	*integrationmocks.MockIntegration
	*integrationmocks.MockExchanger
}

type listingIntegration struct {
	*integrationmocks.MockIntegration
	*integrationmocks.MockResourceLister
}

type fixture struct {
	ctrl     *gomock.Controller
	factory  *integratormocks.MockIntegrationFactory
	provider *tokening.Provider
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clock := &tokening.FixedClock{T: time.Unix(1_700_000_000, 0)}
	provider := tokening.NewProvider(credentialstore.NewMemoryBackend(), clock, nil)
	factory := integratormocks.NewMockIntegrationFactory(ctrl)
	factory.EXPECT().IsSupported(gomock.Any()).DoAndReturn(func(p domain.PlatformKey) bool {
		return p.IsKnown() && p != domain.PlatformLinkedIn
	}).AnyTimes()

	return &fixture{
		ctrl:     ctrl,
		factory:  factory,
		provider: provider,
		service:  NewService(provider, factory),
	}
}

func (f *fixture) connect(t *testing.T, owner string, platform domain.PlatformKey, record *domain.CredentialRecord) {
	t.Helper()
	require.NoError(t, f.provider.ForOwner(owner).Set(context.Background(), platform, record))
}

func TestResolveExchangePlatform(t *testing.T) {
	tests := []struct {
		name         string
		platform     string
		state        string
		wantPlatform domain.PlatformKey
		wantVerifier string
	}{
		{name: "google com state youtube", platform: "google", state: "youtube", wantPlatform: domain.PlatformYouTube},
		{name: "google com state analytics", platform: "google", state: "google_analytics", wantPlatform: domain.PlatformGoogleAnalytics},
		{name: "google sem state usa analytics", platform: "google", wantPlatform: domain.PlatformGoogleAnalytics},
		{name: "twitter usa o state como verifier", platform: "twitter", state: "v1", wantPlatform: domain.PlatformTwitter, wantVerifier: "v1"},
		{name: "apelido x", platform: "X", state: "v2", wantPlatform: domain.PlatformTwitter, wantVerifier: "v2"},
		{name: "facebook vira meta sem verifier", platform: "facebook", state: "meta", wantPlatform: domain.PlatformMeta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform, verifier := resolveExchangePlatform(tt.platform, tt.state)
			assert.Equal(t, tt.wantPlatform, platform)
			assert.Equal(t, tt.wantVerifier, verifier)
		})
	}
}

func TestService_Exchange(t *testing.T) {
	f := newFixture(t)

	client := integrationmocks.NewMockIntegration(f.ctrl)
	exchanger := integrationmocks.NewMockExchanger(f.ctrl)
	f.factory.EXPECT().Create(domain.PlatformTwitter, gomock.Nil(), gomock.Any()).Return(exchangingIntegration{client, exchanger}, nil)
	exchanger.EXPECT().ExchangeCode(gomock.Any(), "C1", "verifier-1").Return(&domain.CredentialRecord{
		AccessToken:  "A1",
		RefreshToken: "R1",
		ExpiresIn:    domain.Int64Ptr(7200),
		Username:     "ana",
	}, nil)

	status, err := f.service.Exchange(context.Background(), "u1", "twitter", "C1", "verifier-1")
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "ana", status.Username)
	require.NotNil(t, status.ExpiresAt)
	assert.Equal(t, int64(1_700_007_200), *status.ExpiresAt)

	assert.True(t, f.provider.ForOwner("u1").IsConnected(context.Background(), domain.PlatformTwitter))
	assert.False(t, f.provider.ForOwner("u2").IsConnected(context.Background(), domain.PlatformTwitter))
}

func TestService_Exchange_Failures(t *testing.T) {
	t.Run("code vazio", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Exchange(context.Background(), "u1", "meta", " ", "")
		assert.ErrorIs(t, err, integration.ErrValidation)
	})

	t.Run("plataforma reservada", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Exchange(context.Background(), "u1", "linkedin", "C1", "")
		assert.ErrorIs(t, err, integration.ErrUnsupportedPlatform)
	})

	t.Run("falha da plataforma não grava nada", func(t *testing.T) {
		f := newFixture(t)
		exchanger := integrationmocks.NewMockExchanger(f.ctrl)
		f.factory.EXPECT().Create(domain.PlatformMeta, gomock.Nil(), gomock.Any()).
			Return(exchangingIntegration{integrationmocks.NewMockIntegration(f.ctrl), exchanger}, nil)
		exchanger.EXPECT().ExchangeCode(gomock.Any(), "C1", "").
			Return(nil, integration.NewError(domain.PlatformMeta, integration.ErrPlatformRejected, ""))

		_, err := f.service.Exchange(context.Background(), "u1", "meta", "C1", "")
		assert.ErrorIs(t, err, integration.ErrPlatformRejected)
		assert.False(t, f.provider.ForOwner("u1").IsConnected(context.Background(), domain.PlatformMeta))
	})
}

func TestService_ListAndSelectResources(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.ListResources(ctx, "u1", domain.PlatformMeta)
	assert.ErrorIs(t, err, integration.ErrMissingCredential)
	assert.ErrorIs(t, f.service.SelectResource(ctx, "u1", domain.PlatformMeta, "P1"), integration.ErrMissingCredential)

	f.connect(t, "u1", domain.PlatformMeta, &domain.CredentialRecord{AccessToken: "EAAG"})

	lister := integrationmocks.NewMockResourceLister(f.ctrl)
	f.factory.EXPECT().Create(domain.PlatformMeta, gomock.Any(), gomock.Any()).
		Return(listingIntegration{integrationmocks.NewMockIntegration(f.ctrl), lister}, nil)
	lister.EXPECT().ListResources(gomock.Any()).Return([]domain.SelectableResource{{ID: "P1", Name: "Página"}}, nil)

	resources, err := f.service.ListResources(ctx, "u1", domain.PlatformMeta)
	require.NoError(t, err)
	assert.Len(t, resources, 1)

	require.NoError(t, f.service.SelectResource(ctx, "u1", domain.PlatformMeta, "P1"))
	selected, err := f.provider.ForOwner("u1").SelectedResource(ctx, domain.PlatformMeta)
	require.NoError(t, err)
	assert.Equal(t, "P1", selected)

	assert.ErrorIs(t, f.service.SelectResource(ctx, "u1", domain.PlatformMeta, ""), integration.ErrValidation)
	assert.ErrorIs(t, f.service.SelectResource(ctx, "u1", domain.PlatformTwitter, "x"), integration.ErrUnsupportedPlatform)
}

func TestService_ListResources_NotSupported(t *testing.T) {
	f := newFixture(t)
	f.connect(t, "u1", domain.PlatformTwitter, &domain.CredentialRecord{AccessToken: "A1"})
	f.factory.EXPECT().Create(domain.PlatformTwitter, gomock.Any(), gomock.Any()).Return(integrationmocks.NewMockIntegration(f.ctrl), nil)

	_, err := f.service.ListResources(context.Background(), "u1", domain.PlatformTwitter)
	assert.ErrorIs(t, err, integration.ErrUnsupportedPlatform)
}

func TestService_Status(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.connect(t, "u1", domain.PlatformYouTube, &domain.CredentialRecord{AccessToken: "Y1", UserName: "Canal"})

	statuses, err := f.service.Status(ctx, "u1", false)
	require.NoError(t, err)
	require.Len(t, statuses, len(domain.KnownPlatforms))
	for _, s := range statuses {
		assert.Equal(t, s.Platform == domain.PlatformYouTube, s.Connected, s.Platform)
		assert.Nil(t, s.Verified)
	}

	client := integrationmocks.NewMockIntegration(f.ctrl)
	f.factory.EXPECT().Create(domain.PlatformYouTube, gomock.Any(), gomock.Any()).Return(client, nil)
	client.EXPECT().TestConnection(gomock.Any()).Return(false)

	statuses, err = f.service.Status(ctx, "u1", true)
	require.NoError(t, err)
	for _, s := range statuses {
		if s.Platform == domain.PlatformYouTube {
			require.NotNil(t, s.Verified)
			assert.False(t, *s.Verified)
			assert.True(t, s.Connected)
			assert.Equal(t, "Canal", s.Username)
		}
	}
}

func TestService_Refresh(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Refresh(ctx, "u1", domain.PlatformGoogleAnalytics)
	assert.ErrorIs(t, err, integration.ErrMissingCredential)

	f.connect(t, "u1", domain.PlatformGoogleAnalytics, &domain.CredentialRecord{AccessToken: "G1", RefreshToken: "R1"})
	client := integrationmocks.NewMockIntegration(f.ctrl)
	f.factory.EXPECT().Create(domain.PlatformGoogleAnalytics, gomock.Any(), gomock.Any()).Return(client, nil)
	client.EXPECT().RefreshToken(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.CredentialRecord, error) {
		record := &domain.CredentialRecord{AccessToken: "G2", RefreshToken: "R1", ExpiresIn: domain.Int64Ptr(3600)}
		return record, f.provider.ForOwner("u1").Set(ctx, domain.PlatformGoogleAnalytics, record)
	})

	status, err := f.service.Refresh(ctx, "u1", domain.PlatformGoogleAnalytics)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	require.NotNil(t, status.ExpiresAt)
	assert.Equal(t, int64(1_700_003_600), *status.ExpiresAt)
}

func TestService_Disconnect(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.connect(t, "u1", domain.PlatformMeta, &domain.CredentialRecord{AccessToken: "EAAG"})
	f.connect(t, "u1", domain.PlatformTwitter, &domain.CredentialRecord{AccessToken: "T1"})
	require.NoError(t, f.service.SelectResource(ctx, "u1", domain.PlatformMeta, "P1"))

	require.NoError(t, f.service.Disconnect(ctx, "u1", domain.PlatformMeta))
	tokens := f.provider.ForOwner("u1")
	assert.False(t, tokens.IsConnected(ctx, domain.PlatformMeta))
	selected, err := tokens.SelectedResource(ctx, domain.PlatformMeta)
	require.NoError(t, err)
	assert.Empty(t, selected)
	assert.True(t, tokens.IsConnected(ctx, domain.PlatformTwitter))

	assert.ErrorIs(t, f.service.Disconnect(ctx, "u1", "orkut"), integration.ErrUnsupportedPlatform)

	require.NoError(t, f.service.DisconnectAll(ctx, "u1"))
	assert.Empty(t, tokens.ConnectedPlatforms(ctx))
}
