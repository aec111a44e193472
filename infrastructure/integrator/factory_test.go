package integrator

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{URL: "http://localhost:3000"},
		Google: config.Google{
			ClientID: "google-client",
			AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
		},
		Twitter: config.Twitter{
			ClientID: "twitter-client",
			AuthURL:  "https://twitter.com/i/oauth2/authorize",
		},
		Meta: config.Meta{
			AppID:     "meta-app",
			DialogURL: "https://www.facebook.com/v18.0/dialog/oauth",
		},
		Integrations: config.Integrations{TwitterMaxPages: 5},
	}
}

func TestFactory_Create(t *testing.T) {
	f := NewFactory(testConfig(), nil, nil)

	tests := []struct {
		platform   domain.PlatformKey
		wantName   string
		wantPoster bool
		wantErr    error
	}{
		{platform: domain.PlatformGoogleAnalytics, wantName: "Google Analytics"},
		{platform: domain.PlatformYouTube, wantName: "YouTube Analytics"},
		{platform: domain.PlatformMeta, wantName: "Meta (Facebook & Instagram)", wantPoster: true},
		{platform: domain.PlatformTwitter, wantName: "Twitter/X", wantPoster: true},
		{platform: domain.PlatformLinkedIn, wantErr: integration.ErrUnsupportedPlatform},
		{platform: "tiktok", wantErr: integration.ErrUnsupportedPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			got, err := f.Create(tt.platform, &domain.CredentialRecord{AccessToken: "A1"}, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.platform, got.PlatformIdentifier())
			assert.Equal(t, tt.wantName, got.DisplayName())

			_, isPoster := got.(integration.Poster)
			assert.Equal(t, tt.wantPoster, isPoster)
			_, isExchanger := got.(integration.Exchanger)
			assert.True(t, isExchanger)
		})
	}
}

func TestFactory_SupportedPlatforms(t *testing.T) {
	f := NewFactory(testConfig(), nil, nil)

	catalog, err := f.SupportedPlatforms()
	require.NoError(t, err)
	require.Len(t, catalog, 4)

	byID := map[domain.PlatformKey]domain.PlatformInfo{}
	for _, info := range catalog {
		byID[info.Identifier] = info
		assert.NotEmpty(t, info.DisplayName)
		assert.NotEmpty(t, info.Description)
	}

	tw, err := url.Parse(byID[domain.PlatformTwitter].AuthorizationURL)
	require.NoError(t, err)
	q := tw.Query()
	assert.Equal(t, "http://localhost:3000/api/auth/twitter/callback", q.Get("redirect_uri"))
	assert.Equal(t, CodeChallenge(q.Get("state")), q.Get("code_challenge"), "o state precisa carregar o verifier do challenge")

	ga, err := url.Parse(byID[domain.PlatformGoogleAnalytics].AuthorizationURL)
	require.NoError(t, err)
	assert.Equal(t, "google_analytics", ga.Query().Get("state"))
	assert.Equal(t, "http://localhost:3000/api/auth/google/callback", ga.Query().Get("redirect_uri"))

	yt, err := url.Parse(byID[domain.PlatformYouTube].AuthorizationURL)
	require.NoError(t, err)
	assert.Equal(t, "youtube", yt.Query().Get("state"))
	assert.Contains(t, yt.Query().Get("scope"), "yt-analytics.readonly")

	fb, err := url.Parse(byID[domain.PlatformMeta].AuthorizationURL)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(byID[domain.PlatformMeta].AuthorizationURL, "https://www.facebook.com/v18.0/dialog/oauth?"))
	assert.Equal(t, "meta-app", fb.Query().Get("client_id"))

	_, err = f.Platform(domain.PlatformLinkedIn)
	assert.ErrorIs(t, err, integration.ErrUnsupportedPlatform)
}

func TestPKCE(t *testing.T) {
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		verifier, err := GenerateCodeVerifier()
		require.NoError(t, err)
		assert.Len(t, verifier, 43)

		challenge := CodeChallenge(verifier)
		for _, s := range []string{verifier, challenge} {
			assert.NotContains(t, s, "=")
			assert.NotContains(t, s, "+")
			assert.NotContains(t, s, "/")
		}
		assert.Len(t, challenge, 43)

		_, dup := seen[verifier]
		assert.False(t, dup)
		seen[verifier] = struct{}{}
	}
}

func TestCodeChallenge_KnownVector(t *testing.T) {
	// Exemplo do apêndice B do RFC 7636
	assert.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", CodeChallenge("dBjftJeZ4CVP-mB92K-uEXoDrMYo8V8O9q-vuwYKNsY"))
}
