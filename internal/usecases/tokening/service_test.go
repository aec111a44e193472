package tokening

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/infrastructure/credentialstore"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

var writeTime = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T) (*Manager, *credentialstore.Scoped, *FixedClock) {
	t.Helper()

	clock := &FixedClock{T: writeTime}
	store := credentialstore.Scope(credentialstore.NewMemoryBackend(), "owner-1")
	return NewManager(store, clock, nil), store, clock
}

func TestManager_IsExpired(t *testing.T) {
	m, _, _ := newTestManager(t)
	now := writeTime.Unix()

	tests := []struct {
		name   string
		record *domain.CredentialRecord
		want   bool
	}{
		{name: "expires_at no futuro", record: &domain.CredentialRecord{AccessToken: "a", ExpiresAt: domain.Int64Ptr(now + 1)}, want: false},
		{name: "expires_at igual a agora", record: &domain.CredentialRecord{AccessToken: "a", ExpiresAt: domain.Int64Ptr(now)}, want: true},
		{name: "expires_at no passado", record: &domain.CredentialRecord{AccessToken: "a", ExpiresAt: domain.Int64Ptr(now - 10)}, want: true},
		{name: "apenas expires_in não é provadamente expirado", record: &domain.CredentialRecord{AccessToken: "a", ExpiresIn: domain.Int64Ptr(1)}, want: false},
		{name: "sem informação de expiração", record: &domain.CredentialRecord{AccessToken: "a"}, want: false},
		{name: "registro nulo", record: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsExpired(tt.record))
		})
	}
}

func TestManager_SetDerivesExpiresAt(t *testing.T) {
	ctx := context.Background()

	for _, ttl := range []int64{1, 60, 3600, 5184000} {
		m, _, _ := newTestManager(t)

		err := m.Set(ctx, domain.PlatformTwitter, &domain.CredentialRecord{
			AccessToken: "A1",
			ExpiresIn:   domain.Int64Ptr(ttl),
		})
		require.NoError(t, err)

		got, err := m.Get(ctx, domain.PlatformTwitter)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.ExpiresAt)
		assert.InDelta(t, writeTime.Unix()+ttl, *got.ExpiresAt, 1)
	}
}

func TestManager_SetKeepsExplicitExpiresAt(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	explicit := writeTime.Unix() + 42
	require.NoError(t, m.Set(ctx, domain.PlatformMeta, &domain.CredentialRecord{
		AccessToken: "A1",
		ExpiresIn:   domain.Int64Ptr(9999),
		ExpiresAt:   domain.Int64Ptr(explicit),
	}))

	got, err := m.Get(ctx, domain.PlatformMeta)
	require.NoError(t, err)
	assert.Equal(t, explicit, *got.ExpiresAt)
}

func TestManager_SetRejectsEmptyAccessToken(t *testing.T) {
	m, _, _ := newTestManager(t)

	err := m.Set(context.Background(), domain.PlatformMeta, &domain.CredentialRecord{RefreshToken: "R1"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestManager_GetExpiredRemovesKey(t *testing.T) {
	ctx := context.Background()
	m, store, clock := newTestManager(t)

	require.NoError(t, m.Set(ctx, domain.PlatformGoogleAnalytics, &domain.CredentialRecord{
		AccessToken: "A1",
		ExpiresIn:   domain.Int64Ptr(60),
	}))
	require.NoError(t, m.SelectResource(ctx, domain.PlatformGoogleAnalytics, "123"))

	clock.Advance(61 * time.Second)

	got, err := m.Get(ctx, domain.PlatformGoogleAnalytics)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, ok, _ := store.Read(ctx, "google_analytics_tokens")
	assert.False(t, ok)
	_, ok, _ = store.Read(ctx, "google_analytics_selected_property")
	assert.False(t, ok, "seleção não pode sobrar depois da remoção")

	again, err := m.Get(ctx, domain.PlatformGoogleAnalytics)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestManager_GetCorruptRemovesKey(t *testing.T) {
	ctx := context.Background()
	m, store, _ := newTestManager(t)

	for _, raw := range []string{"{not json", `{"refresh_token":"R1"}`} {
		require.NoError(t, store.Write(ctx, "meta_tokens", raw))

		got, err := m.Get(ctx, domain.PlatformMeta)
		require.NoError(t, err)
		assert.Nil(t, got)

		_, ok, _ := store.Read(ctx, "meta_tokens")
		assert.False(t, ok)
	}
}

func TestManager_GetFillsSelection(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	require.NoError(t, m.Set(ctx, domain.PlatformMeta, &domain.CredentialRecord{AccessToken: "A1"}))
	require.NoError(t, m.SelectResource(ctx, domain.PlatformMeta, "page-9"))

	got, err := m.Get(ctx, domain.PlatformMeta)
	require.NoError(t, err)
	assert.Equal(t, "page-9", got.SelectedResourceID)

	assert.ErrorIs(t, m.SelectResource(ctx, domain.PlatformTwitter, "x"), ErrNoSelectionSlot)
}

func TestManager_HandleAuthErrorAndConnection(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	require.NoError(t, m.Set(ctx, domain.PlatformYouTube, &domain.CredentialRecord{AccessToken: "A1"}))
	assert.True(t, m.IsConnected(ctx, domain.PlatformYouTube))
	assert.Equal(t, []domain.PlatformKey{domain.PlatformYouTube}, m.ConnectedPlatforms(ctx))

	require.NoError(t, m.HandleAuthError(ctx, domain.PlatformYouTube))
	assert.False(t, m.IsConnected(ctx, domain.PlatformYouTube))
}

func TestManager_CleanupExpired(t *testing.T) {
	ctx := context.Background()
	m, store, clock := newTestManager(t)

	require.NoError(t, m.Set(ctx, domain.PlatformTwitter, &domain.CredentialRecord{AccessToken: "t", ExpiresIn: domain.Int64Ptr(10)}))
	require.NoError(t, m.Set(ctx, domain.PlatformMeta, &domain.CredentialRecord{AccessToken: "m", ExpiresIn: domain.Int64Ptr(5184000)}))
	require.NoError(t, m.Set(ctx, domain.PlatformYouTube, &domain.CredentialRecord{AccessToken: "y"}))
	require.NoError(t, store.Write(ctx, "linkedin_tokens", "garbage"))

	clock.Advance(time.Minute)

	removed, err := m.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.False(t, m.IsConnected(ctx, domain.PlatformTwitter))
	assert.True(t, m.IsConnected(ctx, domain.PlatformMeta))
	assert.True(t, m.IsConnected(ctx, domain.PlatformYouTube))
	_, ok, _ := store.Read(ctx, "linkedin_tokens")
	assert.False(t, ok)
}

func TestManager_DisconnectAll(t *testing.T) {
	ctx := context.Background()
	m, store, _ := newTestManager(t)

	for _, p := range []domain.PlatformKey{domain.PlatformTwitter, domain.PlatformMeta, domain.PlatformGoogleAnalytics} {
		require.NoError(t, m.Set(ctx, p, &domain.CredentialRecord{AccessToken: "a"}))
	}
	require.NoError(t, m.SelectResource(ctx, domain.PlatformMeta, "page"))

	require.NoError(t, m.DisconnectAll(ctx))

	assert.Empty(t, m.ConnectedPlatforms(ctx))
	_, ok, _ := store.Read(ctx, "meta_selected_page")
	assert.False(t, ok)
}

func TestProvider_ScopesPerOwner(t *testing.T) {
	ctx := context.Background()
	backend := credentialstore.NewMemoryBackend()
	provider := NewProvider(backend, &FixedClock{T: writeTime}, nil)

	alice := provider.ForOwner("alice")
	bob := provider.ForOwner("bob")

	require.NoError(t, alice.Set(ctx, domain.PlatformTwitter, &domain.CredentialRecord{AccessToken: "a"}))

	assert.True(t, alice.IsConnected(ctx, domain.PlatformTwitter))
	assert.False(t, bob.IsConnected(ctx, domain.PlatformTwitter))

	owners, err := provider.Owners(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, owners)
}

func TestManager_ConcurrentSetAndGet(t *testing.T) {
	ctx := context.Background()
	m := NewManager(credentialstore.Scope(credentialstore.NewMemoryBackend(), "o"), SystemClock(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, domain.PlatformMeta, &domain.CredentialRecord{AccessToken: "a", ExpiresIn: domain.Int64Ptr(3600)})
		}()
		go func() {
			defer wg.Done()
			_, _ = m.Get(ctx, domain.PlatformMeta)
		}()
	}
	wg.Wait()

	assert.True(t, m.IsConnected(ctx, domain.PlatformMeta))
}
