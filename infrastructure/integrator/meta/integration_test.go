package meta

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

type keeperStub struct {
	mu         sync.Mutex
	saved      *domain.CredentialRecord
	authErrors int
}

func (k *keeperStub) Set(_ context.Context, _ domain.PlatformKey, record *domain.CredentialRecord) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.saved = record.Clone()
	return nil
}

func (k *keeperStub) HandleAuthError(context.Context, domain.PlatformKey) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.authErrors++
	return nil
}

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]string
}

func newTestIntegration(t *testing.T, handler http.HandlerFunc, credential *domain.CredentialRecord) (*Integration, *keeperStub) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	keeper := &keeperStub{}
	cfg := config.Meta{URL: srv.URL + "/v18.0", AppID: "app", AppSecret: "secret", DialogURL: "https://www.facebook.com/v18.0/dialog/oauth"}
	client := integration.NewClient(domain.PlatformMeta, srv.Client(), keeper, nil, credential)
	return New(client, cfg, "http://app/api/auth/meta/callback"), keeper
}

func TestFetchData_BucketsByPreviousDay(t *testing.T) {
	m, _ := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v18.0/me/accounts":
			assert.Equal(t, "Bearer U1", r.Header.Get("Authorization"))
			io.WriteString(w, `{"data":[{"id":"p1","name":"Loja","access_token":"P1"}]}`)
		case "/v18.0/p1/insights":
			assert.Equal(t, "Bearer P1", r.Header.Get("Authorization"))
			assert.Equal(t, "day", r.URL.Query().Get("period"))
			io.WriteString(w, `{"data":[
				{"name":"page_impressions","period":"day","values":[{"value":100,"end_time":"2024-01-02T08:00:00+0000"},{"value":50,"end_time":"2024-01-03T08:00:00+0000"}]},
				{"name":"page_impressions_unique","period":"day","values":[{"value":80,"end_time":"2024-01-02T08:00:00+0000"}]},
				{"name":"page_post_engagements","period":"day","values":[{"value":12,"end_time":"2024-01-02T08:00:00+0000"}]},
				{"name":"page_consumptions","period":"day","values":[{"value":{"link clicks":3,"other clicks":4},"end_time":"2024-01-02T08:00:00+0000"}]},
				{"name":"page_fan_adds","period":"day","values":[{"value":2,"end_time":"2024-01-02T08:00:00+0000"}]}
			]}`)
		default:
			t.Fatalf("rota inesperada %s", r.URL.Path)
		}
	}, &domain.CredentialRecord{AccessToken: "U1"})

	points, err := m.FetchData(context.Background(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, points, 2)

	first := points[0]
	assert.Equal(t, "2024-01-01", first.Date)
	assert.Equal(t, int64(100), first.Impressions)
	assert.Equal(t, int64(80), first.Reach)
	assert.Equal(t, int64(12), first.Engagement)
	assert.Equal(t, int64(7), first.Clicks)
	assert.Equal(t, int64(2), first.Followers)
	assert.Zero(t, first.Conversions)

	assert.Equal(t, "2024-01-02", points[1].Date)
	assert.Equal(t, int64(50), points[1].Impressions)
}

func TestFetchData_NoPages(t *testing.T) {
	m, _ := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[]}`)
	}, &domain.CredentialRecord{AccessToken: "U1"})

	_, err := m.FetchData(context.Background(), time.Now(), time.Now())
	assert.ErrorIs(t, err, integration.ErrNoAccountFound)
}

func TestFetchData_ExpiredTokenCode190(t *testing.T) {
	m, keeper := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`)
	}, &domain.CredentialRecord{AccessToken: "U1"})

	_, err := m.FetchData(context.Background(), time.Now(), time.Now())
	assert.ErrorIs(t, err, integration.ErrAuthExpired)
	assert.Equal(t, 1, keeper.authErrors)
}

func TestIsTokenExpired(t *testing.T) {
	tests := []struct {
		name string
		resp ErrorResponse
		want bool
	}{
		{name: "código 190", resp: ErrorResponse{Error: ErrorDetails{Code: 190}}, want: true},
		{name: "subcódigo 463", resp: ErrorResponse{Error: ErrorDetails{Type: "OAuthException", ErrorSubcode: 463}}, want: true},
		{name: "subcódigo sem OAuthException", resp: ErrorResponse{Error: ErrorDetails{Type: "GraphMethodException", ErrorSubcode: 463}}},
		{name: "permissão ausente", resp: ErrorResponse{Error: ErrorDetails{Code: 200}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.IsTokenExpired())
		})
	}
}

func TestRefreshToken_ExchangesLongLivedToken(t *testing.T) {
	m, keeper := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v18.0/oauth/access_token", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "fb_exchange_token", q.Get("grant_type"))
		assert.Equal(t, "U1", q.Get("fb_exchange_token"))
		assert.Empty(t, r.Header.Get("Authorization"))
		io.WriteString(w, `{"access_token":"U2","token_type":"bearer","expires_in":5184000}`)
	}, &domain.CredentialRecord{AccessToken: "U1", UserID: "42"})

	record, err := m.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "U2", record.AccessToken)
	assert.Equal(t, "42", record.UserID)
	require.NotNil(t, keeper.saved)
	assert.Equal(t, "U2", keeper.saved.AccessToken)
}

func TestRefreshToken_Failures(t *testing.T) {
	m, _ := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("nenhuma chamada esperada")
	}, nil)
	_, err := m.RefreshToken(context.Background())
	assert.ErrorIs(t, err, integration.ErrAuthRefresh)

	m, keeper := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"code":100,"message":"invalid"}}`)
	}, &domain.CredentialRecord{AccessToken: "U1"})
	_, err = m.RefreshToken(context.Background())
	assert.ErrorIs(t, err, integration.ErrAuthRefresh)
	assert.Nil(t, keeper.saved)
}

func TestExchangeCode_ShortThenLongLived(t *testing.T) {
	m, _ := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v18.0/oauth/access_token":
			q := r.URL.Query()
			if q.Get("code") != "" {
				assert.Equal(t, "http://app/api/auth/meta/callback", q.Get("redirect_uri"))
				io.WriteString(w, `{"access_token":"S1","expires_in":3600}`)
				return
			}
			assert.Equal(t, "S1", q.Get("fb_exchange_token"))
			io.WriteString(w, `{"access_token":"L1","expires_in":5184000}`)
		case "/v18.0/me":
			assert.Equal(t, "Bearer L1", r.Header.Get("Authorization"))
			io.WriteString(w, `{"id":"42","name":"Ana"}`)
		}
	}, nil)

	record, err := m.ExchangeCode(context.Background(), "C1", "")
	require.NoError(t, err)
	assert.Equal(t, "L1", record.AccessToken)
	assert.Equal(t, int64(5184000), *record.ExpiresIn)
	assert.Equal(t, "42", record.UserID)
}

func TestListResources(t *testing.T) {
	m, _ := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[{"id":"p1","name":"Loja","category":"Retail","access_token":"P1"}]}`)
	}, &domain.CredentialRecord{AccessToken: "U1"})

	resources, err := m.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SelectableResource{{ID: "p1", Name: "Loja", Category: "Retail"}}, resources)
}

func postServer(t *testing.T, recorded *[]recordedRequest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := recordedRequest{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization")}
		if r.Method == http.MethodPost {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req.Body))
		}
		*recorded = append(*recorded, req)

		if r.Method == http.MethodGet {
			io.WriteString(w, `{"id":"p1","access_token":"P1"}`)
			return
		}
		io.WriteString(w, `{"id":"post-1"}`)
	}
}

func TestPost_EndpointSelection(t *testing.T) {
	scheduledAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		item         domain.ContentCalendarItem
		wantPath     string
		wantFields   map[string]string
		absentFields []string
	}{
		{
			name: "vídeo sem imagem usa /videos",
			item: domain.ContentCalendarItem{
				Caption:     "Novo vídeo",
				Attachments: []domain.Attachment{{Type: domain.AttachmentVideo, URL: "https://cdn/v.mp4"}},
				Status:      domain.ContentStatusDraft,
			},
			wantPath:     "/v18.0/p1/videos",
			wantFields:   map[string]string{"file_url": "https://cdn/v.mp4", "description": "Novo vídeo"},
			absentFields: []string{"url", "message", "caption", "scheduled_publish_time"},
		},
		{
			name: "imagem usa /photos",
			item: domain.ContentCalendarItem{
				Caption:     "Foto",
				Hashtags:    []string{"promo"},
				Attachments: []domain.Attachment{{Type: domain.AttachmentImage, URL: "https://cdn/i.jpg"}},
			},
			wantPath:     "/v18.0/p1/photos",
			wantFields:   map[string]string{"url": "https://cdn/i.jpg", "caption": "Foto #promo"},
			absentFields: []string{"file_url", "message"},
		},
		{
			name: "sem legenda publica a descrição",
			item: domain.ContentCalendarItem{
				Description: "Lançamento hoje",
				Hashtags:    []string{"promo"},
			},
			wantPath:   "/v18.0/p1/feed",
			wantFields: map[string]string{"message": "Lançamento hoje #promo"},
		},
		{
			name: "texto agendado usa /feed com horário",
			item: domain.ContentCalendarItem{
				Caption:     "Em breve",
				Status:      domain.ContentStatusScheduled,
				PostingDate: domain.NewPostingDate(scheduledAt),
			},
			wantPath: "/v18.0/p1/feed",
			wantFields: map[string]string{
				"message":                "Em breve",
				"published":              "false",
				"scheduled_publish_time": "1714564800",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var recorded []recordedRequest
			m, _ := newTestIntegration(t, postServer(t, &recorded), &domain.CredentialRecord{AccessToken: "U1", SelectedResourceID: "p1"})

			result, err := m.Post(context.Background(), &tt.item)
			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, "post-1", result.PlatformPostID)

			require.Len(t, recorded, 2)
			assert.Equal(t, "/v18.0/p1", recorded[0].Path)
			assert.Equal(t, "Bearer U1", recorded[0].Auth)

			post := recorded[1]
			assert.Equal(t, tt.wantPath, post.Path)
			assert.Equal(t, "Bearer P1", post.Auth)
			for k, v := range tt.wantFields {
				assert.Equal(t, v, post.Body[k], k)
			}
			for _, k := range tt.absentFields {
				assert.NotContains(t, post.Body, k)
			}
		})
	}
}

func TestPost_FailsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name       string
		credential *domain.CredentialRecord
		item       domain.ContentCalendarItem
		wantErr    error
	}{
		{name: "sem credencial", item: domain.ContentCalendarItem{Caption: "oi"}, wantErr: integration.ErrMissingCredential},
		{name: "sem página selecionada", credential: &domain.CredentialRecord{AccessToken: "U1"}, item: domain.ContentCalendarItem{Caption: "oi"}, wantErr: integration.ErrMissingCredential},
		{name: "conteúdo vazio", credential: &domain.CredentialRecord{AccessToken: "U1", SelectedResourceID: "p1"}, item: domain.ContentCalendarItem{}, wantErr: integration.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			m, _ := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) { calls++ }, tt.credential)

			_, err := m.Post(context.Background(), &tt.item)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, calls)
		})
	}
}

func TestPost_RejectedCarriesPayload(t *testing.T) {
	m, _ := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			io.WriteString(w, `{"id":"p1","access_token":"P1"}`)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"message":"(#100) Invalid parameter","code":100}}`)
	}, &domain.CredentialRecord{AccessToken: "U1", SelectedResourceID: "p1"})

	_, err := m.Post(context.Background(), &domain.ContentCalendarItem{Caption: "oi"})
	require.ErrorIs(t, err, integration.ErrPlatformRejected)

	var integrationErr *integration.IntegrationError
	require.ErrorAs(t, err, &integrationErr)
	assert.NotNil(t, integrationErr.Payload)
}
