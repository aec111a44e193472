package twitter

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestIntegration(t *testing.T, handler http.HandlerFunc, credential *domain.CredentialRecord) *Integration {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Twitter{
		ClientID:     "client",
		ClientSecret: "secret",
		AuthURL:      "https://twitter.com/i/oauth2/authorize",
		TokenURL:     srv.URL + "/2/oauth2/token",
		APIURL:       srv.URL + "/2",
	}
	client := integration.NewClient(domain.PlatformTwitter, srv.Client(), nil, nil, credential)
	tw := New(client, cfg, "http://app/api/auth/twitter/callback", 3)
	tw.now = func() time.Time { return time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC) }
	return tw
}

func TestPost_LengthBoundary(t *testing.T) {
	tests := []struct {
		name      string
		caption   string
		wantErr   error
		wantCalls int
	}{
		{name: "280 caracteres é aceito", caption: strings.Repeat("x", 275), wantCalls: 1},
		{name: "281 caracteres falha sem chamada", caption: strings.Repeat("x", 276), wantErr: integration.ErrValidation},
		{name: "texto vazio falha sem chamada", caption: "   ", wantErr: integration.ErrValidation},
		{name: "multibyte conta runas", caption: strings.Repeat("ç", 275), wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			var sent createTweetRequest
			tw := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, "/2/tweets", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
				io.WriteString(w, `{"data":{"id":"t-1","text":"ok"}}`)
			}, &domain.CredentialRecord{AccessToken: "A1"})

			item := &domain.ContentCalendarItem{Caption: tt.caption}
			if strings.TrimSpace(tt.caption) != "" {
				item.Hashtags = []string{"tag"}
			}

			result, err := tw.Post(context.Background(), item)
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "t-1", result.PlatformPostID)
			assert.True(t, strings.HasSuffix(sent.Text, " #tag"))
		})
	}
}

func TestPost_DescriptionFallback(t *testing.T) {
	tests := []struct {
		name      string
		item      domain.ContentCalendarItem
		wantText  string
		wantErr   error
		wantCalls int
	}{
		{
			name:      "descrição com hashtags",
			item:      domain.ContentCalendarItem{Description: "Lançamento hoje", Hashtags: []string{"promo"}},
			wantText:  "Lançamento hoje #promo",
			wantCalls: 1,
		},
		{
			name:      "descrição sem hashtags",
			item:      domain.ContentCalendarItem{Description: "Lançamento hoje"},
			wantText:  "Lançamento hoje",
			wantCalls: 1,
		},
		{
			name:      "legenda prevalece",
			item:      domain.ContentCalendarItem{Caption: "Legenda", Description: "Descrição"},
			wantText:  "Legenda",
			wantCalls: 1,
		},
		{
			name:    "descrição em branco falha sem chamada",
			item:    domain.ContentCalendarItem{Description: "  "},
			wantErr: integration.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			var sent createTweetRequest
			tw := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
				io.WriteString(w, `{"data":{"id":"t-2","text":"ok"}}`)
			}, &domain.CredentialRecord{AccessToken: "A1"})

			_, err := tw.Post(context.Background(), &tt.item)
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, sent.Text)
		})
	}
}

func TestPost_WithoutCredential(t *testing.T) {
	calls := 0
	tw := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) { calls++ }, nil)

	_, err := tw.Post(context.Background(), &domain.ContentCalendarItem{Caption: "oi"})
	assert.ErrorIs(t, err, integration.ErrMissingCredential)
	assert.Zero(t, calls)
}

func TestPost_RateLimited(t *testing.T) {
	tw := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"title":"Too Many Requests"}`)
	}, &domain.CredentialRecord{AccessToken: "A1"})

	_, err := tw.Post(context.Background(), &domain.ContentCalendarItem{Caption: "oi"})
	assert.ErrorIs(t, err, integration.ErrRateLimited)
}

func TestFetchData_PaginatesAndBuckets(t *testing.T) {
	pages := 0
	tw := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2/users/me":
			io.WriteString(w, `{"data":{"id":"u1","username":"ana","public_metrics":{"followers_count":1200}}}`)
		case "/2/users/u1/tweets":
			pages++
			q := r.URL.Query()
			assert.Equal(t, "2024-06-01T00:00:00Z", q.Get("start_time"))
			assert.Equal(t, "2024-06-10T14:59:30Z", q.Get("end_time"))
			if q.Get("pagination_token") == "" {
				io.WriteString(w, `{"data":[
					{"id":"1","created_at":"2024-06-01T10:00:00.000Z","public_metrics":{"impression_count":100,"like_count":5,"reply_count":1,"retweet_count":2,"quote_count":1}},
					{"id":"2","created_at":"2024-06-01T18:00:00.000Z","public_metrics":{"impression_count":50,"like_count":1}}
				],"meta":{"next_token":"n2"}}`)
				return
			}
			io.WriteString(w, `{"data":[{"id":"3","created_at":"2024-06-03T09:00:00.000Z","public_metrics":{"impression_count":10}}],"meta":{}}`)
		}
	}, &domain.CredentialRecord{AccessToken: "A1"})

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	points, err := tw.FetchData(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 2, pages)
	require.Len(t, points, 3)
	assert.Equal(t, "2024-06-01", points[0].Date)
	assert.Equal(t, int64(150), points[0].Impressions)
	assert.Equal(t, int64(10), points[0].Engagement)
	assert.Zero(t, points[0].Followers)

	assert.Equal(t, "2024-06-03", points[1].Date)
	assert.Equal(t, "2024-06-10", points[2].Date)
	assert.Equal(t, int64(1200), points[2].Followers)
}

func TestFetchData_FollowersJoinEndDayPoint(t *testing.T) {
	tw := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2/users/me":
			io.WriteString(w, `{"data":{"id":"u1","public_metrics":{"followers_count":80}}}`)
		case "/2/users/u1/tweets":
			io.WriteString(w, `{"data":[{"id":"9","created_at":"2024-06-05T08:00:00.000Z","public_metrics":{"impression_count":40,"like_count":3}}],"meta":{}}`)
		}
	}, &domain.CredentialRecord{AccessToken: "A1"})

	day := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	points, err := tw.FetchData(context.Background(), day.AddDate(0, 0, -2), day)
	require.NoError(t, err)

	require.Len(t, points, 1)
	assert.Equal(t, "2024-06-05", points[0].Date)
	assert.Equal(t, int64(40), points[0].Impressions)
	assert.Equal(t, int64(80), points[0].Followers)
}

func TestFetchData_StopsAtMaxPages(t *testing.T) {
	pages := 0
	tw := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/2/users/me" {
			io.WriteString(w, `{"data":{"id":"u1"}}`)
			return
		}
		pages++
		io.WriteString(w, `{"data":[],"meta":{"next_token":"sempre"}}`)
	}, &domain.CredentialRecord{AccessToken: "A1"})

	_, err := tw.FetchData(context.Background(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 3, pages)
}

func TestExchangeCode_UsesBasicAuthAndVerifier(t *testing.T) {
	tw := newTestIntegration(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2/oauth2/token":
			want := "Basic " + base64.StdEncoding.EncodeToString([]byte("client:secret"))
			assert.Equal(t, want, r.Header.Get("Authorization"))
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "verifier-123", r.PostForm.Get("code_verifier"))
			assert.Equal(t, "http://app/api/auth/twitter/callback", r.PostForm.Get("redirect_uri"))
			assert.Empty(t, r.PostForm.Get("client_secret"))
			io.WriteString(w, `{"access_token":"A1","refresh_token":"R1","expires_in":7200,"scope":"tweet.read"}`)
		case "/2/users/me":
			assert.Equal(t, "Bearer A1", r.Header.Get("Authorization"))
			io.WriteString(w, `{"data":{"id":"u1","name":"Ana","username":"ana"}}`)
		}
	}, nil)

	record, err := tw.ExchangeCode(context.Background(), "C1", "verifier-123")
	require.NoError(t, err)
	assert.Equal(t, "A1", record.AccessToken)
	assert.Equal(t, "ana", record.Username)
	assert.Equal(t, int64(7200), *record.ExpiresIn)

	_, err = tw.ExchangeCode(context.Background(), "C1", "")
	assert.ErrorIs(t, err, integration.ErrValidation)
}

func TestAuthorizationURL_CarriesVerifierInState(t *testing.T) {
	raw := AuthorizationURL(config.Twitter{ClientID: "client", AuthURL: "https://twitter.com/i/oauth2/authorize"}, "http://app/cb", "v1", "c1")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "v1", q.Get("state"))
	assert.Equal(t, "c1", q.Get("code_challenge"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.Equal(t, Scope, q.Get("scope"))
}
