package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	authmocks "github.com/vfg2006/social-insights-api/internal/usecases/authenticating/mocks"
	insightmocks "github.com/vfg2006/social-insights-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/telemetry"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := authmocks.NewMockAuthenticator(ctrl)
	insighter := insightmocks.NewMockInsighter(ctrl)

	cfg := &config.Config{App: config.App{URL: "https://dash.example.com"}}
	h := NewHandler(cfg, Services{
		Authenticator: auth,
		Insighter:     insighter,
		Metrics:       telemetry.NewMetrics("test"),
	})

	t.Run("healthcheck é público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("métricas do prometheus são públicas", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rota protegida sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/metrics/latest", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rota protegida com token usa o usuário como dono", func(t *testing.T) {
		auth.EXPECT().ValidateToken("jwt").Return(&domain.Claims{UserID: "u1"}, nil)
		insighter.EXPECT().LatestMetrics(gomock.Any(), "u1").
			Return(&domain.AggregateResult{Generation: 3}, true)

		req := httptest.NewRequest(http.MethodGet, "/v1/metrics/latest", nil)
		req.Header.Set("Authorization", "Bearer jwt")
		req.Header.Set("Origin", "https://dash.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"generation":3`)
		assert.Equal(t, "https://dash.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestNew_RequiresAuthenticator(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}
