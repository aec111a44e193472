package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		setup      func(m *mocks.MockAuthenticator)
		wantStatus int
		wantUser   string
	}{
		{
			name:       "rota pública não exige token",
			method:     http.MethodPost,
			path:       "/v1/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight passa direto",
			method:     http.MethodOptions,
			path:       "/v1/metrics",
			wantStatus: http.StatusOK,
		},
		{
			name:       "sem header",
			method:     http.MethodGet,
			path:       "/v1/metrics",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "header sem Bearer",
			method:     http.MethodGet,
			path:       "/v1/metrics",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token válido injeta claims",
			method: http.MethodGet,
			path:   "/v1/metrics",
			header: "Bearer good",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("good").Return(&domain.Claims{UserID: "u1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   "u1",
		},
		{
			name:   "token expirado",
			method: http.MethodGet,
			path:   "/v1/metrics",
			header: "Bearer old",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("old").Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrExpiredToken, "expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			var gotUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if claims, ok := ClaimsFromContext(r.Context()); ok {
					gotUser = claims.UserID
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, gotUser)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors("https://dash.example.com/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics", nil)
	req.Header.Set("Origin", "https://dash.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "https://dash.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/metrics", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	inbound := "6f1c1c8e-3d8a-4a55-9a57-0f4a2b9c1e11"
	req := httptest.NewRequest(http.MethodGet, "/v1/connections", nil)
	req.Header.Set(CorrelationIDHeader, inbound)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, inbound, seen)
	assert.Equal(t, inbound, rec.Header().Get(CorrelationIDHeader))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
	assert.NotEqual(t, inbound, rec.Header().Get(CorrelationIDHeader))
}
