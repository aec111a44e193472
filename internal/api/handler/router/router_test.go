package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func tag(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/v1/connections/:platform",
		Method: http.MethodDelete,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Platform", httprouter.ParamsFromContext(r.Context()).ByName("platform"))
			w.WriteHeader(http.StatusNoContent)
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
	}))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "rota registrada", method: http.MethodDelete, path: "/v1/connections/meta", wantStatus: http.StatusNoContent},
		{name: "rota inexistente", method: http.MethodGet, path: "/v1/nada", wantStatus: http.StatusBadRequest},
		{name: "método errado", method: http.MethodPut, path: "/v1/connections/meta", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, "meta", rec.Header().Get("X-Platform"))
				assert.Equal(t, []string{"primeiro", "segundo"}, rec.Header().Values("X-Order"))
			} else {
				assert.Contains(t, rec.Body.String(), `"code":"VAL_001"`)
			}
		})
	}
}
