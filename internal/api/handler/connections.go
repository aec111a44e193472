package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/connecting"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

type ExchangeRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

type SelectionRequest struct {
	ResourceID string `json:"resource_id"`
}

func platformParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("platform")
}

// ListConnections aceita ?verify=true para testar cada conexão na plataforma
func ListConnections(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		verify := false
		if raw := r.URL.Query().Get("verify"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "verify deve ser booleano", nil)
				return
			}
			verify = parsed
		}

		statuses, err := service.Status(r.Context(), owner, verify)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar conexões")
			return
		}
		writeJSON(w, r, http.StatusOK, statuses)
	}
}

// ExchangeCode conclui o callback OAuth. Para o Google, :platform é "google" e o
// state indica o produto.
func ExchangeCode(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req ExchangeRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.Code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "code é obrigatório", nil)
			return
		}

		status, err := service.Exchange(r.Context(), owner, platformParam(r), req.Code, req.State)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao conectar plataforma")
			return
		}
		writeJSON(w, r, http.StatusCreated, status)
	}
}

// ListResources lista as páginas (Meta) ou propriedades (Analytics) selecionáveis
func ListResources(service connecting.Connector, platform domain.PlatformKey) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		resources, err := service.ListResources(r.Context(), owner, platform)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar recursos da plataforma")
			return
		}
		writeJSON(w, r, http.StatusOK, resources)
	}
}

func SelectResource(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req SelectionRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		platform := domain.NormalizePlatform(platformParam(r))
		if err := service.SelectResource(r.Context(), owner, platform, req.ResourceID); err != nil {
			writeServiceError(w, r, err, "Erro ao salvar seleção")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"platform":    platform,
			"resource_id": req.ResourceID,
		})
	}
}

func RefreshConnection(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		status, err := service.Refresh(r.Context(), owner, domain.NormalizePlatform(platformParam(r)))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao renovar token")
			return
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}

func Disconnect(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		if err := service.Disconnect(r.Context(), owner, domain.NormalizePlatform(platformParam(r))); err != nil {
			writeServiceError(w, r, err, "Erro ao desconectar plataforma")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func DisconnectAll(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		if err := service.DisconnectAll(r.Context(), owner); err != nil {
			writeServiceError(w, r, err, "Erro ao desconectar plataformas")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
