package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

// ListPlatforms devolve o catálogo com as URLs de autorização já montadas
func ListPlatforms(factory integrator.IntegrationFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := factory.SupportedPlatforms()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar catálogo de plataformas")
			return
		}
		writeJSON(w, r, http.StatusOK, catalog)
	}
}

// GetPlatformOAuthURL aceita os apelidos facebook, instagram e x
func GetPlatformOAuthURL(factory integrator.IntegrationFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform := domain.NormalizePlatform(httprouter.ParamsFromContext(r.Context()).ByName("platform"))

		info, err := factory.Platform(platform)
		if err != nil {
			writeServiceError(w, r, err, "Plataforma não suportada")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"platform": info.Identifier,
			"url":      info.AuthorizationURL,
		})
	}
}
