package handler

import (
	"net/http"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/publishing"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

func CreatePost(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var item domain.ContentCalendarItem
		if err := utils.DecodeJSON(r, &item); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if item.Platform == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "platform é obrigatório", nil)
			return
		}

		result, err := service.PostContent(r.Context(), owner, &item)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao publicar conteúdo")
			return
		}
		writeJSON(w, r, http.StatusCreated, result)
	}
}
