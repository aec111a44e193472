package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

var integrationCodes = []struct {
	err  error
	code string
}{
	{integration.ErrAuthExpired, apiErrors.ErrPlatformAuthExpired},
	{integration.ErrAuthRefresh, apiErrors.ErrPlatformRefresh},
	{integration.ErrNoAccountFound, apiErrors.ErrPlatformNoAccount},
	{integration.ErrRateLimited, apiErrors.ErrPlatformRateLimited},
	{integration.ErrUnsupportedPlatform, apiErrors.ErrPlatformUnsupported},
	{integration.ErrPlatformRejected, apiErrors.ErrPlatformRejected},
	{integration.ErrMissingCredential, apiErrors.ErrPlatformMissingCredential},
	{integration.ErrValidation, apiErrors.ErrPlatformValidation},
	{integration.ErrMalformedResponse, apiErrors.ErrPlatformMalformed},
	{integration.ErrUnavailable, apiErrors.ErrCommunication},
}

// errorCode traduz os erros dos casos de uso para o código público da API
func errorCode(err error) string {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}

	switch {
	case errors.Is(err, insighting.ErrSupersededFetch):
		return apiErrors.ErrSupersededFetch
	case errors.Is(err, insighting.ErrInvalidRange):
		return apiErrors.ErrInvalidFormat
	}

	for _, c := range integrationCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return apiErrors.ErrInternalServer
}

// writeServiceError registra e responde o erro. Erros de plataforma levam a
// plataforma e o corpo do fornecedor nos detalhes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := errorCode(err)

	logger := log.Area(r.Context(), "api").WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("api: request failed")
	} else {
		logger.Warn("api: request rejected")
	}

	var details any
	var integrationErr *integration.IntegrationError
	if errors.As(err, &integrationErr) {
		details = map[string]any{
			"platform":    integrationErr.Platform,
			"status_code": integrationErr.StatusCode,
			"reason":      integrationErr.Details,
			"payload":     integrationErr.Payload,
			"recoverable": integration.IsRecoverable(err),
		}
		message = integrationErr.Err.Error()
	}

	apiErrors.WriteError(w, code, message, details)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := utils.WriteJSON(w, status, v); err != nil {
		log.Area(r.Context(), "api").WithError(err).Error("api: failed to encode response")
	}
}
