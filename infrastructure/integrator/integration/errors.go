package integration

import (
	"errors"
	"fmt"

	"github.com/vfg2006/social-insights-api/internal/domain"
)

var (
	ErrAuthExpired         = errors.New("plataforma rejeitou o token de acesso")
	ErrAuthRefresh         = errors.New("não foi possível renovar o token de acesso")
	ErrNoAccountFound      = errors.New("nenhuma conta encontrada na plataforma")
	ErrRateLimited         = errors.New("limite de requisições da plataforma atingido")
	ErrUnsupportedPlatform = errors.New("plataforma não suportada")
	ErrPlatformRejected    = errors.New("plataforma recusou a requisição")
	ErrMissingCredential   = errors.New("credencial ausente para a plataforma")
	ErrValidation          = errors.New("conteúdo inválido para a plataforma")
	ErrMalformedResponse   = errors.New("resposta da plataforma fora do formato esperado")
	ErrUnavailable         = errors.New("falha de comunicação com a plataforma")
)

// IntegrationError carrega o contexto de uma falha de plataforma
type IntegrationError struct {
	Err        error
	Platform   domain.PlatformKey
	StatusCode int
	Details    string
	// Payload é o corpo de erro do fornecedor, repassado sem alteração
	Payload any
}

func (e *IntegrationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Platform, e.Err.Error())
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

func NewError(platform domain.PlatformKey, err error, details string) *IntegrationError {
	return &IntegrationError{
		Err:      err,
		Platform: platform,
		Details:  details,
	}
}

// IsRecoverable indica erros que o usuário corrige sem intervenção técnica
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrAuthExpired) ||
		errors.Is(err, ErrNoAccountFound) ||
		errors.Is(err, ErrMissingCredential) ||
		errors.Is(err, ErrValidation)
}
