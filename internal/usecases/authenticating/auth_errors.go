package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidToken       = errors.New("token inválido")
	ErrUserAlreadyExists  = errors.New("usuário já existe")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrWeakPassword        = errors.New("senha fraca")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError carrega o código público da API junto do erro de domínio
type AuthError struct {
	Err     error
	Code    string
	UserID  string
	Details string
	// Cause é o erro de infraestrutura que originou a falha, quando houver
	Cause error
}

func (e *AuthError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap expõe o erro de domínio e a causa para errors.Is/As
func (e *AuthError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

// databaseError marca falhas de repositório preservando o erro original
func databaseError(cause error, details string) *AuthError {
	return &AuthError{
		Err:     ErrDatabaseOperation,
		Code:    apiErrors.ErrDatabaseOperation,
		Details: details,
		Cause:   cause,
	}
}
