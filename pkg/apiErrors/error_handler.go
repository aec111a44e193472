package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação do dashboard
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros das integrações com plataformas
	ErrPlatformAuthExpired       = "INT_001" // Plataforma rejeitou o token
	ErrPlatformNoAccount         = "INT_002" // Nenhuma conta/propriedade/canal encontrado
	ErrPlatformRateLimited       = "INT_003" // Limite de requisições da plataforma
	ErrPlatformUnsupported       = "INT_004" // Plataforma desconhecida
	ErrPlatformRejected          = "INT_005" // Plataforma recusou a operação
	ErrPlatformMissingCredential = "INT_006" // Plataforma não conectada ou sem seleção
	ErrPlatformValidation        = "INT_007" // Conteúdo inválido para a plataforma
	ErrPlatformRefresh           = "INT_008" // Falha ao renovar o token
	ErrPlatformMalformed         = "INT_009" // Resposta fora do formato esperado
	ErrSupersededFetch           = "INT_010" // Consulta substituída por uma mais recente

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,

	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,

	ErrPlatformAuthExpired:       http.StatusUnauthorized,
	ErrPlatformNoAccount:         http.StatusNotFound,
	ErrPlatformRateLimited:       http.StatusTooManyRequests,
	ErrPlatformUnsupported:       http.StatusBadRequest,
	ErrPlatformRejected:          http.StatusBadGateway,
	ErrPlatformMissingCredential: http.StatusBadRequest,
	ErrPlatformValidation:        http.StatusBadRequest,
	ErrPlatformRefresh:           http.StatusUnauthorized,
	ErrPlatformMalformed:         http.StatusBadGateway,
	ErrSupersededFetch:           http.StatusConflict,

	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrExternalService:   http.StatusBadGateway,
	ErrCommunication:     http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
