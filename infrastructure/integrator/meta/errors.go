package meta

// ErrorResponse representa a estrutura de erro da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da Graph API
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado ou revogado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 é "token inválido"; 460, 463 e 467 são senha trocada, expirado e sessão inválida
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// isAuthFailure é o gancho do cliente HTTP: a Graph API responde 400 para token expirado
func isAuthFailure(status int, body []byte) bool {
	if status < 400 || len(body) == 0 {
		return false
	}
	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false
	}
	return resp.IsTokenExpired()
}
