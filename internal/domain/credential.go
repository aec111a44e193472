package domain

// CredentialRecord é o material OAuth guardado para uma conexão de plataforma.
// As tags seguem os nomes devolvidos pelos endpoints de token.
type CredentialRecord struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    *int64 `json:"expires_in,omitempty"`
	ExpiresAt    *int64 `json:"expires_at,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	Scope        string `json:"scope,omitempty"`

	UserID    string `json:"user_id,omitempty"`
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	Username  string `json:"username,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`

	// Preenchido na leitura a partir da chave de seleção da plataforma
	SelectedResourceID string `json:"-"`
}

func (c *CredentialRecord) Valid() bool {
	return c != nil && c.AccessToken != ""
}

// Clone devolve uma cópia independente, inclusive dos ponteiros
func (c *CredentialRecord) Clone() *CredentialRecord {
	if c == nil {
		return nil
	}
	out := *c
	if c.ExpiresIn != nil {
		v := *c.ExpiresIn
		out.ExpiresIn = &v
	}
	if c.ExpiresAt != nil {
		v := *c.ExpiresAt
		out.ExpiresAt = &v
	}
	return &out
}

func Int64Ptr(v int64) *int64 {
	return &v
}

// ConnectionStatus descreve uma chave conhecida para o dashboard
type ConnectionStatus struct {
	Platform           PlatformKey `json:"platform"`
	Connected          bool        `json:"connected"`
	Verified           *bool       `json:"verified,omitempty"`
	ExpiresAt          *int64      `json:"expires_at,omitempty"`
	SelectedResourceID string      `json:"selected_resource_id,omitempty"`
	Username           string      `json:"username,omitempty"`
}

// SelectableResource é uma página do Facebook ou uma propriedade GA4 disponível para seleção
type SelectableResource struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}
