package integration

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

// TokenResponse é a resposta padrão dos endpoints OAuth 2.0
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
}

// Record converte a resposta de troca de código em uma credencial nova
func (t *TokenResponse) Record() *domain.CredentialRecord {
	record := &domain.CredentialRecord{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Scope:        t.Scope,
	}
	if t.ExpiresIn > 0 {
		record.ExpiresIn = domain.Int64Ptr(t.ExpiresIn)
	}
	return record
}

// MergeToken aplica a resposta de refresh sobre a credencial existente.
// O refresh token anterior é mantido quando a resposta não traz outro.
func MergeToken(existing *domain.CredentialRecord, resp *TokenResponse) *domain.CredentialRecord {
	merged := existing.Clone()
	if merged == nil {
		merged = &domain.CredentialRecord{}
	}

	merged.AccessToken = resp.AccessToken
	if resp.RefreshToken != "" {
		merged.RefreshToken = resp.RefreshToken
	}
	if resp.TokenType != "" {
		merged.TokenType = resp.TokenType
	}
	if resp.Scope != "" {
		merged.Scope = resp.Scope
	}

	merged.ExpiresAt = nil
	merged.ExpiresIn = nil
	if resp.ExpiresIn > 0 {
		merged.ExpiresIn = domain.Int64Ptr(resp.ExpiresIn)
	}

	return merged
}

// TokenEndpoint identifica onde e como o cliente OAuth se autentica
type TokenEndpoint struct {
	URL          string
	ClientID     string
	ClientSecret string
	// BasicAuth envia as credenciais do app no header em vez do corpo
	BasicAuth bool
}

// ExchangeToken faz o POST de formulário no endpoint de token
func (c *Client) ExchangeToken(ctx context.Context, endpoint TokenEndpoint, form url.Values) (*TokenResponse, error) {
	req := Request{
		Method:          http.MethodPost,
		URL:             endpoint.URL,
		Form:            form,
		Unauthenticated: true,
	}

	if endpoint.BasicAuth {
		req.BasicUser = endpoint.ClientID
		req.BasicPassword = endpoint.ClientSecret
		form.Set("client_id", endpoint.ClientID)
	} else {
		form.Set("client_id", endpoint.ClientID)
		form.Set("client_secret", endpoint.ClientSecret)
	}

	var resp TokenResponse
	if err := c.Send(ctx, req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, NewError(c.Platform, ErrMalformedResponse, "access_token ausente na resposta")
	}
	return &resp, nil
}

// RefreshWithRefreshToken renova a credencial atual com grant_type=refresh_token,
// mescla a resposta e persiste pelo Keeper.
func (c *Client) RefreshWithRefreshToken(ctx context.Context, endpoint TokenEndpoint) (*domain.CredentialRecord, error) {
	if c.Credential == nil || c.Credential.RefreshToken == "" {
		return nil, NewError(c.Platform, ErrAuthRefresh, "nenhum refresh token armazenado")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", c.Credential.RefreshToken)

	resp, err := c.ExchangeToken(ctx, endpoint, form)
	if err != nil {
		return nil, c.refreshFailure(err)
	}

	return c.Persist(ctx, MergeToken(c.Credential, resp))
}

// Persist grava a credencial renovada e passa a usá-la nas próximas chamadas
func (c *Client) Persist(ctx context.Context, record *domain.CredentialRecord) (*domain.CredentialRecord, error) {
	if c.Keeper != nil {
		if err := c.Keeper.Set(ctx, c.Platform, record); err != nil {
			return nil, err
		}
	}
	c.Credential = record

	log.Area(ctx, "integrations").WithFields(log.Fields{
		"platform":          c.Platform,
		"has_refresh_token": record.RefreshToken != "",
	}).Info("integrations: token refreshed")

	return record, nil
}

func (c *Client) refreshFailure(err error) error {
	var integrationErr *IntegrationError
	if errors.As(err, &integrationErr) {
		return &IntegrationError{
			Err:        ErrAuthRefresh,
			Platform:   c.Platform,
			StatusCode: integrationErr.StatusCode,
			Details:    integrationErr.Err.Error(),
			Payload:    integrationErr.Payload,
		}
	}
	return NewError(c.Platform, ErrAuthRefresh, err.Error())
}
