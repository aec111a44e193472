package integration

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/telemetry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxResponseBytes = 10 << 20

// Request descreve uma chamada a um endpoint de plataforma
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Form   url.Values
	JSON   any
	// Token substitui o access token da credencial (ex.: token de página do Meta)
	Token string
	// Unauthenticated desliga o Bearer, usado nos endpoints de token
	Unauthenticated bool
	BasicUser       string
	BasicPassword   string
}

// Client é o HTTP compartilhado pelas integrações: anexa o Bearer, mede a chamada
// e traduz 401/429/não-2xx para a taxonomia de erros.
type Client struct {
	Platform   domain.PlatformKey
	HTTP       *http.Client
	Keeper     CredentialKeeper
	Metrics    *telemetry.Metrics
	Credential *domain.CredentialRecord
	// IsAuthFailure permite à plataforma reconhecer token inválido fora do 401
	IsAuthFailure func(status int, body []byte) bool
}

func NewClient(platform domain.PlatformKey, httpClient *http.Client, keeper CredentialKeeper, metrics *telemetry.Metrics, credential *domain.CredentialRecord) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		Platform:   platform,
		HTTP:       httpClient,
		Keeper:     keeper,
		Metrics:    metrics,
		Credential: credential,
	}
}

// AccessToken devolve o token atual ou string vazia
func (c *Client) AccessToken() string {
	if c.Credential == nil {
		return ""
	}
	return c.Credential.AccessToken
}

func (c *Client) GetJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.Send(ctx, Request{Method: http.MethodGet, URL: endpoint, Query: query}, out)
}

func (c *Client) PostJSON(ctx context.Context, endpoint string, body any, out any) error {
	return c.Send(ctx, Request{Method: http.MethodPost, URL: endpoint, JSON: body}, out)
}

func (c *Client) Send(ctx context.Context, req Request, out any) error {
	httpReq, err := c.build(ctx, req)
	if err != nil {
		return err
	}

	started := time.Now()
	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		c.Metrics.RecordIntegrationRequest(c.Platform.String(), 0, time.Since(started))
		return &IntegrationError{Err: ErrUnavailable, Platform: c.Platform, Details: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.Metrics.RecordIntegrationRequest(c.Platform.String(), resp.StatusCode, time.Since(started))
	if err != nil {
		return &IntegrationError{Err: ErrUnavailable, Platform: c.Platform, StatusCode: resp.StatusCode, Details: err.Error()}
	}

	if err := c.checkStatus(ctx, req, resp.StatusCode, body); err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &IntegrationError{Err: ErrMalformedResponse, Platform: c.Platform, StatusCode: resp.StatusCode, Details: err.Error()}
	}
	return nil
}

func (c *Client) build(ctx context.Context, req Request) (*http.Request, error) {
	endpoint := req.URL
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		endpoint += sep + req.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.Form != nil:
		body = strings.NewReader(req.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.JSON != nil:
		payload, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, NewError(c.Platform, ErrValidation, err.Error())
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, NewError(c.Platform, ErrValidation, err.Error())
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	if req.BasicUser != "" {
		httpReq.SetBasicAuth(req.BasicUser, req.BasicPassword)
	}

	if !req.Unauthenticated {
		token := req.Token
		if token == "" {
			token = c.AccessToken()
		}
		if token == "" {
			return nil, NewError(c.Platform, ErrMissingCredential, "access token ausente")
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return httpReq, nil
}

func (c *Client) checkStatus(ctx context.Context, req Request, status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	authFailure := status == http.StatusUnauthorized ||
		(c.IsAuthFailure != nil && c.IsAuthFailure(status, body))

	switch {
	case authFailure && !req.Unauthenticated:
		if c.Keeper != nil {
			if err := c.Keeper.HandleAuthError(ctx, c.Platform); err != nil {
				log.Area(ctx, "integrations").WithError(err).WithField("platform", c.Platform).Error("integrations: failed to drop rejected credential")
			}
		}
		return &IntegrationError{Err: ErrAuthExpired, Platform: c.Platform, StatusCode: status, Payload: payloadOf(body)}
	case status == http.StatusTooManyRequests:
		return &IntegrationError{Err: ErrRateLimited, Platform: c.Platform, StatusCode: status, Payload: payloadOf(body)}
	default:
		log.Area(ctx, "integrations").WithFields(log.Fields{
			"platform":    c.Platform,
			"status_code": status,
		}).Warn("integrations: platform returned non-2xx")
		return &IntegrationError{Err: ErrPlatformRejected, Platform: c.Platform, StatusCode: status, Payload: payloadOf(body)}
	}
}

// payloadOf repassa o corpo do fornecedor como JSON quando possível
func payloadOf(body []byte) any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return jsoniter.RawMessage(append([]byte(nil), trimmed...))
	}
	return string(trimmed)
}
