package meta

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vfg2006/social-insights-api/infrastructure/integrator/integration"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

// Post publica na página selecionada. Vídeo usa /videos, imagem usa /photos
// e o restante vai para /feed.
func (m *Integration) Post(ctx context.Context, item *domain.ContentCalendarItem) (*domain.PostResult, error) {
	if !m.Client.Credential.Valid() {
		return nil, integration.NewError(domain.PlatformMeta, integration.ErrMissingCredential, "meta não conectado")
	}
	pageID := m.Client.Credential.SelectedResourceID
	if pageID == "" {
		return nil, integration.NewError(domain.PlatformMeta, integration.ErrMissingCredential, "selecione uma página do Facebook antes de publicar")
	}

	endpoint, body, err := buildPost(m.cfg.URL, pageID, item)
	if err != nil {
		return nil, err
	}

	pageToken, err := m.pageToken(ctx, pageID)
	if err != nil {
		return nil, err
	}

	var resp postResponse
	err = m.Client.Send(ctx, integration.Request{
		Method: http.MethodPost,
		URL:    endpoint,
		JSON:   body,
		Token:  pageToken,
	}, &resp)
	if err != nil {
		return nil, err
	}

	postID := resp.PostID
	if postID == "" {
		postID = resp.ID
	}
	if postID == "" {
		return nil, integration.NewError(domain.PlatformMeta, integration.ErrMalformedResponse, "id da publicação ausente")
	}

	log.Area(ctx, "posting").WithFields(log.Fields{
		"platform": domain.PlatformMeta,
		"page_id":  pageID,
		"post_id":  postID,
	}).Info("posting: published to facebook page")

	return &domain.PostResult{Success: true, PlatformPostID: postID}, nil
}

func (m *Integration) pageToken(ctx context.Context, pageID string) (string, error) {
	var resp pageTokenResponse
	err := m.Client.GetJSON(ctx, fmt.Sprintf("%s/%s", m.cfg.URL, url.PathEscape(pageID)), url.Values{"fields": {"access_token"}}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", integration.NewError(domain.PlatformMeta, integration.ErrMissingCredential, "token da página indisponível")
	}
	return resp.AccessToken, nil
}

// buildPost escolhe o endpoint e monta o corpo sem tocar a rede
func buildPost(baseURL, pageID string, item *domain.ContentCalendarItem) (string, map[string]string, error) {
	if item == nil {
		return "", nil, integration.NewError(domain.PlatformMeta, integration.ErrValidation, "conteúdo ausente")
	}

	text := item.ComposedText()
	video, hasVideo := item.FirstAttachment(domain.AttachmentVideo)
	image, hasImage := item.FirstAttachment(domain.AttachmentImage)

	if text == "" && !hasVideo && !hasImage {
		return "", nil, integration.NewError(domain.PlatformMeta, integration.ErrValidation, "informe texto, imagem ou vídeo")
	}

	pagePath := fmt.Sprintf("%s/%s", baseURL, url.PathEscape(pageID))
	body := map[string]string{}
	var endpoint string

	switch {
	case hasVideo:
		endpoint = pagePath + "/videos"
		body["file_url"] = video.URL
		if text != "" {
			body["description"] = text
		}
	case hasImage:
		endpoint = pagePath + "/photos"
		body["url"] = image.URL
		if text != "" {
			body["caption"] = text
		}
	default:
		endpoint = pagePath + "/feed"
		body["message"] = text
	}

	if item.Status == domain.ContentStatusScheduled {
		if item.PostingDate.IsZero() {
			return "", nil, integration.NewError(domain.PlatformMeta, integration.ErrValidation, "publicação agendada sem data")
		}
		body["published"] = "false"
		body["scheduled_publish_time"] = strconv.FormatInt(item.PostingDate.Unix(), 10)
	}

	return endpoint, body, nil
}
