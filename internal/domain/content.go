package domain

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusScheduled ContentStatus = "scheduled"
	ContentStatusPublished ContentStatus = "published"
)

type AttachmentType string

const (
	AttachmentImage AttachmentType = "image"
	AttachmentVideo AttachmentType = "video"
)

type Attachment struct {
	Type AttachmentType `json:"type"`
	URL  string         `json:"url"`
	Name string         `json:"name,omitempty"`
}

// ContentCalendarItem é a entrada de publicação vinda do calendário de conteúdo
type ContentCalendarItem struct {
	ID          string        `json:"id,omitempty"`
	Platform    PlatformKey   `json:"platform"`
	Caption     string        `json:"caption"`
	Description string        `json:"description,omitempty"`
	Hashtags    []string      `json:"hashtags,omitempty"`
	Attachments []Attachment  `json:"attachments,omitempty"`
	Status      ContentStatus `json:"status"`
	PostingDate PostingDate   `json:"posting_date"`
}

// PostingDate aceita tanto a data pura do calendário ("2006-01-02") quanto RFC3339
type PostingDate struct {
	time.Time
}

func NewPostingDate(t time.Time) PostingDate {
	return PostingDate{Time: t}
}

func (d *PostingDate) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return errors.Wrapf(err, "posting_date inválida: %q", raw)
	}
	d.Time = t
	return nil
}

// MarshalJSON devolve data pura quando não há horário, para voltar ao calendário como chegou
func (d PostingDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	if d.Location() == time.UTC && d.Equal(d.Truncate(24*time.Hour)) {
		return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

// FirstAttachment devolve o primeiro anexo do tipo pedido
func (c *ContentCalendarItem) FirstAttachment(t AttachmentType) (Attachment, bool) {
	for _, a := range c.Attachments {
		if a.Type == t && a.URL != "" {
			return a, true
		}
	}
	return Attachment{}, false
}

// NormalizedHashtags prefixa # quando ausente e descarta entradas vazias
func (c *ContentCalendarItem) NormalizedHashtags() []string {
	tags := make([]string, 0, len(c.Hashtags))
	for _, tag := range c.Hashtags {
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "#" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		tags = append(tags, tag)
	}
	return tags
}

// Text é a legenda aparada, ou a descrição quando não há legenda
func (c *ContentCalendarItem) Text() string {
	if caption := strings.TrimSpace(c.Caption); caption != "" {
		return caption
	}
	return strings.TrimSpace(c.Description)
}

// ComposedText junta o texto e as hashtags separados por espaço, já aparado
func (c *ContentCalendarItem) ComposedText() string {
	parts := append([]string{c.Text()}, c.NormalizedHashtags()...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

type PostResult struct {
	Success        bool   `json:"success"`
	PlatformPostID string `json:"platform_post_id"`
}
