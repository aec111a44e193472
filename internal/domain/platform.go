package domain

import "strings"

type PlatformKey string

const (
	PlatformGoogleAnalytics PlatformKey = "google_analytics"
	PlatformYouTube         PlatformKey = "youtube"
	PlatformTwitter         PlatformKey = "twitter"
	PlatformMeta            PlatformKey = "meta"
	// LinkedIn é reservado: a chave existe no armazenamento mas não há integração
	PlatformLinkedIn PlatformKey = "linkedin"
)

const tokenKeySuffix = "_tokens"

// KnownPlatforms é o conjunto fixo de chaves percorrido pela limpeza e pela desconexão
var KnownPlatforms = []PlatformKey{
	PlatformGoogleAnalytics,
	PlatformYouTube,
	PlatformTwitter,
	PlatformMeta,
	PlatformLinkedIn,
}

var platformAliases = map[string]PlatformKey{
	"facebook":  PlatformMeta,
	"instagram": PlatformMeta,
	"x":         PlatformTwitter,
	"ga":        PlatformGoogleAnalytics,
	"ga4":       PlatformGoogleAnalytics,
}

// NormalizePlatform aceita o identificador canônico ou um apelido (facebook, x...)
func NormalizePlatform(s string) PlatformKey {
	key := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := platformAliases[key]; ok {
		return alias
	}
	return PlatformKey(key)
}

func (p PlatformKey) String() string {
	return string(p)
}

func (p PlatformKey) IsKnown() bool {
	for _, known := range KnownPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

// TokenKey é a chave do registro de credencial no Credential Store
func (p PlatformKey) TokenKey() string {
	return string(p) + tokenKeySuffix
}

// SelectionKey é a chave do sub-recurso escolhido (propriedade GA4, página do Facebook).
// Plataformas sem seleção devolvem string vazia.
func (p PlatformKey) SelectionKey() string {
	switch p {
	case PlatformGoogleAnalytics:
		return "google_analytics_selected_property"
	case PlatformMeta:
		return "meta_selected_page"
	default:
		return ""
	}
}

// PlatformFromTokenKey faz o caminho inverso de TokenKey
func PlatformFromTokenKey(key string) (PlatformKey, bool) {
	if !strings.HasSuffix(key, tokenKeySuffix) {
		return "", false
	}
	p := PlatformKey(strings.TrimSuffix(key, tokenKeySuffix))
	return p, p.IsKnown()
}

// PlatformInfo é uma entrada do catálogo de plataformas suportadas
type PlatformInfo struct {
	Identifier       PlatformKey `json:"identifier"`
	DisplayName      string      `json:"display_name"`
	Description      string      `json:"description"`
	AuthorizationURL string      `json:"authorization_url"`
}
