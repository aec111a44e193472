package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_finalize(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		validate func(t *testing.T, cfg Config)
	}{
		{
			name: "postgres monta DSN e URL versionada do Graph",
			cfg: Config{
				App:      App{URL: "https://dash.example.com/"},
				Database: Database{Driver: "postgres", User: "u", Password: "p", URL: "db:5432/insights"},
				Meta:     Meta{BaseURL: "https://graph.facebook.com/", Version: "v18.0"},
			},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, "postgres://u:p@db:5432/insights", cfg.Database.DSN)
				assert.Equal(t, "https://graph.facebook.com/v18.0", cfg.Meta.URL)
				assert.Equal(t, "https://dash.example.com", cfg.App.URL)
			},
		},
		{
			name: "sqlite usa o caminho do arquivo como DSN",
			cfg:  Config{Database: Database{Driver: "sqlite", Path: "/tmp/insights.db"}},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, "/tmp/insights.db", cfg.Database.DSN)
			},
		},
		{
			name: "timeout e paginação recebem valores padrão",
			cfg:  Config{},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, 20*time.Second, cfg.Integrations.RequestTimeout)
				assert.Equal(t, 5, cfg.Integrations.TwitterMaxPages)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.finalize()
			tt.validate(t, cfg)
		})
	}
}
