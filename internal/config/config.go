package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Credentials      Credentials      `mapstructure:",squash"`
	Google           Google           `mapstructure:",squash"`
	Twitter          Twitter          `mapstructure:",squash"`
	Meta             Meta             `mapstructure:",squash"`
	Integrations     Integrations     `mapstructure:",squash"`
	TokenCleanupSync TokenCleanupSync `mapstructure:",squash"`
	MetricsSync      MetricsSync      `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	// Path é usado apenas pelo driver sqlite
	Path string `mapstructure:"database_path"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// URL pública do dashboard, base dos redirect_uri do OAuth
	URL string `mapstructure:"app_url"`
}

type Credentials struct {
	// CachePath aponta para um sqlite local usado como cache do banco remoto.
	// Vazio mantém o cache em memória.
	CachePath string `mapstructure:"credentials_cache_path"`
}

type Google struct {
	ClientID            string `mapstructure:"google_client_id"`
	ClientSecret        string `mapstructure:"google_client_secret"`
	AuthURL             string `mapstructure:"google_auth_url"`
	TokenURL            string `mapstructure:"google_token_url"`
	UserInfoURL         string `mapstructure:"google_userinfo_url"`
	AnalyticsAdminURL   string `mapstructure:"google_analytics_admin_url"`
	AnalyticsDataURL    string `mapstructure:"google_analytics_data_url"`
	YouTubeDataURL      string `mapstructure:"youtube_data_url"`
	YouTubeAnalyticsURL string `mapstructure:"youtube_analytics_url"`
}

type Twitter struct {
	ClientID     string `mapstructure:"twitter_client_id"`
	ClientSecret string `mapstructure:"twitter_client_secret"`
	AuthURL      string `mapstructure:"twitter_auth_url"`
	TokenURL     string `mapstructure:"twitter_token_url"`
	APIURL       string `mapstructure:"twitter_api_url"`
}

type Meta struct {
	BaseURL   string `mapstructure:"meta_base_url"`
	URL       string `mapstructure:"meta_url"`
	Version   string `mapstructure:"meta_version"`
	DialogURL string `mapstructure:"meta_dialog_url"`
	AppID     string `mapstructure:"meta_app_id"`
	AppSecret string `mapstructure:"meta_app_secret"`
}

type Integrations struct {
	RequestTimeout time.Duration `mapstructure:"integrations_request_timeout"`
	// Limite de páginas lidas na timeline do Twitter por consulta
	TwitterMaxPages int `mapstructure:"integrations_twitter_max_pages"`
}

type TokenCleanupSync struct {
	CronSchedule string `mapstructure:"token_cleanup_cron"`
	Enabled      bool   `mapstructure:"token_cleanup_enabled"`
}

type MetricsSync struct {
	CronSchedule string `mapstructure:"metrics_sync_cron"`
	LookbackDays int    `mapstructure:"metrics_sync_lookback_days"`
	Enabled      bool   `mapstructure:"metrics_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_URL", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_PATH", "insights.db")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth")
	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_USERINFO_URL", "https://www.googleapis.com/oauth2/v2/userinfo")
	viper.SetDefault("GOOGLE_ANALYTICS_ADMIN_URL", "https://analyticsadmin.googleapis.com/v1beta")
	viper.SetDefault("GOOGLE_ANALYTICS_DATA_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("YOUTUBE_DATA_URL", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("YOUTUBE_ANALYTICS_URL", "https://youtubeanalytics.googleapis.com/v2")

	viper.SetDefault("TWITTER_CLIENT_ID", "your_client_id")
	viper.SetDefault("TWITTER_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("TWITTER_AUTH_URL", "https://twitter.com/i/oauth2/authorize")
	viper.SetDefault("TWITTER_TOKEN_URL", "https://api.twitter.com/2/oauth2/token")
	viper.SetDefault("TWITTER_API_URL", "https://api.twitter.com/2")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")
	viper.SetDefault("META_DIALOG_URL", "https://www.facebook.com/v18.0/dialog/oauth")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")

	viper.SetDefault("INTEGRATIONS_REQUEST_TIMEOUT", "20s") // timeout por chamada externa
	viper.SetDefault("INTEGRATIONS_TWITTER_MAX_PAGES", 5)

	viper.SetDefault("TOKEN_CLEANUP_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("TOKEN_CLEANUP_ENABLED", true)

	viper.SetDefault("METRICS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("METRICS_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("METRICS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.finalize()

	return config, nil
}

// finalize deriva os campos calculados a partir dos valores lidos
func (c *Config) finalize() {
	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimSuffix(c.Meta.BaseURL, "/"), c.Meta.Version)
	c.App.URL = strings.TrimSuffix(c.App.URL, "/")

	if c.Integrations.RequestTimeout <= 0 {
		c.Integrations.RequestTimeout = 20 * time.Second
	}

	if c.Integrations.TwitterMaxPages <= 0 {
		c.Integrations.TwitterMaxPages = 5
	}

	switch c.Database.Driver {
	case "sqlite":
		c.Database.DSN = c.Database.Path
	default:
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
