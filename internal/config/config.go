package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	TranslateService       string        `envconfig:"TRANSLATE_SERVICE" default:""`
	AzureSubscriptionKey   string        `envconfig:"AZURE_TRANSLATE_SUBSCRIBE_KEY" default:""`
	GoogleAPIKey           string        `envconfig:"GOOGLE_TRANSLATE_API_KEY" default:""`
	AzureEndpoint          string        `envconfig:"AZURE_TRANSLATE_ENDPOINT" default:""`
	GoogleEndpoint         string        `envconfig:"GOOGLE_TRANSLATE_ENDPOINT" default:""`
	TranslateTimeout       time.Duration `envconfig:"TRANSLATE_TIMEOUT" default:"5s"`
	TranslateStrictCatalog bool          `envconfig:"TRANSLATE_STRICT_CATALOG" default:"false"`
	TranslateCatalogDir    string        `envconfig:"TRANSLATE_CATALOG_DIR" default:""`
	TranslateDefaultLocale string        `envconfig:"TRANSLATE_DEFAULT_LOCALE" default:"ja"`
	TranslateRateLimit     float64       `envconfig:"TRANSLATE_RATE_LIMIT" default:"10"`

	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBMinConns  int32  `envconfig:"DB_MIN_CONNS" default:"1"`
	DBMaxConns  int32  `envconfig:"DB_MAX_CONNS" default:"4"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks process-level settings only. An unknown TRANSLATE_SERVICE or
// a missing provider key is reported by the translation gateway per request.
func (c *Config) Validate() error {
	if c.TranslateTimeout <= 0 {
		return fmt.Errorf("TRANSLATE_TIMEOUT must be > 0")
	}
	if c.TranslateRateLimit < 0 {
		return fmt.Errorf("TRANSLATE_RATE_LIMIT must be >= 0")
	}
	if strings.TrimSpace(c.TranslateDefaultLocale) == "" {
		return fmt.Errorf("TRANSLATE_DEFAULT_LOCALE is required")
	}
	if c.DBMinConns < 0 {
		return fmt.Errorf("DB_MIN_CONNS must be >= 0")
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be >= 1")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) cannot exceed DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	return nil
}

// Credentials maps provider names to their configured keys.
func (c *Config) Credentials() map[string]string {
	if c == nil {
		return map[string]string{}
	}
	return map[string]string{
		"azure":  strings.TrimSpace(c.AzureSubscriptionKey),
		"google": strings.TrimSpace(c.GoogleAPIKey),
	}
}

func (c *Config) DatabaseEnabled() bool {
	return c != nil && strings.TrimSpace(c.DatabaseURL) != ""
}

func (c *Config) CORSAllowedOriginsList() []string {
	if c == nil {
		return nil
	}

	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		if _, exists := seen[origin]; exists {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}
	return origins
}
