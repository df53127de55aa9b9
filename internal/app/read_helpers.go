package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"horse.fit/translategw/internal/cli"
	"horse.fit/translategw/internal/config"
	"horse.fit/translategw/internal/logging"
	"horse.fit/translategw/internal/translation"
)

const (
	outputFormatTable = "table"
	outputFormatJSON  = "json"
	outputFormatText  = "text"
)

func parseOutputFormat(raw, defaultFormat string, allowed ...string) (string, error) {
	format := strings.TrimSpace(strings.ToLower(raw))
	if format == "" {
		format = strings.TrimSpace(strings.ToLower(defaultFormat))
	}
	for _, candidate := range allowed {
		if format == candidate {
			return format, nil
		}
	}
	return "", fmt.Errorf("--format must be one of: %s", strings.Join(allowed, ", "))
}

// loadRuntime loads the env file, config, and logger shared by every command.
func loadRuntime(envLoader *cli.EnvLoader) (*config.Config, zerolog.Logger, error) {
	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger, nil
}

// buildGateway assembles the provider registry, catalogs, and gateway from
// config. A provider override replaces TRANSLATE_SERVICE when non-empty.
func buildGateway(cfg *config.Config, logger zerolog.Logger, providerOverride string) (*translation.Gateway, *translation.CatalogSet, error) {
	catalogs, err := translation.LoadCatalogs(cfg.TranslateCatalogDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load language catalogs: %w", err)
	}

	registry := translation.NewDefaultRegistry(translation.Endpoints{
		Azure:  cfg.AzureEndpoint,
		Google: cfg.GoogleEndpoint,
	})

	active := cfg.TranslateService
	if strings.TrimSpace(providerOverride) != "" {
		active = providerOverride
	}

	gateway := translation.NewGateway(translation.ProviderConfig{
		ActiveProvider: active,
		Credentials:    cfg.Credentials(),
	}, registry, catalogs, translation.GatewayOptions{
		Timeout:       cfg.TranslateTimeout,
		StrictCatalog: cfg.TranslateStrictCatalog,
		Logger:        logger,
	})
	return gateway, catalogs, nil
}

func printJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(writer, strings.Join(headers, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(writer, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return writer.Flush()
}
