package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"horse.fit/translategw/internal/cli"
	"horse.fit/translategw/internal/translation"
)

func runLanguages(args []string) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	provider := fs.String("provider", "", "Provider catalog to list (defaults to TRANSLATE_SERVICE)")
	format := fs.String("format", outputFormatTable, "Output format: table or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	outputFormat, err := parseOutputFormat(*format, outputFormatTable, outputFormatTable, outputFormatJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, _, err := loadRuntime(envLoader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	catalogs, err := translation.LoadCatalogs(cfg.TranslateCatalogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load language catalogs: %v\n", err)
		return 1
	}

	name := strings.TrimSpace(*provider)
	if name == "" {
		name = cfg.TranslateService
	}
	catalog := catalogs.For(name)
	if catalog.Len() == 0 {
		fmt.Fprintf(os.Stderr, "No language catalog for provider %q (available: %s)\n", name, strings.Join(catalogs.Providers(), ", "))
		return 1
	}

	if err := renderLanguages(os.Stdout, catalog, outputFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		return 1
	}
	return 0
}

func renderLanguages(out io.Writer, catalog *translation.Catalog, format string) error {
	options := catalog.Options()
	if format == outputFormatJSON {
		return printJSON(out, map[string]any{
			"provider":  catalog.Provider(),
			"languages": options,
		})
	}

	rows := make([][]string, 0, len(options))
	for _, option := range options {
		rows = append(rows, []string{option.Code, option.Label, option.MenuText})
	}
	return writeTable(out, []string{"CODE", "NAME", "MENU"}, rows)
}
