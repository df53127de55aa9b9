package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"horse.fit/translategw/internal/cli"
	"horse.fit/translategw/internal/translation"
)

func runTranslate(args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 30*time.Second, "Command timeout")
	lang := fs.String("lang", "", "Target language code (for example: ja, zh-Hans)")
	provider := fs.String("provider", "", "Override TRANSLATE_SERVICE (azure or google)")
	format := fs.String("format", outputFormatText, "Output format: text or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	outputFormat, err := parseOutputFormat(*format, outputFormatText, outputFormatText, outputFormatJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if strings.TrimSpace(*lang) == "" {
		fmt.Fprintln(os.Stderr, "--lang is required")
		printTranslateUsage()
		return 2
	}
	text := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "translate requires text to translate")
		printTranslateUsage()
		return 2
	}

	cfg, logger, err := loadRuntime(envLoader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	gateway, _, err := buildGateway(cfg, logger, *provider)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := gateway.Translate(ctx, text, *lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Translate failed [%s]: %v\n", translation.ErrorKind(err), err)
		if errors.Is(err, translation.ErrInvalidInput) {
			return 2
		}
		return 1
	}

	if err := renderTranslation(os.Stdout, result, outputFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		return 1
	}
	return 0
}

func renderTranslation(out io.Writer, result translation.TranslationResult, format string) error {
	if format == outputFormatJSON {
		return printJSON(out, result)
	}
	_, err := fmt.Fprintln(out, result.TranslatedText)
	return err
}

func printTranslateUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  translategw translate --lang <code> [--provider azure|google] [--format text|json] [--env .env] [--timeout 30s] <text>")
}
