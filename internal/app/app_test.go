package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"horse.fit/translategw/internal/langdetect"
	"horse.fit/translategw/internal/translation"
)

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	if code := Run([]string{"bogus"}); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if code := Run(nil); code != 2 {
		t.Fatalf("expected exit code 2 without args, got %d", code)
	}
	if code := Run([]string{"help"}); code != 0 {
		t.Fatalf("expected exit code 0 for help, got %d", code)
	}
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	got, err := parseOutputFormat(" JSON ", outputFormatText, outputFormatText, outputFormatJSON)
	if err != nil || got != outputFormatJSON {
		t.Fatalf("expected json, got %q (%v)", got, err)
	}
	got, err = parseOutputFormat("", outputFormatTable, outputFormatTable, outputFormatJSON)
	if err != nil || got != outputFormatTable {
		t.Fatalf("expected default table, got %q (%v)", got, err)
	}
	if _, err := parseOutputFormat("yaml", outputFormatText, outputFormatText, outputFormatJSON); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestRenderTranslation(t *testing.T) {
	t.Parallel()

	detected := "en"
	result := translation.TranslationResult{
		TranslatedText:         "[Translated from en] こんにちは",
		PlainText:              "こんにちは",
		DetectedSourceLanguage: &detected,
		Provider:               "google",
	}

	var text bytes.Buffer
	if err := renderTranslation(&text, result, outputFormatText); err != nil {
		t.Fatalf("render text: %v", err)
	}
	if text.String() != "[Translated from en] こんにちは\n" {
		t.Fatalf("unexpected text output: %q", text.String())
	}

	var out bytes.Buffer
	if err := renderTranslation(&out, result, outputFormatJSON); err != nil {
		t.Fatalf("render json: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json output: %v", err)
	}
	if decoded["provider"] != "google" || decoded["detected_source_language"] != "en" {
		t.Fatalf("unexpected json output: %v", decoded)
	}
}

func TestRenderLanguages(t *testing.T) {
	t.Parallel()

	catalog := translation.NewCatalog("azure", map[string]string{"ja": "Japanese", "en": "English"})

	var table bytes.Buffer
	if err := renderLanguages(&table, catalog, outputFormatTable); err != nil {
		t.Fatalf("render table: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), table.String())
	}
	if !strings.HasPrefix(lines[1], "en") || !strings.Contains(lines[1], "en : English") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}

	var out bytes.Buffer
	if err := renderLanguages(&out, catalog, outputFormatJSON); err != nil {
		t.Fatalf("render json: %v", err)
	}
	var decoded struct {
		Provider  string                       `json:"provider"`
		Languages []translation.LanguageOption `json:"languages"`
	}
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json output: %v", err)
	}
	if decoded.Provider != "azure" || len(decoded.Languages) != 2 {
		t.Fatalf("unexpected json output: %+v", decoded)
	}
}

func TestRenderDetection(t *testing.T) {
	t.Parallel()

	var unknown bytes.Buffer
	if err := renderDetection(&unknown, langdetect.Result{}, false, outputFormatText); err != nil {
		t.Fatalf("render unknown: %v", err)
	}
	if unknown.String() != "unknown\n" {
		t.Fatalf("unexpected output: %q", unknown.String())
	}

	var known bytes.Buffer
	result := langdetect.Result{Language: "en", Name: "ENGLISH", Confidence: 0.5}
	if err := renderDetection(&known, result, true, outputFormatText); err != nil {
		t.Fatalf("render known: %v", err)
	}
	if known.String() != "en (english, confidence 0.50)\n" {
		t.Fatalf("unexpected output: %q", known.String())
	}
}
