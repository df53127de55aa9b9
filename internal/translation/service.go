package translation

import (
	"context"
	"strings"
)

// Provider encapsulates one translation backend's wire protocol.
// Fetch performs exactly one outbound request; Parse extracts the translated
// text as literally received and reports whether it is still HTML-escaped.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, req Request, credential string) (RawResponse, error)
	Parse(raw RawResponse) (Parsed, error)
}

// Request describes one translation call.
type Request struct {
	Text           string
	TargetLanguage string // provider-specific code, for example "ja" or "zh-Hans"
}

// RawResponse is an undecoded provider response. Only the Provider that
// produced it can read it.
type RawResponse struct {
	provider string
	body     []byte
}

// Parsed is the intermediate adapter result before Gateway normalization.
// Escaped is set when Text is still HTML-escaped markup; otherwise Text is
// already plain and is only trimmed.
type Parsed struct {
	Text                   string
	DetectedSourceLanguage *string
	Escaped                bool
}

// TranslationResult is the normalized gateway output.
type TranslationResult struct {
	// TranslatedText is the display string, annotated with provenance.
	TranslatedText         string  `json:"text"`
	PlainText              string  `json:"plain_text"`
	DetectedSourceLanguage *string `json:"detected_source_language"`
	Provider               string  `json:"provider"`
}

// ProviderConfig selects the active provider and holds per-provider credentials.
type ProviderConfig struct {
	ActiveProvider string
	Credentials    map[string]string
}

func (c ProviderConfig) credential(provider string) string {
	if c.Credentials == nil {
		return ""
	}
	return strings.TrimSpace(c.Credentials[provider])
}

func newRequest(text, targetLanguage string) (Request, error) {
	if strings.TrimSpace(text) == "" {
		return Request{}, invalidInput("text is required")
	}
	target := strings.TrimSpace(targetLanguage)
	if target == "" {
		return Request{}, invalidInput("target language is required")
	}
	return Request{Text: text, TargetLanguage: target}, nil
}

func optionalString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
