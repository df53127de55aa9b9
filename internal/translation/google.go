package translation

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
)

const (
	GoogleProviderName = "google"
	// DefaultGoogleEndpoint is the Cloud Translation v2 REST endpoint.
	DefaultGoogleEndpoint = "https://www.googleapis.com/language/translate/v2"
)

// GoogleProvider calls the Google Cloud Translation v2 API with an API key.
type GoogleProvider struct {
	endpoint string
	client   *resty.Client
}

func NewGoogleProvider(endpoint string) *GoogleProvider {
	return &GoogleProvider{
		endpoint: normalizeEndpoint(endpoint, DefaultGoogleEndpoint),
		client:   newHTTPClient(),
	}
}

func (p *GoogleProvider) Name() string {
	return GoogleProviderName
}

func (p *GoogleProvider) Fetch(ctx context.Context, req Request, credential string) (RawResponse, error) {
	if p == nil || p.client == nil {
		return RawResponse{}, unconfigured(GoogleProviderName, "provider is not initialized")
	}
	return get(ctx, p.client, outboundCall{
		provider: GoogleProviderName,
		endpoint: p.endpoint,
		query: map[string]string{
			"key":    credential,
			"q":      req.Text,
			"target": req.TargetLanguage,
		},
		headers: map[string]string{
			"Accept": "application/json",
		},
	})
}

func (p *GoogleProvider) Parse(raw RawResponse) (Parsed, error) {
	if raw.provider != GoogleProviderName {
		return Parsed{}, malformed(GoogleProviderName, "response belongs to another provider")
	}

	var payload googleTranslateResponse
	if err := json.Unmarshal(raw.body, &payload); err != nil {
		return Parsed{}, malformed(GoogleProviderName, "response is not valid JSON")
	}
	if payload.Data == nil || len(payload.Data.Translations) == 0 {
		return Parsed{}, malformed(GoogleProviderName, "response missing data.translations")
	}

	first := payload.Data.Translations[0]
	if first.TranslatedText == nil {
		return Parsed{}, malformed(GoogleProviderName, "response missing data.translations[0].translatedText")
	}

	parsed := Parsed{Text: *first.TranslatedText, Escaped: true}
	if first.DetectedSourceLanguage != nil {
		parsed.DetectedSourceLanguage = optionalString(*first.DetectedSourceLanguage)
	}
	return parsed, nil
}

type googleTranslateResponse struct {
	Data *struct {
		Translations []struct {
			TranslatedText         *string `json:"translatedText"`
			DetectedSourceLanguage *string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
}
