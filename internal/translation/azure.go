package translation

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	AzureProviderName = "azure"
	// DefaultAzureEndpoint is the Microsoft Translator V2 HTTP endpoint.
	DefaultAzureEndpoint = "https://api.microsofttranslator.com/V2/Http.svc/Translate"
)

// AzureProvider calls the Microsoft Translator V2 API. The response is an
// XML document whose root element holds the translation; the endpoint never
// reports a detected source language.
type AzureProvider struct {
	endpoint string
	client   *resty.Client
}

func NewAzureProvider(endpoint string) *AzureProvider {
	return &AzureProvider{
		endpoint: normalizeEndpoint(endpoint, DefaultAzureEndpoint),
		client:   newHTTPClient(),
	}
}

func (p *AzureProvider) Name() string {
	return AzureProviderName
}

func (p *AzureProvider) Fetch(ctx context.Context, req Request, credential string) (RawResponse, error) {
	if p == nil || p.client == nil {
		return RawResponse{}, unconfigured(AzureProviderName, "provider is not initialized")
	}
	return get(ctx, p.client, outboundCall{
		provider: AzureProviderName,
		endpoint: p.endpoint,
		query: map[string]string{
			"text": req.Text,
			"to":   req.TargetLanguage,
		},
		headers: map[string]string{
			"Ocp-Apim-Subscription-Key": credential,
			"Accept":                    "application/xml",
		},
	})
}

func (p *AzureProvider) Parse(raw RawResponse) (Parsed, error) {
	if raw.provider != AzureProviderName {
		return Parsed{}, malformed(AzureProviderName, "response belongs to another provider")
	}

	text, err := xmlRootText(raw.body)
	if err != nil {
		return Parsed{}, malformed(AzureProviderName, err.Error())
	}
	if strings.TrimSpace(text) == "" {
		return Parsed{}, malformed(AzureProviderName, "translation element is empty")
	}

	return Parsed{Text: text}, nil
}

// xmlRootText returns the character data directly inside the document's root
// element. XML entities are decoded by the parser, so the result is plain
// text and must not be decoded again.
func xmlRootText(body []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.Strict = true

	depth := 0
	seenRoot := false
	var text strings.Builder
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", errors.New("response is not valid XML")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && seenRoot {
				return "", errors.New("response has more than one root element")
			}
			seenRoot = true
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 1 {
				text.Write(t)
			}
		}
	}

	if !seenRoot {
		return "", errors.New("response has no root element")
	}
	return text.String(), nil
}
