package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds one outbound provider call.
const DefaultTimeout = 5 * time.Second

// GatewayOptions tunes a Gateway.
type GatewayOptions struct {
	Timeout time.Duration
	// StrictCatalog rejects target codes missing from a non-empty active
	// catalog before any network call.
	StrictCatalog bool
	Logger        zerolog.Logger
}

// Gateway is the single entry point for translations. The active provider is
// resolved once at construction; a failed resolution is returned from every
// Translate call.
type Gateway struct {
	provider      Provider
	providerName  string
	credential    string
	catalog       *Catalog
	resolveErr    error
	timeout       time.Duration
	strictCatalog bool
	logger        zerolog.Logger
}

func NewGateway(cfg ProviderConfig, registry *Registry, catalogs *CatalogSet, opts GatewayOptions) *Gateway {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	name := normalizeProviderName(cfg.ActiveProvider)
	g := &Gateway{
		providerName:  name,
		catalog:       catalogs.For(name),
		timeout:       timeout,
		strictCatalog: opts.StrictCatalog,
		logger:        opts.Logger,
	}

	provider, err := registry.Provider(name)
	if err != nil {
		g.resolveErr = err
		return g
	}
	credential := cfg.credential(name)
	if credential == "" {
		g.resolveErr = unconfigured(name, "credential is missing")
		return g
	}

	g.provider = provider
	g.credential = credential
	return g
}

// ProviderName returns the configured provider identifier, even when it did
// not resolve.
func (g *Gateway) ProviderName() string {
	if g == nil {
		return ""
	}
	return g.providerName
}

// Catalog returns the active provider's language catalog (possibly empty).
func (g *Gateway) Catalog() *Catalog {
	if g == nil {
		return NewCatalog("", nil)
	}
	return g.catalog
}

// Err reports the provider resolution failure, if any.
func (g *Gateway) Err() error {
	if g == nil {
		return unconfigured("", "gateway is not initialized")
	}
	return g.resolveErr
}

// Translate validates input, performs exactly one provider call, and returns
// the normalized result.
func (g *Gateway) Translate(ctx context.Context, text, targetLanguage string) (TranslationResult, error) {
	if g == nil {
		return TranslationResult{}, unconfigured("", "gateway is not initialized")
	}

	req, err := newRequest(text, targetLanguage)
	if err != nil {
		return TranslationResult{}, err
	}
	if g.resolveErr != nil {
		return TranslationResult{}, g.resolveErr
	}
	if g.strictCatalog && g.catalog.Len() > 0 {
		canonical, _, ok := g.catalog.Lookup(req.TargetLanguage)
		if !ok {
			return TranslationResult{}, invalidInput(fmt.Sprintf("target language %q is not supported by %s", req.TargetLanguage, g.providerName))
		}
		req.TargetLanguage = canonical
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	raw, err := g.provider.Fetch(callCtx, req, g.credential)
	if err != nil {
		err = g.normalizeError(err)
		g.logFailure(err, req, started)
		return TranslationResult{}, err
	}

	parsed, err := g.provider.Parse(raw)
	if err != nil {
		err = g.normalizeError(err)
		g.logFailure(err, req, started)
		return TranslationResult{}, err
	}

	result, err := g.finish(parsed)
	if err != nil {
		g.logFailure(err, req, started)
		return TranslationResult{}, err
	}

	g.logger.Debug().
		Str("provider", g.providerName).
		Str("target_lang", req.TargetLanguage).
		Bool("source_detected", result.DetectedSourceLanguage != nil).
		Dur("latency", time.Since(started)).
		Msg("translation completed")
	return result, nil
}

func (g *Gateway) finish(parsed Parsed) (TranslationResult, error) {
	plain := strings.TrimSpace(parsed.Text)
	if parsed.Escaped {
		plain = Sanitize(parsed.Text)
	}
	if plain == "" {
		return TranslationResult{}, malformed(g.providerName, "translation is empty")
	}

	var detected *string
	if parsed.DetectedSourceLanguage != nil {
		detected = optionalString(*parsed.DetectedSourceLanguage)
	}

	return TranslationResult{
		TranslatedText:         annotate(plain, detected),
		PlainText:              plain,
		DetectedSourceLanguage: detected,
		Provider:               g.providerName,
	}, nil
}

// normalizeError keeps adapter errors that are already normalized and turns
// anything else into a detail-free unavailable error.
func (g *Gateway) normalizeError(err error) error {
	var translationErr *Error
	if errors.As(err, &translationErr) {
		return translationErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return timedOut(g.providerName)
	}
	return unavailable(g.providerName, "request failed")
}

func (g *Gateway) logFailure(err error, req Request, started time.Time) {
	g.logger.Warn().
		Err(err).
		Str("kind", ErrorKind(err)).
		Str("provider", g.providerName).
		Str("target_lang", req.TargetLanguage).
		Dur("latency", time.Since(started)).
		Msg("translation failed")
}

// annotate prefixes the display text with provenance. Without a detected
// source language the marker names no language.
func annotate(text string, detectedSourceLanguage *string) string {
	if detectedSourceLanguage == nil {
		return "[Translated] " + text
	}
	return fmt.Sprintf("[Translated from %s] %s", *detectedSourceLanguage, text)
}
