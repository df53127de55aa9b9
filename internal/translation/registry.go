package translation

import (
	"fmt"
	"sort"
	"strings"
)

// Registry stores translation providers by name. Resolution never falls back
// to another provider: an unknown or blank name is a configuration error.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Endpoints overrides provider base URLs. Blank values use the public APIs.
type Endpoints struct {
	Azure  string
	Google string
}

// NewDefaultRegistry registers the Azure and Google providers.
func NewDefaultRegistry(endpoints Endpoints) *Registry {
	registry := NewRegistry()
	registry.mustRegister(NewAzureProvider(endpoints.Azure))
	registry.mustRegister(NewGoogleProvider(endpoints.Google))
	return registry
}

// mustRegister is for built-in providers, whose names are constant.
func (r *Registry) mustRegister(provider Provider) {
	if err := r.Register(provider); err != nil {
		panic(fmt.Sprintf("register built-in provider: %v", err))
	}
}

// Register adds one provider, replacing any provider with the same name.
func (r *Registry) Register(provider Provider) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if provider == nil {
		return fmt.Errorf("provider is nil")
	}
	name := normalizeProviderName(provider.Name())
	if name == "" {
		return fmt.Errorf("provider name is required")
	}
	r.providers[name] = provider
	return nil
}

// Provider resolves a provider by name.
func (r *Registry) Provider(name string) (Provider, error) {
	resolvedName := normalizeProviderName(name)
	if r == nil || len(r.providers) == 0 {
		return nil, unconfigured(resolvedName, "no translation providers are registered")
	}
	if resolvedName == "" {
		return nil, unconfigured("", fmt.Sprintf("no provider selected (available: %s)", strings.Join(r.ProviderNames(), ", ")))
	}

	provider, ok := r.providers[resolvedName]
	if !ok {
		return nil, unconfigured(resolvedName, fmt.Sprintf("provider is not registered (available: %s)", strings.Join(r.ProviderNames(), ", ")))
	}
	return provider, nil
}

func (r *Registry) ProviderNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeProviderName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
