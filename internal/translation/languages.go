package translation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"horse.fit/translategw/internal/language"
)

const (
	catalogFilePrefix = "translate_languages_"
	catalogFileSuffix = ".json"
)

//go:embed catalogs/*.json
var embeddedCatalogs embed.FS

//go:embed catalog.schema.json
var catalogSchemaJSON string

// LanguageOption is one entry of the target-language menu.
type LanguageOption struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	MenuText string `json:"menu_text"`
}

// Catalog maps a provider's language codes to display names. It is
// read-only once built.
type Catalog struct {
	provider string
	names    map[string]string
	byTag    map[string]string
}

func NewCatalog(provider string, entries map[string]string) *Catalog {
	c := &Catalog{
		provider: normalizeProviderName(provider),
		names:    make(map[string]string, len(entries)),
		byTag:    make(map[string]string, len(entries)),
	}
	for code, name := range entries {
		code = strings.TrimSpace(code)
		name = strings.TrimSpace(name)
		tag := language.NormalizeTag(code)
		if tag == "" || name == "" {
			continue
		}
		c.names[code] = name
		c.byTag[tag] = code
	}
	return c
}

func (c *Catalog) Provider() string {
	if c == nil {
		return ""
	}
	return c.provider
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Lookup resolves a code case-insensitively, returning the catalog's own
// spelling of the code and its display name.
func (c *Catalog) Lookup(code string) (string, string, bool) {
	if c == nil {
		return "", "", false
	}
	canonical, ok := c.byTag[language.NormalizeTag(code)]
	if !ok {
		return "", "", false
	}
	return canonical, c.names[canonical], true
}

func (c *Catalog) Contains(code string) bool {
	_, _, ok := c.Lookup(code)
	return ok
}

// Codes returns catalog codes in sorted order.
func (c *Catalog) Codes() []string {
	if c == nil {
		return []string{}
	}
	codes := make([]string, 0, len(c.names))
	for code := range c.names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Options returns the menu entries, sorted by code.
func (c *Catalog) Options() []LanguageOption {
	codes := c.Codes()
	options := make([]LanguageOption, 0, len(codes))
	for _, code := range codes {
		name := c.names[code]
		options = append(options, LanguageOption{
			Code:     code,
			Label:    name,
			MenuText: fmt.Sprintf("%s : %s", code, name),
		})
	}
	return options
}

// CatalogSet holds one catalog per provider.
type CatalogSet struct {
	catalogs map[string]*Catalog
}

func NewCatalogSet(catalogs ...*Catalog) *CatalogSet {
	set := &CatalogSet{catalogs: make(map[string]*Catalog, len(catalogs))}
	for _, catalog := range catalogs {
		if catalog == nil || catalog.provider == "" {
			continue
		}
		set.catalogs[catalog.provider] = catalog
	}
	return set
}

// For returns the provider's catalog, or an empty one when none was loaded.
func (s *CatalogSet) For(provider string) *Catalog {
	name := normalizeProviderName(provider)
	if s != nil {
		if catalog, ok := s.catalogs[name]; ok {
			return catalog
		}
	}
	return NewCatalog(name, nil)
}

func (s *CatalogSet) Providers() []string {
	if s == nil {
		return []string{}
	}
	names := make([]string, 0, len(s.catalogs))
	for name := range s.catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadCatalogs loads the embedded provider catalogs. Files named
// translate_languages_<provider>.json in dir, when dir is set, replace the
// embedded catalog for that provider or add a new one.
func LoadCatalogs(dir string) (*CatalogSet, error) {
	set := NewCatalogSet()

	embedded, err := fs.Sub(embeddedCatalogs, "catalogs")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalogs: %w", err)
	}
	if err := loadCatalogDir(set, embedded); err != nil {
		return nil, err
	}

	dir = strings.TrimSpace(dir)
	if dir == "" {
		return set, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open catalog dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog dir %s is not a directory", dir)
	}
	if err := loadCatalogDir(set, os.DirFS(filepath.Clean(dir))); err != nil {
		return nil, err
	}
	return set, nil
}

func loadCatalogDir(set *CatalogSet, fsys fs.FS) error {
	matches, err := fs.Glob(fsys, catalogFilePrefix+"*"+catalogFileSuffix)
	if err != nil {
		return fmt.Errorf("list catalog files: %w", err)
	}
	for _, name := range matches {
		provider := normalizeProviderName(strings.TrimSuffix(strings.TrimPrefix(name, catalogFilePrefix), catalogFileSuffix))
		if provider == "" {
			continue
		}
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read catalog %s: %w", name, err)
		}
		entries, err := decodeCatalog(raw)
		if err != nil {
			return fmt.Errorf("catalog %s: %w", name, err)
		}
		set.catalogs[provider] = NewCatalog(provider, entries)
	}
	return nil
}

func decodeCatalog(raw []byte) (map[string]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog contains trailing content")
	}

	schema, err := loadCatalogSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return entries, nil
}

var (
	catalogSchemaOnce sync.Once
	catalogSchema     *jsonschema.Schema
	catalogSchemaErr  error
)

func loadCatalogSchema() (*jsonschema.Schema, error) {
	catalogSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("catalog.schema.json", strings.NewReader(catalogSchemaJSON)); err != nil {
			catalogSchemaErr = fmt.Errorf("add catalog schema resource: %w", err)
			return
		}
		schema, err := compiler.Compile("catalog.schema.json")
		if err != nil {
			catalogSchemaErr = fmt.Errorf("compile catalog schema: %w", err)
			return
		}
		catalogSchema = schema
	})
	if catalogSchemaErr != nil {
		return nil, catalogSchemaErr
	}
	if catalogSchema == nil {
		return nil, fmt.Errorf("catalog schema not initialized")
	}
	return catalogSchema, nil
}
