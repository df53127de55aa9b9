package cli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestEnvLoaderIgnoresMissingDefaultFile(t *testing.T) {
	t.Setenv(EnvFileOverrideVar, "")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	loader := AddEnvFlag(fs, filepath.Join(t.TempDir(), ".env"), "")
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	path, err := loader.Load()
	if err != nil {
		t.Fatalf("expected missing default file to be ignored, got %v", err)
	}
	if path != "" {
		t.Fatalf("expected no loaded path, got %q", path)
	}
}

func TestEnvLoaderRejectsMissingExplicitFile(t *testing.T) {
	t.Setenv(EnvFileOverrideVar, "")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	loader := AddEnvFlag(fs, ".env", "")
	missing := filepath.Join(t.TempDir(), "missing.env")
	if err := fs.Parse([]string{"--env", missing}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	if _, err := loader.Load(); err == nil {
		t.Fatalf("expected error for missing explicit env file")
	}
}

func TestEnvLoaderOverloadsVariables(t *testing.T) {
	t.Setenv(EnvFileOverrideVar, "")
	t.Setenv("TRANSLATE_SERVICE", "azure")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("TRANSLATE_SERVICE=google\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	loader := AddEnvFlag(fs, ".env", "")
	if err := fs.Parse([]string{"--env", path}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	loaded, err := loader.Load()
	if err != nil {
		t.Fatalf("load env file: %v", err)
	}
	if loaded != path {
		t.Fatalf("unexpected loaded path: got %q want %q", loaded, path)
	}
	if got := os.Getenv("TRANSLATE_SERVICE"); got != "google" {
		t.Fatalf("expected TRANSLATE_SERVICE to be overloaded, got %q", got)
	}
}
