package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Title != "CheatSheets Compare" {
		t.Errorf("expected default title, got %q", cfg.Title)
	}
	if len(cfg.Documents) != 7 || cfg.Documents[0] != "C++" || cfg.Documents[1] != "Go" {
		t.Errorf("unexpected default documents %v", cfg.Documents)
	}
	if cfg.BasePath != "/CheatSheet" {
		t.Errorf("expected default base_path %q, got %q", "/CheatSheet", cfg.BasePath)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.FetchTimeoutSeconds != 0 {
		t.Errorf("expected no default fetch timeout, got %d", cfg.FetchTimeoutSeconds)
	}
	if cfg.JournalRetentionDays != 30 {
		t.Errorf("expected journal retention 30 days, got %d", cfg.JournalRetentionDays)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.cheatcompare.yml")

	original := DefaultConfig()
	original.Title = "Languages"
	original.Documents = []string{"Rust", "Zig"}
	original.BasePath = "https://sheets.example.com/md"
	original.Theme = "monokai"
	original.Server.Port = 9000
	original.FetchTimeoutSeconds = 15

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.BasePath != original.BasePath {
		t.Errorf("base_path: got %q, want %q", loaded.BasePath, original.BasePath)
	}
	if loaded.Theme != original.Theme {
		t.Errorf("theme: got %q, want %q", loaded.Theme, original.Theme)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("server.port: got %d, want 9000", loaded.Server.Port)
	}
	if loaded.FetchTimeoutSeconds != 15 {
		t.Errorf("fetch_timeout_seconds: got %d, want 15", loaded.FetchTimeoutSeconds)
	}
	if len(loaded.Documents) != 2 || loaded.Documents[0] != "Rust" || loaded.Documents[1] != "Zig" {
		t.Errorf("documents: got %v", loaded.Documents)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Title != "CheatSheets Compare" {
		t.Errorf("expected default title, got %q", cfg.Title)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("CHEATCOMPARE_THEME", "dracula")
	t.Setenv("CHEATCOMPARE_SERVER__PORT", "9191")
	t.Setenv("CHEATCOMPARE_DOCUMENTS", "Go, Python")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Theme != "dracula" {
		t.Errorf("theme override failed: got %q", loaded.Theme)
	}
	if loaded.Server.Port != 9191 {
		t.Errorf("port override failed: got %d", loaded.Server.Port)
	}
	if len(loaded.Documents) != 2 || loaded.Documents[1] != "Python" {
		t.Errorf("documents override failed: got %v", loaded.Documents)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"empty title", func(c *Config) { c.Title = " " }, false},
		{"empty base path", func(c *Config) { c.BasePath = "" }, false},
		{"duplicate document", func(c *Config) { c.Documents = []string{"Go", "Go"} }, false},
		{"empty document", func(c *Config) { c.Documents = []string{"Go", ""} }, false},
		{"no documents", func(c *Config) { c.Documents = nil }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, false},
		{"negative ttl", func(c *Config) { c.Server.SessionTTLMins = -1 }, false},
		{"negative timeout", func(c *Config) { c.FetchTimeoutSeconds = -1 }, false},
		{"negative retention", func(c *Config) { c.JournalRetentionDays = -1 }, false},
		{"keep journal forever", func(c *Config) { c.JournalRetentionDays = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestServesDocs(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.ServesDocs() {
		t.Error("default config should mount the local docs dir")
	}
	cfg.BasePath = "https://example.com/sheets"
	if cfg.ServesDocs() {
		t.Error("external base url should not mount docs dir")
	}
}

func TestScanDocuments(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Go.md", "C++.md", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("# x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	os.MkdirAll(filepath.Join(dir, "extra"), 0o755)
	os.WriteFile(filepath.Join(dir, "extra", "Rust.md"), []byte("# r"), 0o644)

	names, err := ScanDocuments(dir, "")
	if err != nil {
		t.Fatalf("ScanDocuments: %v", err)
	}
	if len(names) != 2 || names[0] != "C++" || names[1] != "Go" {
		t.Errorf("ScanDocuments = %v, want [C++ Go]", names)
	}

	nested, err := ScanDocuments(dir, "**/*.md")
	if err != nil {
		t.Fatalf("ScanDocuments: %v", err)
	}
	if len(nested) != 3 {
		t.Errorf("ScanDocuments(**) = %v, want 3 entries", nested)
	}

	if _, err := ScanDocuments(dir, "[unclosed"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" C++ , Go ", []string{"C++", "Go"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
