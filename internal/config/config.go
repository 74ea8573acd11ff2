package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. CHEATCOMPARE_THEME or
// CHEATCOMPARE_SERVER__PORT.
const EnvPrefix = "CHEATCOMPARE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CHEATCOMPARE_*). A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// CHEATCOMPARE_SERVER__PORT -> server.port; CHEATCOMPARE_DOCUMENTS is a
	// comma-separated list.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")
		if key == "documents" {
			return key, splitAndTrim(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if c.BasePath == "" {
		return fmt.Errorf("base_path is required")
	}

	seen := make(map[string]bool, len(c.Documents))
	for _, name := range c.Documents {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("documents must not contain empty names")
		}
		if seen[name] {
			return fmt.Errorf("duplicate document %q", name)
		}
		seen[name] = true
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.SessionTTLMins < 0 {
		return fmt.Errorf("server.session_ttl_minutes must be non-negative")
	}
	if c.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("fetch_timeout_seconds must be non-negative")
	}
	if c.JournalRetentionDays < 0 {
		return fmt.Errorf("journal_retention_days must be non-negative")
	}

	return nil
}

// ServesDocs reports whether BasePath is a local path where DocsDir should
// be mounted, rather than an external URL.
func (c *Config) ServesDocs() bool {
	return c.DocsDir != "" && strings.HasPrefix(c.BasePath, "/")
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
