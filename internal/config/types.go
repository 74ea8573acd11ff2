package config

// Config is the top-level cheatcompare configuration, corresponding to
// .cheatcompare.yml.
type Config struct {
	Title     string   `yaml:"title" koanf:"title"`
	Documents []string `yaml:"documents" koanf:"documents"`
	// BasePath is where documents are fetched from: a path on this server
	// (where DocsDir is mounted) or an absolute URL of an external store.
	BasePath string       `yaml:"base_path" koanf:"base_path"`
	DocsDir  string       `yaml:"docs_dir" koanf:"docs_dir"`
	Theme    string       `yaml:"theme" koanf:"theme"`
	DataDir  string       `yaml:"data_dir" koanf:"data_dir"`
	Server   ServerConfig `yaml:"server" koanf:"server"`
	// FetchTimeoutSeconds bounds one retrieval; 0 waits indefinitely.
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds" koanf:"fetch_timeout_seconds"`
	// JournalRetentionDays is how long failure entries are kept; 0 keeps
	// them forever.
	JournalRetentionDays int `yaml:"journal_retention_days" koanf:"journal_retention_days"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SessionTTLMins  int  `yaml:"session_ttl_minutes" koanf:"session_ttl_minutes"`
}
