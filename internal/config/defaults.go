package config

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".cheatcompare.yml"

// DefaultDocuments is the stock set of comparable cheat sheets.
var DefaultDocuments = []string{"C++", "Go", "Java", "JavaScript", "PHP", "Python", "TypeScript"}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:     "CheatSheets Compare",
		Documents: append([]string(nil), DefaultDocuments...),
		BasePath:  "/CheatSheet",
		DocsDir:   "CheatSheet",
		Theme:     "github",
		DataDir:   ".cheatcompare",

		JournalRetentionDays: 30,

		Server: ServerConfig{
			Port:           8080,
			SessionTTLMins: 60,
		},
	}
}
