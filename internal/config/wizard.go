package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// themes offered by the wizard; any chroma style name is accepted in the
// config file.
var themes = []string{"github", "monokai", "dracula", "solarized-light", "nord"}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to cheatcompare! Let's configure your document store.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Page heading",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = title

	basePrompt := promptui.Prompt{
		Label:   "Document base path or URL",
		Default: cfg.BasePath,
	}
	base, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base path: %w", err)
	}
	cfg.BasePath = base

	if strings.HasPrefix(base, "/") {
		dirPrompt := promptui.Prompt{
			Label:   "Local directory holding the documents",
			Default: cfg.DocsDir,
		}
		dir, err := dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("docs dir: %w", err)
		}
		cfg.DocsDir = dir

		if names, err := ScanDocuments(dir, ""); err == nil && len(names) > 0 {
			fmt.Printf("Found %d documents in %s\n", len(names), dir)
			cfg.Documents = names
		}
	} else {
		cfg.DocsDir = ""
	}

	docsPrompt := promptui.Prompt{
		Label:   "Documents (comma-separated, first two are the defaults)",
		Default: strings.Join(cfg.Documents, ","),
	}
	docs, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("documents: %w", err)
	}
	cfg.Documents = splitAndTrim(docs)

	themePrompt := promptui.Select{
		Label: "Code highlighting theme",
		Items: themes,
	}
	_, theme, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = theme

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("enter a port between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.DocsDir != "" {
		if _, err := os.Stat(cfg.DocsDir); os.IsNotExist(err) {
			fmt.Printf("\nNote: %s does not exist yet; add one .md file per document.\n", cfg.DocsDir)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
