package config

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ScanDocuments lists the document names found in dir: every *.md file
// matching pattern (default "*.md"), without its extension.
func ScanDocuments(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.md"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var names []string
	for _, m := range matches {
		if !strings.HasSuffix(m, ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(m, path.Ext(m)))
	}
	sort.Strings(names)
	return names, nil
}
