package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/acceptance.yaml
var defaultYAML []byte

// Load loads a scenario document.
// Search order: path -> ~/.xgeom/scenarios.yaml -> ./scenarios.yaml -> embedded default
//
// An explicit path must exist and parse. The fallback files are
// skipped if they are missing, and skipped with a warning on logger if
// they can't be read or parsed. If logger is nil, log.Default is used.
func Load(path string, logger *log.Logger) (Document, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("failed to read scenarios %s: %w", path, err)
		}
		doc, err := Parse(data)
		if err != nil {
			return Document{}, fmt.Errorf("failed to parse scenarios %s: %w", path, err)
		}
		return doc, nil
	}

	if logger == nil {
		logger = log.Default()
	}

	candidates := []string{userScenarioPath("scenarios.yaml"), "scenarios.yaml"}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if doc, ok := loadFallback(candidate, logger); ok {
			return doc, nil
		}
	}

	return Default()
}

func loadFallback(path string, logger *log.Logger) (Document, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("skipping unreadable scenarios", "path", path, "err", err)
		}
		return Document{}, false
	}

	doc, err := Parse(data)
	if err != nil {
		logger.Warn("skipping malformed scenarios", "path", path, "err", err)
		return Document{}, false
	}
	logger.Debug("loaded scenarios", "path", path, "cases", len(doc.Cases))
	return doc, true
}

// Default returns the embedded acceptance document.
func Default() (Document, error) {
	return Parse(defaultYAML)
}

// Parse decodes a scenario document from YAML.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// userScenarioPath returns the path to a file in the user's xgeom
// directory, or empty if the home directory is unavailable.
func userScenarioPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".xgeom", filename)
}
