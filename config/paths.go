package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDataRoot expands a leading "~" and makes the configured data
// root absolute.
func (c *Config) ResolveDataRoot() (string, error) {
	root := c.DataRoot
	if root == "~" || strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config: expand data root: %w", err)
		}
		root = filepath.Join(home, strings.TrimPrefix(root, "~"))
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("config: resolve data root: %w", err)
	}
	return abs, nil
}

// EnsureDirectories creates the paint data directory under the data
// root and returns its path.
func EnsureDirectories(dataRoot string) (string, error) {
	paintDir := filepath.Join(dataRoot, "paint")
	if err := os.MkdirAll(paintDir, 0o755); err != nil {
		return "", fmt.Errorf("config: create paint dir: %w", err)
	}
	return paintDir, nil
}
