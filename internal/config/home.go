package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath returns where pickfile looks for its config file.
// Priority order:
//  1. PICKFILE_CONFIG environment variable (if set)
//  2. <user config dir>/pickfile/config.yaml
func DefaultConfigPath() (string, error) {
	if path := os.Getenv("PICKFILE_CONFIG"); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}

	return filepath.Join(dir, "pickfile", "config.yaml"), nil
}
