// Package config loads the optional .polyglot.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = ".polyglot.yaml"

// Config is the on-disk project configuration. All fields are optional;
// the zero value is the default behavior.
type Config struct {
	// Theme names the color theme: "default" or "mono".
	Theme string `yaml:"theme"`
	// Ignore lists glob patterns the scanner skips, matched against
	// slash-separated paths relative to the scan root.
	Ignore []string `yaml:"ignore"`
}

// Load reads .polyglot.yaml from root, falling back to the user config
// directory. A missing file yields the zero Config; a malformed file is
// an error.
func Load(root string) (Config, error) {
	var cfg Config
	for _, path := range candidates(root) {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

func candidates(root string) []string {
	paths := []string{filepath.Join(root, fileName)}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "polyglot", "config.yaml"))
	}
	return paths
}
