package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aiif/aiifcheck/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".aiifcheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .aiifcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .aiifcheck.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	// Unset fields fall back to defaults; explicit values win.
	defaults := domain.DefaultConfig()
	if cfg.Checklist == "" {
		cfg.Checklist = defaults.Checklist
	}
	if cfg.Output == "" {
		cfg.Output = defaults.Output
	}

	return cfg, nil
}
