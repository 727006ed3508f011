// Package loader reads AIIF documents and checklists from disk.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader implements domain.DocumentLoader for JSON and YAML files.
// The format is chosen by file extension; anything that is not .yaml or
// .yml is parsed as JSON.
type FileLoader struct{}

func New() *FileLoader { return &FileLoader{} }

func (l *FileLoader) Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return doc, nil
}
