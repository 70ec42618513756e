package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// loadData reads render data from a JSON or YAML file. An empty path yields
// nil data.
func loadData(path string) (any, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}

	out := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("decode yaml data %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("decode json data %s: %w", path, err)
		}
	}
	return out, nil
}
