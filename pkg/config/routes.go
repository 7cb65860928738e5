package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bffd/bffd/pkg/route"
	"gopkg.in/yaml.v3"
)

// Common errors for route file loading.
var (
	ErrFileNotFound = errors.New("routes file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("routes file is empty")
)

// RouteFile is the on-disk layout of a route seed file.
type RouteFile struct {
	Routes []route.Route `json:"routes" yaml:"routes"`
}

// LoadRoutes reads routes from a JSON or YAML file.
// The format is auto-detected based on file extension (.yaml, .yml for YAML, otherwise JSON).
func LoadRoutes(path string) ([]route.Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read routes file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	var file RouteFile
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	} else {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	return file.Routes, nil
}

// SeedRoutes loads the routes file and registers every route in order.
// It returns the number of routes read from the file.
func SeedRoutes(reg *route.Registry, path string) (int, error) {
	routes, err := LoadRoutes(path)
	if err != nil {
		return 0, err
	}
	for _, r := range routes {
		reg.AddOrUpdate(r)
	}
	return len(routes), nil
}
