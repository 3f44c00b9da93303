package resources

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/priya/skillgap/internal/schemas"
	"github.com/priya/skillgap/internal/types"
)

//go:embed resources.json
var defaultResourcesJSON []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in curated resource catalog. The embedded
// document is parsed once; a malformed embed is a programming error and
// panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		var entries map[string][]types.Resource
		if err := json.Unmarshal(defaultResourcesJSON, &entries); err != nil {
			panic(fmt.Sprintf("embedded resource catalog is malformed: %v", err))
		}
		defaultCatalog = NewCatalog(entries)
	})
	return defaultCatalog
}

// LoadFile reads a curated resource catalog from a JSON or YAML file. JSON
// documents are schema-validated before decoding; YAML documents are decoded
// strictly.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource catalog file: %w", err)
	}

	var entries map[string][]types.Resource
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entries, err = parseJSON(data)
	case ".yaml", ".yml":
		entries, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported resource catalog format %q, expected .json, .yaml, or .yml", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse resource catalog file %s: %w", path, err)
	}

	return NewCatalog(entries), nil
}

func parseJSON(data []byte) (map[string][]types.Resource, error) {
	if err := schemas.ValidateResources(data); err != nil {
		return nil, err
	}
	var entries map[string][]types.Resource
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseYAML(data []byte) (map[string][]types.Resource, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var entries map[string][]types.Resource
	if err := decoder.Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}
