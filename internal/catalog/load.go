package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/priya/skillgap/internal/schemas"
)

// LoadFile reads a catalog document from a JSON or YAML file and builds a
// Table from it. JSON documents are schema-validated before decoding; YAML
// documents are decoded strictly so unknown fields are rejected.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc *Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc, err = parseJSON(data)
	case ".yaml", ".yml":
		doc, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q, expected .json, .yaml, or .yml", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	return New(doc)
}

func parseJSON(data []byte) (*Document, error) {
	if err := schemas.ValidateCatalog(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func parseYAML(data []byte) (*Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
