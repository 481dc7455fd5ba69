package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the decoder used by Parse.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

//go:embed menu.yaml
var defaultMenu []byte

// document is the on-disk layout: {"data": [...items]}.
type document struct {
	Data []MenuItem `json:"data" yaml:"data"`
}

// Default returns the embedded sample menu.
func Default() (*Catalog, error) {
	return Parse(defaultMenu, FormatYAML)
}

// Load reads a catalog file, choosing the decoder from its extension.
func Load(path string) (*Catalog, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte, format Format) (*Catalog, error) {
	var doc document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	return New(doc.Data)
}

func formatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("catalog %s: unsupported file extension", path)
	}
}
