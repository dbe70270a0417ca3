// Package dataset loads the items the list is built from.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"searchlist/internal/domain"
)

// ErrUnsupportedFormat is returned for data files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported data file format")

//go:embed sample.toml
var sampleTOML []byte

// file is the on-disk layout shared by every format
type file struct {
	Items []domain.ListItem `json:"items" toml:"items" yaml:"items"`
}

// Sample returns the built-in dataset
func Sample() domain.Dataset {
	items, err := Decode(sampleTOML, FormatTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded sample dataset is invalid: %v", err))
	}
	return items
}

// Format names a data file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates a dataset file
func Load(path string) (domain.Dataset, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	items, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Decode parses a dataset and checks that IDs are unique. Every format
// rejects keys other than id and name; an empty document is an empty dataset.
func Decode(data []byte, format Format) (domain.Dataset, error) {
	var f file
	var err error

	switch format {
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&f)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&f)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s dataset: %w", format, err)
	}

	items := domain.Dataset(f.Items)
	if items == nil {
		items = domain.Dataset{}
	}
	if err := items.Validate(); err != nil {
		return nil, err
	}
	return items, nil
}
