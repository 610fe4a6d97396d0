package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Document is the on-disk shape of a dataset file. JSON files parse too, since
// JSON is a subset of YAML.
type Document struct {
	Provinces []Province `yaml:"provinces" json:"provinces"`
}

// Parse decodes a dataset document and indexes it.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return New(doc.Provinces)
}

// LoadFile reads and indexes the dataset at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}
