package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/model"
	"gopkg.in/yaml.v3"
)

// fileColor is the on-disk form of a color entry.
type fileColor struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Swatch    string  `yaml:"swatch"`
	Increment float64 `yaml:"increment"`
}

type catalogFile struct {
	Colors []fileColor `yaml:"colors"`
}

// LoadFile reads a catalog from a YAML file of the form
//
//	colors:
//	  - id: bianco_9010
//	    name: Bianco 9010 opaco
//	    swatch: "#FFFFFF"
//	    increment: 0
//
// Callers expand ~ and environment variables first.
func LoadFile(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty catalog path", common.ErrMissingConfig)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidCatalog, err)
	}

	entries := make([]model.ColorEntry, 0, len(doc.Colors))
	for _, fc := range doc.Colors {
		entries = append(entries, model.ColorEntry{
			ID:             fc.ID,
			DisplayName:    fc.Name,
			Swatch:         fc.Swatch,
			PriceIncrement: fc.Increment,
		})
	}

	return New(entries...)
}
