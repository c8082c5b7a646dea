// Package catalogfile reads and writes the JSON catalog file format.
package catalogfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"ndjimba/internal/adapters/memory"
	"ndjimba/internal/contracts"
	"ndjimba/internal/core/domain"
)

// Parse validates data against the catalog schema and the record invariants.
func Parse(data []byte) ([]domain.Property, error) {
	if err := contracts.ValidateCatalog(data); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidProperty, err)
	}

	var file fileDTO
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	records := make([]domain.Property, 0, len(file.Properties))
	for _, d := range file.Properties {
		records = append(records, toDomain(d))
	}
	// record-level invariants (neighborhood/city, land rooms) live in the domain
	if _, err := memory.NewCatalog(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Load reads the catalog file at path into a read-only catalog.
func Load(path string) (*memory.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return memory.NewCatalog(records)
}

// Encode writes records in the catalog file format.
func Encode(w io.Writer, records []domain.Property) error {
	file := fileDTO{
		Version:    FormatVersion,
		Properties: make([]propertyDTO, 0, len(records)),
	}
	for _, p := range records {
		file.Properties = append(file.Properties, fromDomain(p))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(file)
}
