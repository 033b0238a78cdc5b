package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"smart-advisor/internal/domain"
)

// Fixed leading columns of the catalog CSV; everything after them is a
// trait column, and the trait column order becomes the canonical
// TraitSpace ordering for the whole process.
var catalogHeaderPrefix = []string{"id", "name", "faculty"}

// LoadCatalogCSV reads and validates the catalog from a CSV file.
func LoadCatalogCSV(path string) (*domain.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ParseCatalogCSV(f)
}

// ParseCatalogCSV reads the catalog from r. Any malformed record fails
// the whole load with *domain.CatalogLoadError; no partial catalog is
// ever returned.
func ParseCatalogCSV(r io.Reader) (*domain.Catalog, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &domain.CatalogLoadError{Reason: fmt.Sprintf("missing header: %v", err)}
	}
	if len(header) < len(catalogHeaderPrefix)+1 {
		return nil, &domain.CatalogLoadError{
			Reason: "header must have id, name, faculty and at least one trait column",
		}
	}
	for i, want := range catalogHeaderPrefix {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, &domain.CatalogLoadError{
				Reason: fmt.Sprintf("header column %d is %q, want %q", i+1, header[i], want),
			}
		}
	}

	dims := make([]string, 0, len(header)-len(catalogHeaderPrefix))
	for _, name := range header[len(catalogHeaderPrefix):] {
		dims = append(dims, strings.TrimSpace(name))
	}
	space, err := domain.NewTraitSpace(dims)
	if err != nil {
		return nil, &domain.CatalogLoadError{Reason: err.Error()}
	}

	var items []domain.CatalogItem
	for record := 1; ; record++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader reports wrong arity as ErrFieldCount.
			return nil, &domain.CatalogLoadError{Record: record, Reason: err.Error()}
		}
		vector := make(domain.Vector, 0, space.Dim())
		for col, raw := range row[len(catalogHeaderPrefix):] {
			value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, &domain.CatalogLoadError{
					Record: record,
					Reason: fmt.Sprintf("trait column %q has non-numeric value %q", dims[col], raw),
				}
			}
			if value < 0 {
				return nil, &domain.CatalogLoadError{
					Record: record,
					Reason: fmt.Sprintf("trait column %q has negative value %s", dims[col], raw),
				}
			}
			vector = append(vector, value)
		}
		items = append(items, domain.CatalogItem{
			ID:      strings.TrimSpace(row[0]),
			Name:    strings.TrimSpace(row[1]),
			Faculty: strings.TrimSpace(row[2]),
			Vector:  vector,
		})
	}

	return domain.NewCatalog(space, items)
}
