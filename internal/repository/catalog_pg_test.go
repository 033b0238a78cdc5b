package repository

import (
	"errors"
	"testing"

	pgvector "github.com/pgvector/pgvector-go"

	"smart-advisor/internal/domain"
)

type fakeProgrammeRow struct {
	id, name, faculty string
	traits            []float32
}

type fakeProgrammeRows struct {
	rows []fakeProgrammeRow
	pos  int
	err  error
}

func (f *fakeProgrammeRows) Next() bool {
	if f.pos >= len(f.rows) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeProgrammeRows) Scan(dest ...interface{}) error {
	row := f.rows[f.pos-1]
	*dest[0].(*string) = row.id
	*dest[1].(*string) = row.name
	*dest[2].(*string) = row.faculty
	*dest[3].(*pgvector.Vector) = pgvector.NewVector(row.traits)
	return nil
}

func (f *fakeProgrammeRows) Err() error { return f.err }
func (f *fakeProgrammeRows) Close()     {}

func TestScanProgrammes(t *testing.T) {
	space, err := domain.NewTraitSpace([]string{"builder", "analyst", "creative"})
	if err != nil {
		t.Fatalf("NewTraitSpace: %v", err)
	}

	rows := &fakeProgrammeRows{rows: []fakeProgrammeRow{
		{id: "mech", name: "Mechanical Engineering", faculty: "Engineering", traits: []float32{3, 1, 0}},
		{id: "cs", name: "Computer Science", faculty: "Computing", traits: []float32{1, 3, 0}},
	}}

	items, err := scanProgrammes(rows, space)
	if err != nil {
		t.Fatalf("scanProgrammes: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("scanned %d items, want 2", len(items))
	}
	if items[0].ID != "mech" || items[0].Vector[0] != 3 {
		t.Fatalf("first item = %+v", items[0])
	}
}

func TestScanProgrammesRejectsWrongDimensionality(t *testing.T) {
	space, err := domain.NewTraitSpace([]string{"builder", "analyst", "creative"})
	if err != nil {
		t.Fatalf("NewTraitSpace: %v", err)
	}

	rows := &fakeProgrammeRows{rows: []fakeProgrammeRow{
		{id: "ok", name: "OK", faculty: "Eng", traits: []float32{1, 2, 3}},
		{id: "short", name: "Short", faculty: "Eng", traits: []float32{1, 2}},
	}}

	items, err := scanProgrammes(rows, space)
	var loadErr *domain.CatalogLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *CatalogLoadError", err)
	}
	if loadErr.Record != 2 {
		t.Fatalf("error record = %d, want 2", loadErr.Record)
	}
	if items != nil {
		t.Fatalf("got partial items alongside the error")
	}
}
