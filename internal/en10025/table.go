package en10025

import (
	"errors"
	"fmt"
	"strings"
)

// EN 10025-2:2004, Hot rolled products of structural steels, Part 2:
// Technical delivery conditions for non-alloy structural steels.
// Table 7 - Mechanical properties at ambient temperature for flat and long
// products of steel grades and qualities with values for the impact strength.

const (
	// TableName is the name of the database table holding Table 7.
	TableName = "EN_10025_2_2004"

	// PrincipalSymbolLen is the length of the principal designation symbol
	// per EN 10027-1:2005 Table 1, e.g. "S 235" from "S 235 JR".
	PrincipalSymbolLen = 5
)

// BandUpperBounds holds the upper bounds of the nominal thickness bands of
// Table 7, ascending, in mm.
var BandUpperBounds = []int{16, 40, 63, 80, 100, 125, 150, 200, 250, 400}

var (
	// ErrThicknessOutOfRange reports a nominal thickness above the largest
	// band of Table 7.
	ErrThicknessOutOfRange = errors.New("thickness exceeds the largest band of Table 7")

	// ErrNoMatch reports that no row matches a grade and thickness band.
	ErrNoMatch = errors.New("no row matches the grade and thickness band")
)

// Row is one record of the EN_10025_2_2004 table: the mechanical properties
// of a steel quality for one nominal thickness band.
type Row struct {
	Calidad string // quality designation, e.g. "S 235 JR"
	Tmax    int    // upper bound of the thickness band (mm)
	Fy      int    // minimum yield strength ReH (N/mm²)
	Fu      int    // tensile strength Rm (N/mm²)
}

// BandUpperBound returns the smallest band upper bound that is >= t.
func BandUpperBound(t float64) (int, error) {
	for _, tmax := range BandUpperBounds {
		if t <= float64(tmax) {
			return tmax, nil
		}
	}
	return 0, fmt.Errorf("%w: t = %g mm", ErrThicknessOutOfRange, t)
}

// TableReader loads a named database table into instances of the sample
// struct type.
type TableReader interface {
	ReadTable(name string, sample any) ([]any, error)
}

// Table answers grade and thickness queries against the loaded Table 7
// rows. Load it once and pass it around; queries perform no I/O.
type Table struct {
	rows []Row
}

// NewTable builds a Table from already loaded rows.
func NewTable(rows []Row) *Table {
	return &Table{rows: rows}
}

// Load reads the full EN_10025_2_2004 table through r.
func Load(r TableReader) (*Table, error) {
	entries, err := r.ReadTable(TableName, Row{})
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", TableName, err)
	}

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, *e.(*Row))
	}

	return &Table{rows: rows}, nil
}

// Grades returns the distinct quality designations in first-seen order.
func (t *Table) Grades() []string {
	seen := make(map[string]bool)
	grades := []string{}

	for _, row := range t.rows {
		if !seen[row.Calidad] {
			seen[row.Calidad] = true
			grades = append(grades, row.Calidad)
		}
	}

	return grades
}

// GradePrefixes returns the principal symbol of each designation, in the
// same order as Grades. Designations shorter than the principal symbol
// length are returned whole.
func (t *Table) GradePrefixes() []string {
	grades := t.Grades()
	prefixes := make([]string, len(grades))

	for i, g := range grades {
		if len(g) > PrincipalSymbolLen {
			g = g[:PrincipalSymbolLen]
		}
		prefixes[i] = g
	}

	return prefixes
}

// find selects the row for a grade and nominal thickness. The grade is
// matched as a substring of the designation, so "S 235" matches
// "S 235 JR", "S 235 J0" and "S 235 J2" alike; the first row in table
// order wins.
func (t *Table) find(grade string, thickness float64) (Row, error) {
	tmax, err := BandUpperBound(thickness)
	if err != nil {
		return Row{}, err
	}

	for _, row := range t.rows {
		if row.Tmax == tmax && strings.Contains(row.Calidad, grade) {
			return row, nil
		}
	}

	return Row{}, fmt.Errorf("%w: grade %q, t <= %d mm", ErrNoMatch, grade, tmax)
}

// YieldStrength returns the minimum yield strength ReH in N/mm² for a
// grade and nominal thickness in mm.
func (t *Table) YieldStrength(grade string, thickness float64) (int, error) {
	row, err := t.find(grade, thickness)
	if err != nil {
		return 0, err
	}

	return row.Fy, nil
}

// TensileStrength returns the tensile strength Rm in N/mm² for a grade and
// nominal thickness in mm.
func (t *Table) TensileStrength(grade string, thickness float64) (int, error) {
	row, err := t.find(grade, thickness)
	if err != nil {
		return 0, err
	}

	return row.Fu, nil
}

// Properties returns both ReH and Rm, read from the same row.
func (t *Table) Properties(grade string, thickness float64) (fy, fu int, err error) {
	row, err := t.find(grade, thickness)
	if err != nil {
		return 0, 0, err
	}

	return row.Fy, row.Fu, nil
}
