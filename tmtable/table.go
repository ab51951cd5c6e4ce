// Package tmtable loads HRM-PCR sample sheets into memory and extracts the
// per-locus melting temperature columns that the classifier consumes.
package tmtable

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"

	"github.com/cenexa-creg/genomos/reference"
)

// Table is a raw tabular load of the sample file: a header row plus string
// cells, one row per sample. Columns other than the configured Tm columns
// are carried but ignored.
type Table struct {
	Columns []string
	Rows    [][]string
}

// MissingColumnError reports a configured locus position with no matching
// Tm column in the loaded file.
type MissingColumnError struct {
	Position string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("no se encontró la columna '%s' en el archivo", ColumnName(e.Position))
}

// ColumnName is the header expected for a locus position, e.g. Tm_1016.
func ColumnName(pos string) string {
	return "Tm_" + pos
}

func (t *Table) columnIndex(name string) int {
	for i, col := range t.Columns {
		if strings.TrimSpace(col) == name {
			return i
		}
	}

	return -1
}

// TmColumn holds the coerced measurements for one locus, one value per
// sample row. Blank and non-numeric cells load as invalid values.
type TmColumn struct {
	Position string
	Values   []null.Float
}

// TmColumns extracts and coerces the Tm_<pos> column for every configured
// locus, in configuration order. A locus without a matching column is an
// error; an unparseable cell within an existing column is not, it simply
// becomes a missing measurement.
func (t *Table) TmColumns(set *reference.Set) ([]TmColumn, error) {
	cols := make([]TmColumn, 0, len(set.Loci))
	for _, loc := range set.Loci {
		idx := t.columnIndex(ColumnName(loc.Position))
		if idx < 0 {
			return nil, &MissingColumnError{Position: loc.Position}
		}

		col := TmColumn{Position: loc.Position, Values: make([]null.Float, len(t.Rows))}
		for i, row := range t.Rows {
			if idx >= len(row) {
				continue
			}
			raw := strings.TrimSpace(row[idx])
			if raw == "" {
				continue
			}
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				col.Values[i] = null.FloatFrom(v)
			}
		}
		cols = append(cols, col)
	}

	return cols, nil
}
