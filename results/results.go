// Package results assembles and writes the per-sample classification table.
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/cenexa-creg/genomos/classify"
	"github.com/cenexa-creg/genomos/reference"
	"github.com/cenexa-creg/genomos/tmtable"
)

// Table is the assembled output: the measured Tm per locus, the state called
// per locus and, with more than one locus, the composed genotype. Cells hold
// float64, string or nil (blank).
type Table struct {
	Header []string
	Rows   [][]interface{}
}

// Build lays out one output row per sample. cols and calls must come from
// the same classification run, in configuration order.
func Build(set *reference.Set, cols []tmtable.TmColumn, calls []classify.SampleCall) *Table {
	multi := len(set.Loci) > 1

	header := make([]string, 0, 2*len(set.Loci)+1)
	for _, loc := range set.Loci {
		header = append(header, tmtable.ColumnName(loc.Position))
	}
	for _, loc := range set.Loci {
		header = append(header, "Estado_"+loc.Position)
	}
	if multi {
		header = append(header, "Genotipo_Resultante")
	}

	t := &Table{Header: header, Rows: make([][]interface{}, 0, len(calls))}
	for i, call := range calls {
		row := make([]interface{}, 0, len(header))
		for j := range set.Loci {
			if v := cols[j].Values[i]; v.Valid {
				row = append(row, v.Float64)
			} else {
				row = append(row, nil)
			}
		}
		for _, s := range call.States {
			if s == reference.StateUndetermined {
				row = append(row, nil)
			} else {
				row = append(row, s.String())
			}
		}
		if multi {
			row = append(row, classify.Compose(call).String())
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// WriteXLSX writes the table to path as a single-sheet xlsx file. Blank
// cells are skipped so missing measurements stay empty in the spreadsheet.
func (t *Table) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range t.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// WriteCSV writes the table as delimited text.
func (t *Table) WriteCSV(w io.Writer, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	if err := cw.Write(t.Header); err != nil {
		return err
	}

	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			switch v := v.(type) {
			case nil:
			case float64:
				record[i] = strconv.FormatFloat(v, 'f', -1, 64)
			case string:
				record[i] = v
			default:
				record[i] = fmt.Sprint(v)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
