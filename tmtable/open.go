package tmtable

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/cenexa-creg/genomos"
)

// Open reads the sample file into a Table. The format is chosen by
// extension: .xlsx, legacy .xls, or delimited text, which may additionally
// be gzip/zip/xz/bzip2 compressed.
func Open(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return openXLSX(path)
	case ".xls":
		return openXLS(path)
	default:
		return openDelimited(path)
	}
}

func openXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	return fromRows(rows)
}

func openXLS(path string) (*Table, error) {
	spreadsheet, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}

	sheet := spreadsheet.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("el archivo '%s' no contiene hojas", path)
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
		row := sheet.Row(rowID)
		if row == nil {
			continue
		}

		cells := make([]string, 0, row.LastCol()+1)
		for colID := 0; colID <= row.LastCol(); colID++ {
			cells = append(cells, row.Col(colID))
		}
		rows = append(rows, cells)
	}

	return fromRows(rows)
}

func openDelimited(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := genomos.MaybeDecompress(f)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(contents))
	cr.Comma = genomos.DetectDelimiter(bytes.NewReader(contents))
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	return fromRows(records)
}

func fromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("el archivo no contiene datos")
	}

	return &Table{Columns: rows[0], Rows: rows[1:]}, nil
}
