// genomos classifies HRM-PCR samples into genotypes by comparing each
// sample's melting temperature against user-supplied reference Tm values per
// mutation, then writes a per-sample results table and an optional
// distribution summary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"

	"github.com/cenexa-creg/genomos"
	"github.com/cenexa-creg/genomos/classify"
	"github.com/cenexa-creg/genomos/reference"
	"github.com/cenexa-creg/genomos/results"
	"github.com/cenexa-creg/genomos/summary"
	"github.com/cenexa-creg/genomos/tmtable"
)

type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ", ")
}

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

func main() {
	var (
		numMutations int
		inputPath    string
		outputPath   string
		txtPath      string
		withStats    bool
		tmEntries    multiFlag
	)

	flag.IntVar(&numMutations, "n", 0, "Cantidad de mutaciones a analizar. Debe coincidir con el número de argumentos -t.")
	flag.StringVar(&inputPath, "f", "", "Ruta al archivo con las muestras (xlsx, xls, csv o tsv). Debe contener una columna 'Tm_{mutación}' por mutación, por ejemplo 'Tm_1016'.")
	flag.Var(&tmEntries, "t", "Tm de referencia por mutación, repetible. Formato: 'POS:S:VAL,H:VAL,R:VAL'. Ejemplo: 1016:S:73.2,H:72.66,R:72.21")
	flag.StringVar(&outputPath, "o", "resultados.xlsx", "Archivo de resultados (xlsx, csv o tsv).")
	flag.StringVar(&txtPath, "txt", "", "Archivo .txt para guardar distribución de genotipos y resumen por alelo.")
	flag.BoolVar(&withStats, "stats", false, "Agregar estadísticas descriptivas de Tm al resumen.")
	flag.Parse()

	if inputPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -f")
	}

	if len(tmEntries) == 0 {
		flag.PrintDefaults()
		log.Fatalln("Please provide at least one -t")
	}

	// This has to hold before any file is touched.
	if err := validateCount(numMutations, tmEntries); err != nil {
		log.Fatalln(err)
	}

	inputPath = genomos.ExpandHome(inputPath)
	outputPath = genomos.ExpandHome(outputPath)
	if txtPath != "" {
		txtPath = genomos.ExpandHome(txtPath)
	}

	if err := run(inputPath, outputPath, txtPath, withStats, tmEntries); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func validateCount(numMutations int, tmEntries []string) error {
	if numMutations != len(tmEntries) {
		return fmt.Errorf("-n=%d pero se definieron %d mutaciones con -t", numMutations, len(tmEntries))
	}

	return nil
}

func run(inputPath, outputPath, txtPath string, withStats bool, tmEntries []string) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("archivo '%s' no encontrado: %w", inputPath, err)
	}

	set, err := reference.Parse(tmEntries)
	if err != nil {
		return err
	}

	table, err := tmtable.Open(inputPath)
	if err != nil {
		return err
	}

	cols, err := table.TmColumns(set)
	if err != nil {
		return err
	}

	values := make([][]null.Float, len(cols))
	for i, col := range cols {
		values[i] = col.Values
	}
	calls := classify.ClassifyTable(set, values)

	if err := writeResults(results.Build(set, cols, calls), outputPath); err != nil {
		return err
	}
	log.Printf("Resultados guardados en '%s'.\n", outputPath)

	if txtPath == "" {
		return nil
	}

	f, err := os.Create(txtPath)
	if err != nil {
		return err
	}

	if len(set.Loci) > 1 {
		summary.WriteGenotypes(f, set, calls)
	} else {
		summary.WriteStates(f, set.Loci[0].Position, calls)
	}
	if withStats {
		summary.WriteTmStats(f, cols)
	}

	if err := f.Close(); err != nil {
		return err
	}

	if len(set.Loci) > 1 {
		log.Printf("Distribución y resumen por alelo guardados en '%s'.\n", txtPath)
	} else {
		log.Printf("Distribución de estados guardada en '%s'.\n", txtPath)
	}

	return nil
}

func writeResults(t *results.Table, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeDelimited(t, path, ',')
	case ".tsv":
		return writeDelimited(t, path, '\t')
	default:
		return t.WriteXLSX(path)
	}
}

func writeDelimited(t *results.Table, path string, delim rune) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := t.WriteCSV(f, delim); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
