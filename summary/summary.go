// Package summary renders the plain-text distribution reports: genotype and
// allele frequencies in the multi-locus case, state frequencies for a single
// locus, and optional descriptive Tm statistics.
package summary

import (
	"fmt"
	"io"

	"github.com/cenexa-creg/genomos/classify"
	"github.com/cenexa-creg/genomos/reference"
)

// counter tallies string keys while remembering first-seen order, so report
// rows come out in the order the values were observed.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(n) / float64(total) * 100
}

// WriteStates writes the single-locus state distribution. Undetermined
// samples are left out of the tally but stay in the percentage denominator,
// matching the historical report, so the percentages can sum to under 100%.
func WriteStates(w io.Writer, pos string, calls []classify.SampleCall) {
	total := len(calls)

	c := newCounter()
	for _, call := range calls {
		if len(call.States) == 0 || call.States[0] == reference.StateUndetermined {
			continue
		}
		c.add(call.States[0].String())
	}

	fmt.Fprintf(w, "=== Distribución de Estados para %s ===\n", pos)
	fmt.Fprint(w, "Estado\tCantidad\tPorcentaje\n")
	for _, estado := range c.order {
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", estado, c.counts[estado], pct(c.counts[estado], total))
	}
}

// WriteGenotypes writes the composed-genotype distribution across all
// samples, including the undetermined sentinel, followed by the per-allele
// totals over the determined samples only.
func WriteGenotypes(w io.Writer, set *reference.Set, calls []classify.SampleCall) {
	total := len(calls)

	genotypes := newCounter()
	for _, call := range calls {
		genotypes.add(classify.Compose(call).String())
	}

	fmt.Fprint(w, "=== Distribución de Genotipos ===\n")
	fmt.Fprint(w, "Genotipo\tCantidad\tPorcentaje\n")
	for _, g := range genotypes.order {
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", g, genotypes.counts[g], pct(genotypes.counts[g], total))
	}

	alleles := make(map[string]int)
	totalAlleles := 0
	for _, call := range calls {
		g := classify.Compose(call)
		if !g.Determined {
			continue
		}
		for _, token := range g.Tokens {
			alleles[token]++
			totalAlleles++
		}
	}

	fmt.Fprint(w, "\n=== Suma y porcentaje por alelo ===\n")
	fmt.Fprint(w, "Alelo\tCantidad\tPorcentaje\n")
	for _, token := range classify.AlleleTokens(len(set.Loci)) {
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", token, alleles[token], pct(alleles[token], totalAlleles))
	}
}
