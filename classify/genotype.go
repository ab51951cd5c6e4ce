package classify

import (
	"fmt"
	"strings"

	"github.com/cenexa-creg/genomos/reference"
)

// Undetermined is shown wherever a sample could not be fully called.
const Undetermined = "No se pudo determinar"

// Genotype is the composed multi-locus classification of one sample.
type Genotype struct {
	Determined bool
	Tokens     []string
}

// Compose builds the genotype tokens for one sample: "S" for a sensitive
// call, "H<i>" or "R<i>" for a heterozygous or resistant call at the i-th
// locus (1-based, configuration order). A sample with any undetermined locus
// composes to the undetermined variant.
func Compose(call SampleCall) Genotype {
	g := Genotype{Determined: true, Tokens: make([]string, 0, len(call.States))}
	for i, s := range call.States {
		switch s {
		case reference.Sensitive:
			g.Tokens = append(g.Tokens, "S")
		case reference.Heterozygous:
			g.Tokens = append(g.Tokens, fmt.Sprintf("H%d", i+1))
		case reference.Resistant:
			g.Tokens = append(g.Tokens, fmt.Sprintf("R%d", i+1))
		default:
			return Genotype{}
		}
	}

	return g
}

// String renders the genotype for display. The undetermined variant converts
// to its sentinel here, at the formatting boundary, and nowhere else.
func (g Genotype) String() string {
	if !g.Determined {
		return Undetermined
	}

	return strings.Join(g.Tokens, "")
}

// AlleleTokens enumerates every allele token that can occur across n loci:
// H<i> and R<i> per locus index, plus the locus-agnostic "S" last.
func AlleleTokens(n int) []string {
	tokens := make([]string, 0, 2*n+1)
	for i := 1; i <= n; i++ {
		tokens = append(tokens, fmt.Sprintf("H%d", i), fmt.Sprintf("R%d", i))
	}

	return append(tokens, "S")
}
