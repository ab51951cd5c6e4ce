package summary

import (
	"strings"
	"testing"

	"github.com/cenexa-creg/genomos/classify"
	"github.com/cenexa-creg/genomos/reference"
)

func call(states ...reference.State) classify.SampleCall {
	return classify.SampleCall{States: states}
}

func mustParse(t *testing.T, args ...string) *reference.Set {
	t.Helper()
	set, err := reference.Parse(args)
	if err != nil {
		t.Fatal(err)
	}
	return set
}

// The state report divides by the total sample count while leaving
// undetermined samples untallied, so percentages can sum to under 100%.
// That mirrors the historical report and is asserted here on purpose.
func TestWriteStatesDenominator(t *testing.T) {
	calls := []classify.SampleCall{
		call(reference.Sensitive),
		call(reference.Sensitive),
		call(reference.Heterozygous),
		call(reference.StateUndetermined),
	}

	var b strings.Builder
	WriteStates(&b, "1016", calls)

	want := "=== Distribución de Estados para 1016 ===\n" +
		"Estado\tCantidad\tPorcentaje\n" +
		"Sensible\t2\t50.00%\n" +
		"Heterocigoto\t1\t25.00%\n"

	if got := b.String(); got != want {
		t.Errorf("WriteStates output:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteStatesAllDetermined(t *testing.T) {
	calls := []classify.SampleCall{
		call(reference.Resistant),
		call(reference.Resistant),
		call(reference.Sensitive),
		call(reference.Heterozygous),
	}

	var b strings.Builder
	WriteStates(&b, "1534", calls)

	want := "=== Distribución de Estados para 1534 ===\n" +
		"Estado\tCantidad\tPorcentaje\n" +
		"Resistente\t2\t50.00%\n" +
		"Sensible\t1\t25.00%\n" +
		"Heterocigoto\t1\t25.00%\n"

	if got := b.String(); got != want {
		t.Errorf("WriteStates output:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteGenotypes(t *testing.T) {
	set := mustParse(t, "1016:S:73.2,H:72.66,R:72.21", "1534:S:81.71,H:81.81,R:82.36")

	calls := []classify.SampleCall{
		call(reference.Sensitive, reference.Resistant),     // SR2
		call(reference.Sensitive, reference.Resistant),     // SR2
		call(reference.Heterozygous, reference.Sensitive),  // H1S
		call(reference.StateUndetermined, reference.Resistant),
	}

	var b strings.Builder
	WriteGenotypes(&b, set, calls)

	want := "=== Distribución de Genotipos ===\n" +
		"Genotipo\tCantidad\tPorcentaje\n" +
		"SR2\t2\t50.00%\n" +
		"H1S\t1\t25.00%\n" +
		"No se pudo determinar\t1\t25.00%\n" +
		"\n=== Suma y porcentaje por alelo ===\n" +
		"Alelo\tCantidad\tPorcentaje\n" +
		"H1\t1\t16.67%\n" +
		"R1\t0\t0.00%\n" +
		"H2\t0\t0.00%\n" +
		"R2\t2\t33.33%\n" +
		"S\t3\t50.00%\n"

	if got := b.String(); got != want {
		t.Errorf("WriteGenotypes output:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteGenotypesNoneDetermined(t *testing.T) {
	set := mustParse(t, "1016:S:73.2", "1534:S:81.71")

	calls := []classify.SampleCall{
		call(reference.StateUndetermined, reference.StateUndetermined),
	}

	var b strings.Builder
	WriteGenotypes(&b, set, calls)

	out := b.String()
	if !strings.Contains(out, "No se pudo determinar\t1\t100.00%\n") {
		t.Errorf("sentinel row missing from:\n%q", out)
	}
	// With zero determined samples the allele percentages must not divide
	// by zero.
	if !strings.Contains(out, "S\t0\t0.00%\n") {
		t.Errorf("zero-allele row missing from:\n%q", out)
	}
}
