package summary

import (
	"strings"
	"testing"

	"gopkg.in/guregu/null.v3"

	"github.com/cenexa-creg/genomos/tmtable"
)

func TestWriteTmStats(t *testing.T) {
	cols := []tmtable.TmColumn{
		{Position: "1016", Values: []null.Float{
			null.FloatFrom(72.0),
			null.FloatFrom(74.0),
			{},
		}},
		{Position: "1534", Values: []null.Float{{}, {}, {}}},
	}

	var b strings.Builder
	WriteTmStats(&b, cols)

	want := "\n=== Estadísticas de Tm ===\n" +
		"Posición\tN\tMedia\tMediana\tDE\tMin\tMax\n" +
		"1016\t2\t73.00\t73.00\t1.41\t72.00\t74.00\n" +
		"1534\t0\t-\t-\t-\t-\t-\n"

	if got := b.String(); got != want {
		t.Errorf("WriteTmStats output:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteTmStatsSingleValue(t *testing.T) {
	cols := []tmtable.TmColumn{
		{Position: "1016", Values: []null.Float{null.FloatFrom(73.19)}},
	}

	var b strings.Builder
	WriteTmStats(&b, cols)

	// A single measurement has no sample deviation.
	if !strings.Contains(b.String(), "1016\t1\t73.19\t73.19\t-\t73.19\t73.19\n") {
		t.Errorf("unexpected stats row:\n%q", b.String())
	}
}
