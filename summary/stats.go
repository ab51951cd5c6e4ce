package summary

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"

	"github.com/cenexa-creg/genomos/tmtable"
)

// WriteTmStats appends descriptive statistics for each loaded Tm column,
// computed over the valid measurements only.
func WriteTmStats(w io.Writer, cols []tmtable.TmColumn) {
	fmt.Fprint(w, "\n=== Estadísticas de Tm ===\n")
	fmt.Fprint(w, "Posición\tN\tMedia\tMediana\tDE\tMin\tMax\n")

	for _, col := range cols {
		values := make([]float64, 0, len(col.Values))
		for _, v := range col.Values {
			if v.Valid {
				values = append(values, v.Float64)
			}
		}

		if len(values) == 0 {
			fmt.Fprintf(w, "%s\t0\t-\t-\t-\t-\t-\n", col.Position)
			continue
		}

		mean, _ := stats.Mean(values)
		median, _ := stats.Median(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)

		sd := "-"
		if len(values) > 1 {
			v, _ := stats.StandardDeviationSample(values)
			sd = fmt.Sprintf("%.2f", v)
		}

		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%s\t%.2f\t%.2f\n", col.Position, len(values), mean, median, sd, min, max)
	}
}
