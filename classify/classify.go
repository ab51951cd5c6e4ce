package classify

import (
	"math"

	"gopkg.in/guregu/null.v3"

	"github.com/cenexa-creg/genomos/reference"
)

// Call picks the reference state whose Tm is nearest to the measurement.
// A missing measurement yields StateUndetermined. When two reference values
// are equidistant, the entry supplied first for the locus wins.
func Call(loc reference.Locus, tm null.Float) reference.State {
	if !tm.Valid {
		return reference.StateUndetermined
	}

	best := reference.StateUndetermined
	bestDiff := math.Inf(1)
	for _, e := range loc.Entries {
		if d := math.Abs(tm.Float64 - e.Tm); d < bestDiff {
			best, bestDiff = e.State, d
		}
	}

	return best
}

// SampleCall holds the per-locus states called for one sample, in
// configuration order.
type SampleCall struct {
	States []reference.State
}

// Determined reports whether every locus received a call.
func (c SampleCall) Determined() bool {
	for _, s := range c.States {
		if s == reference.StateUndetermined {
			return false
		}
	}

	return true
}

// ClassifyTable calls every sample at every locus. values holds one slice
// per locus, in the same order as set.Loci, each with one measurement per
// sample row.
func ClassifyTable(set *reference.Set, values [][]null.Float) []SampleCall {
	var n int
	if len(values) > 0 {
		n = len(values[0])
	}

	calls := make([]SampleCall, n)
	for i := 0; i < n; i++ {
		states := make([]reference.State, len(set.Loci))
		for j, loc := range set.Loci {
			states[j] = Call(loc, values[j][i])
		}
		calls[i] = SampleCall{States: states}
	}

	return calls
}
