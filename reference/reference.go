package reference

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry pairs a State with its reference melting temperature.
type Entry struct {
	State State
	Tm    float64
}

// Locus holds the reference Tm values configured for one genomic position.
// Entries keep the order in which they were supplied on the command line;
// the classifier breaks distance ties in favor of the earliest entry.
type Locus struct {
	Position string
	Entries  []Entry
}

// Tm returns the reference value configured for state s.
func (l Locus) Tm(s State) (float64, bool) {
	for _, e := range l.Entries {
		if e.State == s {
			return e.Tm, true
		}
	}

	return 0, false
}

func (l *Locus) setTm(s State, tm float64) {
	for i := range l.Entries {
		if l.Entries[i].State == s {
			l.Entries[i].Tm = tm
			return
		}
	}
	l.Entries = append(l.Entries, Entry{State: s, Tm: tm})
}

// Set is the full reference configuration, one Locus per -t argument, in
// configuration order. The order determines the 1-based indices used in
// composed genotype tokens.
type Set struct {
	Loci []Locus
}

// Locus returns the configuration for a position, if one exists.
func (s *Set) Locus(pos string) (Locus, bool) {
	for _, l := range s.Loci {
		if l.Position == pos {
			return l, true
		}
	}

	return Locus{}, false
}

// FormatError reports a malformed reference argument, keeping the raw text
// so the user can spot which -t entry was at fault.
type FormatError struct {
	Entry string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("error en formato de -t '%s': %v", e.Entry, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Parse converts -t arguments of the form POS:S:VAL,H:VAL,R:VAL into a Set.
// A repeated position replaces the earlier configuration in place.
func Parse(args []string) (*Set, error) {
	set := &Set{Loci: make([]Locus, 0, len(args))}
	for _, arg := range args {
		loc, err := parseLocus(arg)
		if err != nil {
			return nil, &FormatError{Entry: arg, Err: err}
		}

		replaced := false
		for i := range set.Loci {
			if set.Loci[i].Position == loc.Position {
				set.Loci[i] = loc
				replaced = true
				break
			}
		}
		if !replaced {
			set.Loci = append(set.Loci, loc)
		}
	}

	return set, nil
}

func parseLocus(arg string) (Locus, error) {
	pos, rest, found := strings.Cut(arg, ":")
	if !found {
		return Locus{}, fmt.Errorf("se esperaba el formato 'POS:ESTADO:VALOR,...'")
	}

	loc := Locus{Position: strings.TrimSpace(pos)}
	for _, pair := range strings.Split(rest, ",") {
		stateToken, valueToken, found := strings.Cut(pair, ":")
		if !found {
			return Locus{}, fmt.Errorf("falta ':' entre estado y valor en '%s'", pair)
		}

		state, err := ParseState(stateToken)
		if err != nil {
			return Locus{}, err
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(valueToken), 64)
		if err != nil {
			return Locus{}, fmt.Errorf("valor '%s' no numérico: %w", strings.TrimSpace(valueToken), err)
		}

		loc.setTm(state, value)
	}

	return loc, nil
}
