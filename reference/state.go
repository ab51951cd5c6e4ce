package reference

import (
	"fmt"
	"strings"
)

// State is the allelic state that can be called for a locus.
type State int

const (
	StateUndetermined State = iota
	Sensitive
	Heterozygous
	Resistant
)

// String yields the display name used in the results table and the reports.
func (s State) String() string {
	switch s {
	case Sensitive:
		return "Sensible"
	case Heterozygous:
		return "Heterocigoto"
	case Resistant:
		return "Resistente"
	}

	return ""
}

// ParseState maps a user-supplied token onto a State by its first letter,
// case-insensitively, so "S", "sens" and "Sensible" all mean the same thing.
// Unrecognized tokens fail closed.
func ParseState(token string) (State, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	switch {
	case strings.HasPrefix(t, "s"):
		return Sensitive, nil
	case strings.HasPrefix(t, "h"):
		return Heterozygous, nil
	case strings.HasPrefix(t, "r"):
		return Resistant, nil
	}

	return StateUndetermined, fmt.Errorf("estado '%s' no reconocido", strings.TrimSpace(token))
}
