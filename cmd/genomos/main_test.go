package main

import (
	"strings"
	"testing"
)

func TestValidateCount(t *testing.T) {
	if err := validateCount(2, []string{"1016:S:73.2", "1534:S:81.71"}); err != nil {
		t.Errorf("matching counts rejected: %v", err)
	}

	err := validateCount(2, []string{"1016:S:73.2"})
	if err == nil {
		t.Fatal("expected an error when -n disagrees with the number of -t arguments")
	}
	if !strings.Contains(err.Error(), "-n=2") || !strings.Contains(err.Error(), "1 mutaciones") {
		t.Errorf("error %q does not describe the mismatch", err)
	}
}

func TestMultiFlag(t *testing.T) {
	var m multiFlag
	for _, v := range []string{"1016:S:73.2", "1534:S:81.71"} {
		if err := m.Set(v); err != nil {
			t.Fatal(err)
		}
	}

	if len(m) != 2 {
		t.Fatalf("expected 2 accumulated values, got %d", len(m))
	}
	if got := m.String(); got != "1016:S:73.2, 1534:S:81.71" {
		t.Errorf("String() = %q", got)
	}
}
