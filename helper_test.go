package allpairs_test

import (
	"testing"

	"github.com/combinatest/allpairs"
)

// browserMatrix builds the Browser(3) x OS(3) x Resolution(2) parameter set
// with the "Safari only runs on macOS" rule. Parameters own their
// partitions, so every test builds a fresh set.
func browserMatrix(t *testing.T) []*allpairs.Parameter {
	t.Helper()

	browser, err := allpairs.NewParameter("Browser",
		[]*allpairs.Partition{
			allpairs.NewConstant("Chrome", "116.0"),
			allpairs.NewConstant("Firefox", "117.0"),
			allpairs.NewConstant("Safari", "16.5"),
		},
		allpairs.Require("safari_needs_macos", "Browser", "Safari", "OS", "macOS"),
	)
	if err != nil {
		t.Fatalf("building Browser: %v", err)
	}

	os, err := allpairs.NewParameter("OS", []*allpairs.Partition{
		allpairs.NewConstant("Windows", "11"),
		allpairs.NewConstant("macOS", "14"),
		allpairs.NewConstant("Linux", "6.5"),
	})
	if err != nil {
		t.Fatalf("building OS: %v", err)
	}

	resolution, err := allpairs.NewParameter("Resolution", []*allpairs.Partition{
		allpairs.NewConstant("1080p", "1920x1080"),
		allpairs.NewConstant("4k", "3840x2160"),
	})
	if err != nil {
		t.Fatalf("building Resolution: %v", err)
	}

	return []*allpairs.Parameter{browser, os, resolution}
}

// assertNoConflicts checks the no-conflict invariant for every combination
// in the table.
func assertNoConflicts(t *testing.T, table *allpairs.Table) {
	t.Helper()
	for _, c := range table.Combinations() {
		if c.Conflicts() {
			t.Errorf("combination %s has conflicting slots", c.Key())
		}
	}
}

// assertPairwiseCoverage checks that every mutually-compatible pair of
// partitions from two different parameters appears together in at least one
// combination.
func assertPairwiseCoverage(t *testing.T, params []*allpairs.Parameter, table *allpairs.Table) {
	t.Helper()
	combos := table.Combinations()

	for i := 0; i < len(params); i++ {
		for j := i + 1; j < len(params); j++ {
			for _, a := range params[i].Partitions {
				for _, b := range params[j].Partitions {
					if !allpairs.Compatible(a, b) {
						continue
					}
					if !pairAppears(combos, i, j, a, b) {
						t.Errorf("pair %s + %s not covered", a, b)
					}
				}
			}
		}
	}
}

func pairAppears(combos []*allpairs.Combination, i, j int, a, b *allpairs.Partition) bool {
	for _, c := range combos {
		if c.Value(i) == a && c.Value(j) == b {
			return true
		}
	}
	return false
}
