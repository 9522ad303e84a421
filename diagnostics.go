package allpairs

import (
	"fmt"
	"strings"

	"github.com/Delta456/box-cli-maker/v2"
	"github.com/alexeyco/simpletable"
	"github.com/dustin/go-humanize"
)

// Diagnostics collects counters from one generation run. It is only
// populated when the generator was created with CollectDiagnostics(true);
// otherwise Table-producing methods leave it nil.
type Diagnostics struct {
	// Name of the algorithm that ran.
	Algorithm string

	// Candidate pairs emitted in phase 1 (pairwise algorithms only).
	CandidatePairs int

	// Pairs marked covered by emitted combinations.
	CoveredPairs int

	// Combinations placed in the result table.
	Combinations int

	// Duplicate combinations rejected by the table.
	Duplicates int

	// Slots that could not be completed and were left unassigned.
	DegradedSlots int

	// Candidate merges deferred to a retry round (legacy pairwise only).
	DeferredMerges int

	// Complete assignments visited before any limit was applied
	// (combinatorial only).
	Visited int
}

// AsString renders a boxed report of the run.
func (d *Diagnostics) AsString() string {
	if d == nil {
		return ""
	}
	b := box.New(box.Config{Px: 2, Py: 1, Type: "Double", Color: "Cyan", TitlePos: "Top", ContentAlign: "Left"})

	s := strings.Builder{}
	s.WriteString("Algorithm:\n")
	s.WriteString("----------\n")
	s.WriteString(d.Algorithm)
	s.WriteString("\n\n")
	s.WriteString("Counters:\n")
	s.WriteString("---------\n")
	s.WriteString(d.counterTable().String())

	return b.String("GENERATION DIAGNOSTIC REPORT", s.String())
}

func (d *Diagnostics) counterTable() *simpletable.Table {
	t := simpletable.New()
	t.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "Counter"},
			{Align: simpletable.AlignCenter, Text: "Value"},
		},
	}

	add := func(name string, v int) {
		t.Body.Cells = append(t.Body.Cells, []*simpletable.Cell{
			{Text: name},
			{Align: simpletable.AlignRight, Text: humanize.Comma(int64(v))},
		})
	}
	add("Candidate pairs", d.CandidatePairs)
	add("Covered pairs", d.CoveredPairs)
	add("Combinations", d.Combinations)
	add("Duplicates rejected", d.Duplicates)
	add("Degraded slots", d.DegradedSlots)
	add("Deferred merges", d.DeferredMerges)
	add("Assignments visited", d.Visited)

	t.SetStyle(simpletable.StyleUnicode)
	return t
}

func (d *Diagnostics) String() string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%s: %d combinations, %d candidate pairs, %d degraded slots",
		d.Algorithm, d.Combinations, d.CandidatePairs, d.DegradedSlots)
}
