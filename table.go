package allpairs

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// A Table is the ordered, deduplicated result set of a generation run. It is
// populated by the generation algorithm that owns it and read-only to
// consumers; every combination it holds is frozen.
type Table struct {
	params []*Parameter
	combos []*Combination
	index  map[string]int

	// Diagnostics for the run that produced the table. Only set when the
	// generator was created with CollectDiagnostics(true).
	Diagnostics *Diagnostics
}

// newTable creates an empty table over the parameter set.
func newTable(params []*Parameter) *Table {
	return &Table{
		params: params,
		index:  map[string]int{},
	}
}

// add freezes the combination and appends it, unless a combination with the
// same key is already present. Reports whether the combination was added.
func (t *Table) add(c *Combination) bool {
	key := c.Key()
	if _, dup := t.index[key]; dup {
		return false
	}
	c.freeze()
	t.index[key] = len(t.combos)
	t.combos = append(t.combos, c)
	return true
}

// Len returns the number of combinations in the table.
func (t *Table) Len() int { return len(t.combos) }

// Combinations returns the table's combinations in insertion order. The
// returned slice is a copy; the combinations themselves are frozen.
func (t *Table) Combinations() []*Combination {
	out := make([]*Combination, len(t.combos))
	copy(out, t.combos)
	return out
}

// Contains reports whether the table holds a combination with the key.
func (t *Table) Contains(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Rows exports every combination as an ordered row
// [description, value_0, …, value_n-1], the format consumed by external
// test-runner adapters. Each call performs one fresh read of every
// partition, so cycling and computed partitions advance.
func (t *Table) Rows() [][]interface{} {
	rows := make([][]interface{}, len(t.combos))
	for i, c := range t.combos {
		rows[i] = c.Row()
	}
	return rows
}

// String renders the table for humans: one row per combination, one column
// per parameter, by partition name.
func (t *Table) String() string {
	tw := table.NewWriter()
	tw.SetTitle("\n%s COMBINATIONS\n", humanize.Comma(int64(len(t.combos))))

	header := table.Row{"#"}
	for _, p := range t.params {
		header = append(header, p.Name)
	}
	tw.AppendHeader(header)

	for i, c := range t.combos {
		row := table.Row{fmt.Sprintf("%d", i+1)}
		for j := range t.params {
			if s := c.Value(j); s != nil {
				row = append(row, s.Name())
			} else {
				row = append(row, keyPlaceholder)
			}
		}
		tw.AppendRow(row)
	}

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}
