package allpairs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilValue is returned by SetValue when a nil partition is assigned.
	// Slots are cleared by the owning algorithm, never by callers.
	ErrNilValue = errors.New("nil partition")

	// ErrSlotRange is returned for a slot index outside the parameter set.
	ErrSlotRange = errors.New("slot index out of range")

	// ErrOwnerMismatch is returned when a partition is assigned to a slot
	// whose parameter is not the partition's owner.
	ErrOwnerMismatch = errors.New("partition does not belong to the slot's parameter")

	// ErrFrozen is returned when a combination is modified after it has been
	// placed in a table.
	ErrFrozen = errors.New("combination is frozen")
)

const (
	keySeparator   = "|"
	keyPlaceholder = "_"
)

// A Combination is one full or partial test case: one partition choice per
// parameter, held in a slot vector addressed by parameter position. Slot i
// may only hold a partition owned by the parameter at position i. A
// combination is mutated only by the algorithm building it and is frozen
// once placed in a Table.
type Combination struct {
	params []*Parameter
	slots  []*Partition
	frozen bool
}

// NewCombination creates an empty combination over the parameter set.
func NewCombination(params []*Parameter) *Combination {
	return &Combination{
		params: params,
		slots:  make([]*Partition, len(params)),
	}
}

// Len returns the number of slots.
func (c *Combination) Len() int { return len(c.slots) }

// Value returns the partition assigned to slot i, or nil.
func (c *Combination) Value(i int) *Partition {
	if i < 0 || i >= len(c.slots) {
		return nil
	}
	return c.slots[i]
}

// SetValue assigns the partition to slot i. The partition must be non-nil
// and owned by the parameter at position i; on any error the slot is left
// unchanged.
func (c *Combination) SetValue(i int, p *Partition) error {
	if c.frozen {
		return ErrFrozen
	}
	if i < 0 || i >= len(c.slots) {
		return fmt.Errorf("%w: %d of %d", ErrSlotRange, i, len(c.slots))
	}
	if p == nil {
		return fmt.Errorf("%w: slot %d", ErrNilValue, i)
	}
	if p.owner != c.params[i] {
		return fmt.Errorf("%w: %s in slot %d (%s)", ErrOwnerMismatch, p, i, c.params[i].Name)
	}
	c.slots[i] = p
	return nil
}

// clear unassigns slot i. Internal to the generation algorithms; consumers
// never see a slot transition back to empty.
func (c *Combination) clear(i int) {
	c.slots[i] = nil
}

// Filled reports whether every slot is assigned.
func (c *Combination) Filled() bool {
	for _, s := range c.slots {
		if s == nil {
			return false
		}
	}
	return true
}

// Key returns the canonical identity of the combination: the per-slot
// partition names joined in parameter order, with a placeholder for empty
// slots. Two combinations with identical slot assignments have equal keys.
func (c *Combination) Key() string {
	names := make([]string, len(c.slots))
	for i, s := range c.slots {
		if s == nil {
			names[i] = keyPlaceholder
		} else {
			names[i] = s.Name()
		}
	}
	return strings.Join(names, keySeparator)
}

// Conflicts reports whether any pair of assigned slots is mutually
// incompatible under the parameters' rules.
func (c *Combination) Conflicts() bool {
	for i := 0; i < len(c.slots); i++ {
		if c.slots[i] == nil {
			continue
		}
		for j := i + 1; j < len(c.slots); j++ {
			if c.slots[j] == nil {
				continue
			}
			if !Compatible(c.slots[i], c.slots[j]) {
				return true
			}
		}
	}
	return false
}

// accepts reports whether the partition could be placed in slot i without
// conflicting with any currently assigned slot.
func (c *Combination) accepts(i int, p *Partition) bool {
	for j, s := range c.slots {
		if j == i || s == nil {
			continue
		}
		if !Compatible(p, s) {
			return false
		}
	}
	return true
}

// clone returns an unfrozen copy sharing the parameter set.
func (c *Combination) clone() *Combination {
	n := NewCombination(c.params)
	copy(n.slots, c.slots)
	return n
}

// freeze makes the combination read-only.
func (c *Combination) freeze() { c.frozen = true }

// Row exports the combination as an ordered row for external test-runner
// adapters: a human-readable description followed by one produced value per
// slot. Unassigned slots export nil.
func (c *Combination) Row() []interface{} {
	row := make([]interface{}, 0, len(c.slots)+1)
	row = append(row, c.Key())
	for _, s := range c.slots {
		row = append(row, s.Value())
	}
	return row
}

func (c *Combination) String() string {
	parts := make([]string, len(c.slots))
	for i, s := range c.slots {
		if s == nil {
			parts[i] = c.params[i].Name + "=" + keyPlaceholder
		} else {
			parts[i] = c.params[i].Name + "=" + s.Name()
		}
	}
	return strings.Join(parts, ", ")
}
