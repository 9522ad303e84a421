package allpairs

import (
	"fmt"
	"sync/atomic"
)

// A Partition is a named source of one concrete value per read. The value
// may be constant, computed fresh on every read, or drawn from a repeating
// cycle. For combination bookkeeping a partition's identity is the partition
// itself, never the value it produces: two reads of a cycling partition may
// yield different values yet remain the same partition.
type Partition struct {
	name string

	// produce returns the partition's value for one read.
	produce func() interface{}

	// The parameter this partition belongs to. Set exactly once, when the
	// owning parameter is constructed.
	owner *Parameter
}

// NewConstant returns a partition that always produces the given value.
// If name is empty, the value's string form is used.
func NewConstant(name string, value interface{}) *Partition {
	if name == "" {
		name = fmt.Sprintf("%v", value)
	}
	return &Partition{
		name:    name,
		produce: func() interface{} { return value },
	}
}

// NewComputed returns a partition whose value is produced by fn, invoked
// fresh on every read with no caching. Side effects and thread safety of fn
// are the caller's responsibility.
func NewComputed(name string, fn func() interface{}) *Partition {
	return &Partition{name: name, produce: fn}
}

// NewCycling returns a partition that produces def on the first read, then
// the given values in order, then wraps back to def and repeats
// indefinitely. The cursor is shared by all readers of the partition and is
// advanced atomically, so concurrent test executions built from the same
// parameter set each observe a distinct cycle position.
func NewCycling(name string, def interface{}, values ...interface{}) *Partition {
	cycle := make([]interface{}, 0, len(values)+1)
	cycle = append(cycle, def)
	cycle = append(cycle, values...)

	var cursor atomic.Uint64
	return &Partition{
		name: name,
		produce: func() interface{} {
			n := cursor.Add(1) - 1
			return cycle[n%uint64(len(cycle))]
		},
	}
}

// Name returns the partition's name, unique within its owning parameter.
func (p *Partition) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

// Value performs one read of the partition.
func (p *Partition) Value() interface{} {
	if p == nil || p.produce == nil {
		return nil
	}
	return p.produce()
}

// Parameter returns the parameter this partition belongs to, or nil if the
// partition has not been placed in a parameter yet.
func (p *Partition) Parameter() *Parameter {
	if p == nil {
		return nil
	}
	return p.owner
}

func (p *Partition) String() string {
	if p == nil {
		return "<nil>"
	}
	if p.owner != nil {
		return p.owner.Name + "/" + p.name
	}
	return p.name
}

// Compatible reports whether the two partitions may appear together in one
// combination. The pair is accepted only if every rule held by a's owner and
// every rule held by b's owner accepts it; an ownerless partition is
// compatible with everything. The check is symmetric:
// Compatible(a, b) == Compatible(b, a).
func Compatible(a, b *Partition) bool {
	return allows(a, b) && allows(b, a)
}

// allows consults the rules of a's owning parameter only. Both directions
// together form the full compatibility check.
func allows(a, b *Partition) bool {
	if a == nil || b == nil || a.owner == nil {
		return true
	}
	for _, r := range a.owner.Rules {
		if !r.Allows(a, b) {
			return false
		}
	}
	return true
}
