package allpairs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a parameter is constructed without a name.
	ErrEmptyName = errors.New("parameter name is required")

	// ErrNilPartitions is returned when a parameter is constructed with a nil
	// partition list. An empty list is allowed; an absent one is not.
	ErrNilPartitions = errors.New("partition list is required")

	// ErrReparented is returned when a partition already owned by one
	// parameter is placed in another.
	ErrReparented = errors.New("partition already belongs to a parameter")
)

// A Parameter is a named, ordered group of value partitions, together with
// the rules that constrain its compatibility with other parameters'
// partitions. Partition order matters only for determinism in keys and
// debug output, not for semantics.
type Parameter struct {
	Name string

	// The partitions, in declaration order. Every partition's back-reference
	// points to this parameter.
	Partitions []*Partition

	// The rules this parameter carries. Propagate may append rules declared
	// on other parameters that examine this one.
	Rules []*Rule
}

// NewParameter constructs a parameter, taking ownership of the given
// partitions. The name must be non-empty and the partition slice non-nil
// (it may be empty). Rules may be omitted. A partition that already belongs
// to another parameter is rejected.
func NewParameter(name string, partitions []*Partition, rules ...*Rule) (*Parameter, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if partitions == nil {
		return nil, fmt.Errorf("%w: parameter %s", ErrNilPartitions, name)
	}

	p := &Parameter{
		Name:       name,
		Partitions: make([]*Partition, len(partitions)),
		Rules:      append([]*Rule{}, rules...),
	}
	seen := make(map[string]bool, len(partitions))
	for i, part := range partitions {
		if part == nil {
			return nil, fmt.Errorf("nil partition at position %d of parameter %s", i, name)
		}
		if part.owner != nil {
			return nil, fmt.Errorf("%w: %s already in %s", ErrReparented, part.Name(), part.owner.Name)
		}
		if seen[part.Name()] {
			return nil, fmt.Errorf("duplicate partition name %q in parameter %s", part.Name(), name)
		}
		seen[part.Name()] = true
		part.owner = p
		p.Partitions[i] = part
	}
	return p, nil
}

// MustParameter is NewParameter that panics on error, for use in tests and
// variable initializers.
func MustParameter(name string, partitions []*Partition, rules ...*Rule) *Parameter {
	p, err := NewParameter(name, partitions, rules...)
	if err != nil {
		panic(err)
	}
	return p
}

// Partition returns the partition with the given name, or nil.
func (p *Parameter) Partition(name string) *Partition {
	for _, part := range p.Partitions {
		if part.Name() == name {
			return part
		}
	}
	return nil
}

// hasRule reports whether the parameter already carries the rule.
func (p *Parameter) hasRule(r *Rule) bool {
	for _, have := range p.Rules {
		if have == r {
			return true
		}
	}
	return false
}

// shuffled returns the parameter's partitions in a random order determined
// by the given source. The parameter itself is not modified.
func (p *Parameter) shuffled(shuffle func(n int, swap func(i, j int))) []*Partition {
	out := make([]*Partition, len(p.Partitions))
	copy(out, p.Partitions)
	shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
