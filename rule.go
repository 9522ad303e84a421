package allpairs

// A Rule constrains which partitions of different parameters may appear
// together in a combination. The predicate must be symmetric: its result
// may not depend on the order of its two arguments, because the engine
// queries compatibility from whichever side of a pair it reaches first.
//
// Parameters lists the names of the parameters whose partitions the
// predicate examines. Propagate uses it to attach the rule to every such
// parameter, so the rule is found regardless of which side declared it.
// A rule that names no parameters stays where it was declared.
type Rule struct {
	// A rule identifier, used in diagnostics and error messages.
	ID string

	// Names of the parameters this rule examines.
	Parameters []string

	fn func(a, b *Partition) bool
}

// NewRule creates a rule from a symmetric predicate. parameters names every
// parameter whose partitions fn examines.
func NewRule(id string, fn func(a, b *Partition) bool, parameters ...string) *Rule {
	return &Rule{ID: id, Parameters: parameters, fn: fn}
}

// Allows applies the rule's predicate to the pair. A nil rule or nil
// predicate allows everything. A panicking predicate is treated as
// incompatible rather than propagated: a contradictory rule forbids the
// pair, it does not abort the run.
func (r *Rule) Allows(a, b *Partition) (ok bool) {
	if r == nil || r.fn == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return r.fn(a, b)
}

// examines reports whether the rule declares the named parameter.
func (r *Rule) examines(name string) bool {
	for _, p := range r.Parameters {
		if p == name {
			return true
		}
	}
	return false
}

// Require builds a rule stating that whenever a partition named value of
// parameter param is chosen, the partition chosen for parameter other must
// be one of allowed. Partitions of unrelated parameters are unaffected.
//
//	Require("safari_macos_only", "Browser", "Safari", "OS", "macOS")
func Require(id, param, value, other string, allowed ...string) *Rule {
	ok := func(name string) bool {
		for _, a := range allowed {
			if a == name {
				return true
			}
		}
		return false
	}
	oneWay := func(a, b *Partition) bool {
		if a.Parameter() == nil || a.Parameter().Name != param || a.Name() != value {
			return true
		}
		if b.Parameter() == nil || b.Parameter().Name != other {
			return true
		}
		return ok(b.Name())
	}
	return NewRule(id, func(a, b *Partition) bool {
		return oneWay(a, b) && oneWay(b, a)
	}, param, other)
}

// Forbid builds a rule stating that the named partitions of the two
// parameters may never appear together.
func Forbid(id, paramA, valueA, paramB, valueB string) *Rule {
	oneWay := func(a, b *Partition) bool {
		return a.Parameter() == nil || a.Parameter().Name != paramA || a.Name() != valueA ||
			b.Parameter() == nil || b.Parameter().Name != paramB || b.Name() != valueB
	}
	return NewRule(id, func(a, b *Partition) bool {
		return oneWay(a, b) && oneWay(b, a)
	}, paramA, paramB)
}
