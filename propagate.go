package allpairs

import (
	"errors"
	"fmt"
)

// ErrNilParameters is returned when a generation entry point is called with
// a nil parameter collection. An empty collection is allowed and yields an
// empty table.
var ErrNilParameters = errors.New("nil parameter collection")

// Propagate attaches every rule to every parameter the rule declares it
// examines, so a compatibility query issued from either side of a
// constrained pair finds the rule. Parameters a rule never names are left
// untouched, and a rule already present on a parameter is not attached
// twice, so propagation is idempotent.
//
// The generation entry points call Propagate themselves; calling it
// directly is only needed when querying Compatible outside a generation
// run.
func Propagate(params []*Parameter) ([]*Parameter, error) {
	if params == nil {
		return nil, ErrNilParameters
	}

	byName := make(map[string]*Parameter, len(params))
	for i, p := range params {
		if p == nil {
			return nil, fmt.Errorf("nil parameter at position %d", i)
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate parameter name %q", p.Name)
		}
		byName[p.Name] = p
	}

	for _, p := range params {
		for _, r := range p.Rules {
			for _, name := range r.Parameters {
				target, ok := byName[name]
				if !ok {
					return nil, fmt.Errorf("rule %s examines unknown parameter %q", r.ID, name)
				}
				if !target.hasRule(r) {
					target.Rules = append(target.Rules, r)
				}
			}
		}
	}
	return params, nil
}
