package cel

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"

	"github.com/combinatest/allpairs"
)

// NewRule compiles the CEL expression into an allpairs rule. parameters
// names every parameter the expression examines, exactly as for
// allpairs.NewRule; it drives rule propagation, not compilation.
//
// The expression must produce a bool. Compilation failures are returned
// here, before any generation starts; evaluation failures at generation
// time make the pair incompatible.
func NewRule(id, expr string, parameters ...string) (*allpairs.Rule, error) {
	env, err := newEnv()
	if err != nil {
		return nil, err
	}

	prg, err := compile(env, id, expr)
	if err != nil {
		return nil, err
	}

	fn := func(a, b *allpairs.Partition) bool {
		return evaluate(prg, a, b) && evaluate(prg, b, a)
	}
	return allpairs.NewRule(id, fn, parameters...), nil
}

// MustRule is NewRule that panics on compilation error, for use in tests
// and variable initializers.
func MustRule(id, expr string, parameters ...string) *allpairs.Rule {
	r, err := NewRule(id, expr, parameters...)
	if err != nil {
		panic(err)
	}
	return r
}

// newEnv declares the two partition variables the expressions evaluate
// against.
func newEnv() (*cel.Env, error) {
	partition := decls.NewMapType(decls.String, decls.Any)
	return cel.NewEnv(cel.Declarations(
		decls.NewVar("a", partition),
		decls.NewVar("b", partition),
	))
}

// compile parses, checks and builds the program for the expression.
func compile(env *cel.Env, id, expr string) (cel.Program, error) {
	p, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("parsing rule %s: %w", id, iss.Err())
	}

	c, iss := env.Check(p)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("checking rule %s: %w", id, iss.Err())
	}

	prg, err := env.Program(c)
	if err != nil {
		return nil, fmt.Errorf("generating program for rule %s: %w", id, err)
	}
	return prg, nil
}

// evaluate runs the program with a and b bound in the given order. Any
// evaluation error, and any non-bool result, is treated as "incompatible":
// a contradictory rule forbids the pair, it does not abort the run.
func evaluate(prg cel.Program, a, b *allpairs.Partition) bool {
	out, _, err := prg.Eval(map[string]interface{}{
		"a": partitionMap(a),
		"b": partitionMap(b),
	})
	if err != nil {
		return false
	}
	v, ok := out.Value().(bool)
	return ok && v
}

// partitionMap renders a partition as the map the expression sees. The
// partition's value is read once per evaluation; cycling partitions
// therefore advance when a rule inspects their value, which is one more
// reason rules should constrain names, not values, where possible.
func partitionMap(p *allpairs.Partition) map[string]interface{} {
	m := map[string]interface{}{
		"name":      p.Name(),
		"parameter": "",
		"value":     p.Value(),
	}
	if p.Parameter() != nil {
		m["parameter"] = p.Parameter().Name
	}
	return m
}
