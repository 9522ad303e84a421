package allpairs

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"
)

var (
	// ErrInvalidLimit is returned when Combinatorial is called with a limit
	// below 1.
	ErrInvalidLimit = errors.New("limit must be at least 1")

	// ErrSeedConflict reports that a partial combination handed to slot
	// completion already contained an incompatible pair. Algorithms only
	// seed conflict-free combinations, so this is a logic fault, not a
	// recoverable condition.
	ErrSeedConflict = errors.New("seed combination has conflicts")

	// ErrNoCandidates reports that candidate pairs remain but none of them
	// can make progress, which would otherwise loop forever.
	ErrNoCandidates = errors.New("no viable candidates remain")
)

// A Generator produces combination tables from a parameter set. One
// generation run is a single-threaded batch computation; a Generator must
// not be used from multiple goroutines at once.
type Generator struct {
	rng    *rand.Rand
	logger *slog.Logger
	opts   generatorOptions
}

type generatorOptions struct {
	seed               int64
	seeded             bool
	jump               int
	logger             *slog.Logger
	collectDiagnostics bool
}

// Option configures a Generator.
type Option func(*generatorOptions)

// defaultJump varies the traversal order over the candidate queue. A prime
// step keeps consecutive seeds from coming out of the same parameter pair.
const defaultJump = 7

// WithSeed fixes the random source, making a run reproducible. Without it
// the generator is seeded from the clock and partition orderings differ
// between runs.
func WithSeed(seed int64) Option {
	return func(o *generatorOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithJump sets the step size used to traverse the candidate queue.
// Values below 1 are ignored.
func WithJump(n int) Option {
	return func(o *generatorOptions) {
		if n >= 1 {
			o.jump = n
		}
	}
}

// WithLogger sets the logger used for generation warnings.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *generatorOptions) {
		o.logger = l
	}
}

// CollectDiagnostics attaches a diagnostic report to every generated table.
// Default: off.
func CollectDiagnostics(b bool) Option {
	return func(o *generatorOptions) {
		o.collectDiagnostics = b
	}
}

// NewGenerator creates a generator.
func NewGenerator(opts ...Option) *Generator {
	o := generatorOptions{jump: defaultJump}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Generator{
		rng:    rand.New(rand.NewSource(o.seed)),
		logger: o.logger,
		opts:   o,
	}
}

// Pairwise generates a heuristic set of combinations covering every
// mutually-compatible pair of partitions across every pair of parameters.
// The cover is not guaranteed minimal. Exact output order varies between
// runs unless WithSeed is used.
func (g *Generator) Pairwise(params []*Parameter) (*Table, error) {
	params, err := Propagate(params)
	if err != nil {
		return nil, err
	}
	return g.pairwise(params)
}

// LegacyPairwise generates a pairwise cover with the older merge-based
// construction, kept for comparison against Pairwise. It tends to produce
// slightly larger tables.
func (g *Generator) LegacyPairwise(params []*Parameter) (*Table, error) {
	params, err := Propagate(params)
	if err != nil {
		return nil, err
	}
	return g.legacyPairwise(params)
}

// Combinatorial generates every compatible combination. If limit is smaller
// than the full valid set, the set is shuffled and truncated to limit; no
// smarter selection is attempted. limit must be at least 1.
func (g *Generator) Combinatorial(params []*Parameter, limit int) (*Table, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	params, err := Propagate(params)
	if err != nil {
		return nil, err
	}
	return g.combinatorial(params, limit)
}

// GeneratePairwise runs Pairwise with a default generator.
func GeneratePairwise(params []*Parameter) (*Table, error) {
	return NewGenerator().Pairwise(params)
}

// GenerateCombinatorial runs Combinatorial with a default generator.
func GenerateCombinatorial(params []*Parameter, limit int) (*Table, error) {
	return NewGenerator().Combinatorial(params, limit)
}

// A candidate is a compatible partition pair emitted in phase 1 of the
// pairwise algorithms: a partial combination with only slots i and j filled.
type candidate struct {
	i, j int
	a, b *Partition
	key  string
}

// pairKey builds the canonical key of a pair viewed as a width-n partial
// combination, the form used by the coverage map.
func pairKey(n, i, j int, a, b *Partition) string {
	names := make([]string, n)
	for k := range names {
		names[k] = keyPlaceholder
	}
	names[i] = a.Name()
	names[j] = b.Name()
	return strings.Join(names, keySeparator)
}

// candidatePairs runs phase 1: for every unordered pair of parameter
// positions, emit every mutually-compatible partition pair, in shuffled
// order for result diversity. The coverage map starts with every candidate
// pending.
func (g *Generator) candidatePairs(params []*Parameter) ([]*candidate, map[string]bool) {
	n := len(params)
	queue := []*candidate{}
	covered := map[string]bool{}

	for i := 0; i < n; i++ {
		left := params[i].shuffled(g.rng.Shuffle)
		for j := i + 1; j < n; j++ {
			right := params[j].shuffled(g.rng.Shuffle)
			for _, a := range left {
				for _, b := range right {
					if !Compatible(a, b) {
						continue
					}
					c := &candidate{i: i, j: j, a: a, b: b, key: pairKey(n, i, j, a, b)}
					queue = append(queue, c)
					covered[c.key] = false
				}
			}
		}
	}
	return queue, covered
}

// complete fills every unassigned slot of c by trying that parameter's
// partitions in shuffled order and keeping the first one compatible with
// everything assigned so far. A slot with no compatible partition is logged
// and left unassigned rather than aborting the run. The combination must be
// conflict-free on entry.
func (g *Generator) complete(c *Combination, d *Diagnostics) error {
	if c.Conflicts() {
		return fmt.Errorf("%w: %s", ErrSeedConflict, c.Key())
	}
	for i, param := range c.params {
		if c.Value(i) != nil {
			continue
		}
		placed := false
		for _, cand := range param.shuffled(g.rng.Shuffle) {
			if c.accepts(i, cand) {
				c.slots[i] = cand
				placed = true
				break
			}
		}
		if !placed {
			g.logger.Warn("no compatible partition for slot, leaving it unassigned",
				"parameter", param.Name,
				"combination", c.Key())
			d.DegradedSlots++
		}
	}
	return nil
}

// markCovered records every pairwise sub-combination of c in the coverage
// map.
func markCovered(c *Combination, covered map[string]bool, d *Diagnostics) {
	n := c.Len()
	for i := 0; i < n; i++ {
		a := c.Value(i)
		if a == nil {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := c.Value(j)
			if b == nil {
				continue
			}
			k := pairKey(n, i, j, a, b)
			if !covered[k] {
				covered[k] = true
				d.CoveredPairs++
			}
		}
	}
}

// removeAt removes the candidate at idx preserving queue order.
func removeAt(queue []*candidate, idx int) []*candidate {
	return append(queue[:idx], queue[idx+1:]...)
}

func (g *Generator) diagnostics(algorithm string) *Diagnostics {
	return &Diagnostics{Algorithm: algorithm}
}

// attach places the run's diagnostics on the table if collection is on.
func (g *Generator) attach(t *Table, d *Diagnostics) *Table {
	if g.opts.collectDiagnostics {
		t.Diagnostics = d
	}
	return t
}
