package allpairs

// pairwise is phase 2 of the primary algorithm: each candidate popped from
// the queue seeds a fresh combination, which is then completed slot by slot.
// Covered candidates are dropped without seeding anything.
func (g *Generator) pairwise(params []*Parameter) (*Table, error) {
	t := newTable(params)
	d := g.diagnostics("pairwise")

	queue, covered := g.candidatePairs(params)
	d.CandidatePairs = len(queue)

	idx := 0
	for len(queue) > 0 {
		idx = (idx + g.opts.jump) % len(queue)
		cand := queue[idx]
		queue = removeAt(queue, idx)

		if covered[cand.key] {
			continue
		}

		c := NewCombination(params)
		// Candidates were emitted compatible in phase 1, so these cannot fail.
		if err := c.SetValue(cand.i, cand.a); err != nil {
			return nil, err
		}
		if err := c.SetValue(cand.j, cand.b); err != nil {
			return nil, err
		}
		if c.Conflicts() {
			continue
		}

		if err := g.complete(c, d); err != nil {
			return nil, err
		}
		markCovered(c, covered, d)

		if t.add(c) {
			d.Combinations++
		} else {
			d.Duplicates++
		}
	}
	return g.attach(t, d), nil
}
