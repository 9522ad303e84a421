package allpairs

// combinatorial enumerates every compatible complete combination by
// backtracking over parameter positions in order. The search is iterative,
// driven by an explicit per-level choice index, so deep parameter sets do
// not grow the call stack. A partition is pruned the moment it conflicts
// with any already-assigned slot.
func (g *Generator) combinatorial(params []*Parameter, limit int) (*Table, error) {
	t := newTable(params)
	d := g.diagnostics("combinatorial")

	n := len(params)
	if n == 0 {
		return g.attach(t, d), nil
	}

	var all []*Combination
	c := NewCombination(params)
	choice := make([]int, n)
	level := 0

	for level >= 0 {
		placed := false
		for choice[level] < len(params[level].Partitions) {
			cand := params[level].Partitions[choice[level]]
			choice[level]++
			if c.accepts(level, cand) {
				c.slots[level] = cand
				placed = true
				break
			}
		}

		if !placed {
			// Level exhausted: rewind it and resume the one below at its
			// next partition.
			choice[level] = 0
			c.clear(level)
			level--
			if level >= 0 {
				c.clear(level)
			}
			continue
		}

		if level == n-1 {
			d.Visited++
			if !c.Conflicts() {
				all = append(all, c.clone())
			}
			c.clear(level)
			continue
		}
		level++
	}

	if limit < len(all) {
		g.rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		all = all[:limit]
	}
	for _, combo := range all {
		if t.add(combo) {
			d.Combinations++
		}
	}
	return g.attach(t, d), nil
}
