package allpairs

// legacyPairwise is the older cover construction, kept for comparison with
// pairwise. Instead of seeding a fresh combination from each candidate, it
// merges candidates into one in-progress combination until it fills up;
// candidates that contradict the combination are deferred to a retry list
// and returned to the queue for the next round.
func (g *Generator) legacyPairwise(params []*Parameter) (*Table, error) {
	t := newTable(params)
	d := g.diagnostics("legacy-pairwise")

	queue, covered := g.candidatePairs(params)
	d.CandidatePairs = len(queue)

	idx := 0
	for len(queue) > 0 {
		current := NewCombination(params)
		var retry []*candidate
		progress := false

		for len(queue) > 0 && !current.Filled() {
			idx = (idx + g.opts.jump) % len(queue)
			cand := queue[idx]
			queue = removeAt(queue, idx)

			if covered[cand.key] {
				progress = true
				continue
			}
			if current.merge(cand) {
				progress = true
			} else {
				retry = append(retry, cand)
				d.DeferredMerges++
			}
		}

		if err := g.complete(current, d); err != nil {
			return nil, err
		}

		before := d.CoveredPairs
		markCovered(current, covered, d)
		if d.CoveredPairs > before {
			progress = true
		}

		if t.add(current) {
			d.Combinations++
		} else {
			d.Duplicates++
		}

		queue = append(queue, retry...)
		if !progress && len(queue) > 0 {
			return nil, ErrNoCandidates
		}
	}
	return g.attach(t, d), nil
}

// merge folds the candidate pair into the combination. It fails if the pair
// contradicts an already-assigned slot, or if the combination would conflict
// once merged; on failure the combination is unchanged.
func (c *Combination) merge(cand *candidate) bool {
	if s := c.Value(cand.i); s != nil && s != cand.a {
		return false
	}
	if s := c.Value(cand.j); s != nil && s != cand.b {
		return false
	}

	prevI, prevJ := c.slots[cand.i], c.slots[cand.j]
	c.slots[cand.i] = cand.a
	c.slots[cand.j] = cand.b
	if c.Conflicts() {
		c.slots[cand.i], c.slots[cand.j] = prevI, prevJ
		return false
	}
	return true
}
