package regex

// matcher holds the per-attempt state: the capture store and the optional
// step budget. Text positions are absolute; group bodies are checked
// against [pos, end) windows of the same rune slice so that '^' and '$'
// keep their whole-text meaning inside groups.
type matcher struct {
	text     []rune
	caps     *captures
	steps    int
	maxSteps int
	overrun  bool
}

// MatchString reports whether text contains a match of the pattern.
// Matching never fails with an error; a pattern that cannot match anything
// simply reports false.
func (p *Pattern) MatchString(text string) bool {
	ok, _ := p.run(text, false)
	return ok
}

// FindCaptures is MatchString plus the substrings captured by numbered
// groups during the successful attempt. The map is nil when there is no
// match and owned by the caller otherwise.
func (p *Pattern) FindCaptures(text string) (bool, map[int]string) {
	return p.run(text, true)
}

// Match compiles pattern and matches it against text in one call.
func Match(pattern, text string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.MatchString(text), nil
}

func (p *Pattern) run(text string, wantCaps bool) (bool, map[int]string) {
	runes := []rune(text)
	m := &matcher{text: runes, caps: newCaptures(), maxSteps: p.maxSteps}

	attempt := func(start int) bool {
		m.caps.reset()
		return m.match(p.nodes, start, len(runes), false)
	}

	anchored := false
	if len(p.nodes) > 0 {
		_, anchored = p.nodes[0].(startNode)
	}

	matched := false
	if anchored {
		// Anchored: one attempt at offset 0.
		matched = attempt(0)
	} else {
		for i := 0; i <= len(runes); i++ {
			if attempt(i) {
				matched = true
				break
			}
		}
	}
	if !matched || !wantCaps {
		return matched, nil
	}
	return true, m.caps.all()
}

// match attempts nodes against the window [pos, end). With exact set the
// window must be fully consumed; that mode drives the start-to-end check
// of group prefixes. Failure is always a plain false, and every branch
// point restores the capture store before trying its next alternative.
func (m *matcher) match(nodes []node, pos, end int, exact bool) bool {
	if m.maxSteps > 0 {
		m.steps++
		if m.steps > m.maxSteps {
			m.overrun = true
		}
	}
	if m.overrun {
		return false
	}
	if len(nodes) == 0 {
		return !exact || pos == end
	}
	rest := nodes[1:]

	switch x := nodes[0].(type) {
	case startNode:
		return pos == 0 && m.match(rest, pos, end, exact)

	case endNode:
		return pos == len(m.text) && m.match(rest, pos, end, exact)

	case optionalNode:
		// Lazy first: the remainder with nothing consumed, then one rune.
		if m.match(rest, pos, end, exact) {
			return true
		}
		if pos < end && satisfies(x.child, m.text[pos]) {
			return m.match(rest, pos+1, end, exact)
		}
		return false

	case oneOrMoreNode:
		run := 0
		for pos+run < end && satisfies(x.child, m.text[pos+run]) {
			run++
		}
		// Greedy: hand back one rune at a time, never below one.
		for n := run; n >= 1; n-- {
			if m.match(rest, pos+n, end, exact) {
				return true
			}
		}
		return false

	case groupNode:
		return m.matchGroup(x, rest, pos, end, exact)

	case altNode:
		snap := m.caps.snapshot()
		if m.match(concat(x.left, rest), pos, end, exact) {
			return true
		}
		m.caps.restore(snap)
		if m.match(concat(x.right, rest), pos, end, exact) {
			return true
		}
		m.caps.restore(snap)
		return false

	case backrefNode:
		want, ok := m.caps.lookup(x.num)
		if !ok {
			return false
		}
		ref := []rune(want)
		if pos+len(ref) > end {
			return false
		}
		for i, r := range ref {
			if m.text[pos+i] != r {
				return false
			}
		}
		return m.match(rest, pos+len(ref), end, exact)

	default:
		// Single-rune consuming nodes: literal, '.', \d, \w, classes.
		if pos < end && satisfies(nodes[0], m.text[pos]) {
			return m.match(rest, pos+1, end, exact)
		}
		return false
	}
}

// matchGroup tries candidate prefix lengths 0..remaining in increasing
// order. A candidate succeeds when the group body matches the prefix
// window exactly and the rest of the pattern matches what follows; the
// capture is recorded before the continuation runs so backreferences in
// the continuation can see it. This enumeration is the engine's primary
// backtracking point and is exponential for nested groups.
func (m *matcher) matchGroup(g groupNode, rest []node, pos, end int, exact bool) bool {
	for l := 0; l <= end-pos; l++ {
		snap := m.caps.snapshot()
		if m.match(g.inner, pos, pos+l, true) {
			m.caps.set(g.num, string(m.text[pos:pos+l]))
			if m.match(rest, pos+l, end, exact) {
				return true
			}
		}
		m.caps.restore(snap)
	}
	return false
}

func concat(a, b []node) []node {
	out := make([]node, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
