package regex

// captures is the mutable capture store for one match attempt: group
// number to matched substring. It is owned by exactly one attempt and
// threaded explicitly through the matcher, never shared.
//
// Callers that try several alternatives (group prefix lengths, alternation
// arms) take a snapshot first and restore it before moving to the next
// alternative, so a failed branch leaves no trace.
type captures struct {
	spans map[int]string
}

func newCaptures() *captures {
	return &captures{spans: make(map[int]string)}
}

func (c *captures) set(num int, text string) {
	c.spans[num] = text
}

func (c *captures) lookup(num int) (string, bool) {
	s, ok := c.spans[num]
	return s, ok
}

// reset clears every capture; called once per top-level attempt.
func (c *captures) reset() {
	clear(c.spans)
}

func (c *captures) snapshot() map[int]string {
	snap := make(map[int]string, len(c.spans))
	for k, v := range c.spans {
		snap[k] = v
	}
	return snap
}

func (c *captures) restore(snap map[int]string) {
	clear(c.spans)
	for k, v := range snap {
		c.spans[k] = v
	}
}

// all returns a copy safe to hand to the caller.
func (c *captures) all() map[int]string {
	out := make(map[int]string, len(c.spans))
	for k, v := range c.spans {
		out[k] = v
	}
	return out
}
