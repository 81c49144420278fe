package regex

// node is the interface implemented by all compiled pattern nodes.
type node interface {
	re() // marker method
}

// literalNode matches exactly one rune.
type literalNode struct{ ch rune }

// anyNode matches any single rune ('.').
type anyNode struct{}

// startNode is the '^' anchor: zero-width, start of text.
type startNode struct{}

// endNode is the '$' anchor: zero-width, end of text.
type endNode struct{}

// classNode is a character class '[...]' or '[^...]'.
// Ranges are expanded into the set at compile time.
type classNode struct {
	set     map[rune]bool
	negated bool
}

// digitNode is the '\d' shorthand.
type digitNode struct{}

// wordNode is the '\w' shorthand.
type wordNode struct{}

// optionalNode is a node followed by '?': zero or one occurrence.
type optionalNode struct{ child node }

// oneOrMoreNode is a node followed by '+': at least one occurrence.
type oneOrMoreNode struct{ child node }

// groupNode is a capturing group '(...)'. Group numbers are assigned at
// parse time, left to right by opening parenthesis, starting at 1.
type groupNode struct {
	inner []node
	num   int
}

// altNode is a binary alternation 'left|right' inside a group. Chained
// alternation requires explicit nested groups.
type altNode struct {
	left  []node
	right []node
}

// backrefNode is a backreference '\1'..'\9' to a captured group.
type backrefNode struct{ num int }

func (literalNode) re()   {}
func (anyNode) re()       {}
func (startNode) re()     {}
func (endNode) re()       {}
func (classNode) re()     {}
func (digitNode) re()     {}
func (wordNode) re()      {}
func (optionalNode) re()  {}
func (oneOrMoreNode) re() {}
func (groupNode) re()     {}
func (altNode) re()       {}
func (backrefNode) re()   {}

// Pattern is a compiled regular expression. A Pattern is immutable after
// Compile apart from SetStepLimit and is safe for concurrent use by
// multiple goroutines; every match attempt builds its own capture state.
type Pattern struct {
	src      string
	nodes    []node
	groups   int
	maxSteps int
}

// String returns the source text of the pattern.
func (p *Pattern) String() string { return p.src }

// NumGroups returns the number of capturing groups in the pattern.
func (p *Pattern) NumGroups() int { return p.groups }

// SetStepLimit bounds the number of recursion steps a single call to
// MatchString or FindCaptures may take. Backtracking over nested groups is
// exponential in the worst case; a limit turns a pathological attempt into
// a plain no-match instead of letting it run away. Zero means no limit.
func (p *Pattern) SetStepLimit(n int) { p.maxSteps = n }
