package regex

type parser struct {
	src    []rune
	pos    int
	groups int
}

// Compile parses a pattern into a Pattern or returns a *ParseError.
// Compiling the same source always yields an equivalent Pattern.
func Compile(src string) (*Pattern, error) {
	p := &parser{src: []rune(src)}
	nodes, err := p.parseSequence(true)
	if err != nil {
		return nil, err
	}
	return &Pattern{src: src, nodes: nodes, groups: p.groups}, nil
}

// MustCompile is Compile for patterns known good at build time; it panics
// on a syntax error.
func MustCompile(src string) *Pattern {
	p, err := Compile(src)
	if err != nil {
		panic("regex: MustCompile(" + src + "): " + err.Error())
	}
	return p
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) cur() rune { return p.src[p.pos] }

// parseSequence consumes a concatenation of nodes. Inside a group it stops
// at '|' or ')'; at top level those runes are ordinary literals.
func (p *parser) parseSequence(topLevel bool) ([]node, error) {
	var out []node
	for !p.eof() {
		ch := p.cur()
		if !topLevel && (ch == '|' || ch == ')') {
			break
		}
		switch ch {
		case '^':
			p.pos++
			out = append(out, startNode{})
		case '$':
			p.pos++
			out = append(out, endNode{})
		case '.':
			p.pos++
			out = append(out, anyNode{})
		case '\\':
			n, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		case '[':
			n, err := p.parseClass()
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		case '(':
			n, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		case '?', '+':
			if len(out) == 0 {
				return nil, parseErr(ErrDanglingQuantifier, p.pos, ch)
			}
			p.pos++
			last := out[len(out)-1]
			if ch == '?' {
				out[len(out)-1] = optionalNode{child: last}
			} else {
				out[len(out)-1] = oneOrMoreNode{child: last}
			}
		default:
			p.pos++
			out = append(out, literalNode{ch: ch})
		}
	}
	return out, nil
}

// parseGroup consumes '(...)'. The group number is taken from the opening
// parenthesis, so nested groups are numbered left to right at parse time.
// A group holds a plain sequence or exactly one binary alternation.
func (p *parser) parseGroup() (node, error) {
	open := p.pos
	p.pos++ // '('
	p.groups++
	num := p.groups

	left, err := p.parseSequence(false)
	if err != nil {
		return nil, err
	}
	if p.eof() {
		return nil, parseErr(ErrUnmatchedParenthesis, open, 0)
	}
	if p.cur() == ')' {
		p.pos++
		return groupNode{inner: left, num: num}, nil
	}

	// p.cur() == '|'
	p.pos++
	right, err := p.parseSequence(false)
	if err != nil {
		return nil, err
	}
	if p.eof() {
		return nil, parseErr(ErrUnmatchedParenthesis, open, 0)
	}
	if p.cur() == '|' {
		return nil, parseErr(ErrInvalidAlternationSyntax, p.pos, '|')
	}
	p.pos++ // ')'
	return groupNode{inner: []node{altNode{left: left, right: right}}, num: num}, nil
}

func (p *parser) parseEscape() (node, error) {
	start := p.pos
	p.pos++ // '\'
	if p.eof() {
		return nil, parseErr(ErrIncompleteEscape, start, 0)
	}
	ch := p.cur()
	p.pos++
	switch {
	case ch == 'd':
		return digitNode{}, nil
	case ch == 'w':
		return wordNode{}, nil
	case ch == '\\':
		return literalNode{ch: '\\'}, nil
	case ch >= '1' && ch <= '9':
		return backrefNode{num: int(ch - '0')}, nil
	default:
		return nil, parseErr(ErrUnsupportedEscape, start, ch)
	}
}

// parseClass consumes '[...]' or '[^...]'. Ranges like a-z are inclusive;
// a reversed range contributes no members; '-' is literal when it has no
// range end ("[a-]", "[-z]" keep the dash).
func (p *parser) parseClass() (node, error) {
	open := p.pos
	p.pos++ // '['
	negated := false
	if !p.eof() && p.cur() == '^' {
		negated = true
		p.pos++
	}
	set := make(map[rune]bool)
	for !p.eof() && p.cur() != ']' {
		lo := p.cur()
		if p.pos+2 < len(p.src) && p.src[p.pos+1] == '-' && p.src[p.pos+2] != ']' {
			hi := p.src[p.pos+2]
			for r := lo; r <= hi; r++ {
				set[r] = true
			}
			p.pos += 3
			continue
		}
		set[lo] = true
		p.pos++
	}
	if p.eof() {
		return nil, parseErr(ErrUnterminatedCharacterClass, open, 0)
	}
	p.pos++ // ']'
	return classNode{set: set, negated: negated}, nil
}
