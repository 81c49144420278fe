package regex

import "unicode"

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isWord reports whether r is alphanumeric. Classification is per Unicode
// scalar value; '\w' does not include the underscore here.
func isWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// satisfies is the single-rune predicate behind '?' and '+' and the plain
// consuming nodes. Composite nodes (groups, alternations, backreferences,
// anchors, nested quantifiers) have no single-rune predicate and never
// satisfy, so a quantified group matches nothing.
func satisfies(n node, r rune) bool {
	switch x := n.(type) {
	case literalNode:
		return x.ch == r
	case anyNode:
		return true
	case digitNode:
		return isDigit(r)
	case wordNode:
		return isWord(r)
	case classNode:
		return x.set[r] != x.negated
	default:
		return false
	}
}
