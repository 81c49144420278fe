package regex

import "fmt"

// ErrorCode identifies the kind of syntax error found while compiling a
// pattern. All compile errors are terminal: a pattern either compiles or
// it does not, and a bad pattern is never reported as a non-match.
type ErrorCode int

const (
	// ErrUnsupportedEscape is a backslash followed by a rune that is not
	// 'd', 'w', '\\' or a digit 1-9.
	ErrUnsupportedEscape ErrorCode = iota + 1
	// ErrUnterminatedCharacterClass is a '[' with no closing ']'.
	ErrUnterminatedCharacterClass
	// ErrDanglingQuantifier is a '?' or '+' with nothing before it.
	ErrDanglingQuantifier
	// ErrUnmatchedParenthesis is a '(' with no closing ')'.
	ErrUnmatchedParenthesis
	// ErrInvalidAlternationSyntax is a second '|' inside one group;
	// chained alternation needs explicit nested groups.
	ErrInvalidAlternationSyntax
	// ErrIncompleteEscape is a pattern ending in a lone '\'.
	ErrIncompleteEscape
)

func (c ErrorCode) String() string {
	switch c {
	case ErrUnsupportedEscape:
		return "unsupported escape sequence"
	case ErrUnterminatedCharacterClass:
		return "unterminated character class"
	case ErrDanglingQuantifier:
		return "dangling quantifier"
	case ErrUnmatchedParenthesis:
		return "unmatched parenthesis"
	case ErrInvalidAlternationSyntax:
		return "invalid alternation syntax"
	case ErrIncompleteEscape:
		return "incomplete escape at end of pattern"
	default:
		return "syntax error"
	}
}

// A ParseError describes a syntax error and where it was found. Pos is a
// rune offset into the pattern source. Ch is the offending rune where one
// exists (escapes, quantifiers) and zero otherwise.
type ParseError struct {
	Code ErrorCode
	Pos  int
	Ch   rune
}

func (e *ParseError) Error() string {
	if e.Ch != 0 {
		return fmt.Sprintf("%s %q at position %d", e.Code, e.Ch, e.Pos)
	}
	return fmt.Sprintf("%s at position %d", e.Code, e.Pos)
}

func parseErr(code ErrorCode, pos int, ch rune) error {
	return &ParseError{Code: code, Pos: pos, Ch: ch}
}
