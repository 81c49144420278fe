// Package regex implements a small backtracking regular-expression engine.
//
// The syntax covers literals, '.', the '^' and '$' anchors, character
// classes with ranges and negation, the '\d' and '\w' shorthands, the '?'
// and '+' quantifiers, capturing groups with binary alternation, and the
// backreferences '\1'..'\9'. Matching is pure recursive backtracking over
// the compiled node sequence; there is no automaton compilation, and
// nested groups can take exponential time on adversarial input. Use
// Pattern.SetStepLimit when the text or pattern is untrusted.
package regex
