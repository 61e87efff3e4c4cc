package combinator

import (
	"regexp"

	"github.com/sandrolain/gocombi/pkg/types"
)

// Match builds the atomic matcher: a parser that applies the regular
// expression pattern at the current offset. The pattern is anchored to
// the start of the remaining input; matching must begin exactly at the
// current offset, never later.
//
// group selects the value: 0 captures the entire matched text, g > 0
// captures the g-th capture group of pattern, and a negative group
// discards the match so the parser contributes [types.Empty] (see
// [Skip]). On a match the position advances by the matched byte
// length; on a mismatch the result is a Failure at the current offset
// whose expectation is the pattern source.
//
// The pattern is compiled once, at construction. A malformed pattern is
// a programmer error and panics before any parsing occurs; it is never
// reported as a parse-time failure.
func Match(pattern string, group int) *Parser {
	re := regexp.MustCompile("^(" + pattern + ")")
	return &Parser{run: func(_ *Parser, input string, pos int) types.Result {
		m := re.FindStringSubmatch(input[pos:])
		if m == nil {
			return &types.Failure{Pos: pos, Expect: []string{pattern}}
		}
		end := pos + len(m[0])
		if group < 0 {
			return &types.Success{Pos: end, Val: types.Empty}
		}
		// The anchoring paren shifts every capture group by one.
		return &types.Success{Pos: end, Val: types.Leaf(m[group+1])}
	}}
}

// Skip matches pattern and consumes its input without contributing a
// value. Use it for punctuation and other syntax that has no place in
// the result: sequencing drops the Empty it produces.
func Skip(pattern string) *Parser {
	return Match(pattern, -1)
}
