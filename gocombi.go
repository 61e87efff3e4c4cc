// Package gocombi provides an embeddable parser-combinator engine for Go.
//
// A host program builds a recursive-descent parser as a plain Go value
// by composing atomic regular-expression matchers with sequencing,
// alternation, repetition and value-shaping combinators. No grammar
// files and no code generation: the grammar is constructed in code and
// applied to an input string, producing either a structured result
// value with an end position or a diagnostic failure with a position
// and the expectations that would have allowed progress.
//
// # Quick Start
//
//	// Build the grammar once, parse many times.
//	word := gocombi.Match(`[a-z]+`, 0)
//	pair := word.Then(gocombi.Skip(":")).Then(word)
//
//	res := gocombi.Parse(pair, "key:value")
//	if res.Ok() {
//	    fmt.Println(res.Value())    // ["key", "value"]
//	} else {
//	    fmt.Println(res.ErrPosition(), res.Expected())
//	}
//
// # Recursive grammars
//
// A rule that refers to itself (directly or through other rules) is
// expressed with [Define], which threads the grammar root through every
// invocation:
//
//	array := gocombi.Define(func(root *gocombi.Parser) *gocombi.Parser {
//	    rest := gocombi.Skip(",").Then(root).Repeat()
//	    return gocombi.Skip(`\[`).
//	        Then(root.List().Then(rest).Flatten()).
//	        Then(gocombi.Skip(`]`))
//	})
//	grammar := gocombi.Match(`[0-9]+`, 0).Or(array)
//
// # More Information
//
// For detailed documentation, see:
//   - Engine: github.com/sandrolain/gocombi/pkg/combinator
//   - Types: github.com/sandrolain/gocombi/pkg/types
package gocombi

import (
	"github.com/sandrolain/gocombi/pkg/combinator"
	"github.com/sandrolain/gocombi/pkg/types"
)

// Version returns the current version of gocombi.
func Version() string {
	return "v0.1.0-dev"
}

// Parser is an immutable, freely shareable parsing rule. See
// [combinator.Parser].
type Parser = combinator.Parser

// Match builds an atomic matcher for pattern, anchored at the current
// offset, capturing the entire match (group 0), a capture group
// (group > 0) or nothing (group < 0). A malformed pattern panics at
// construction time. See [combinator.Match].
func Match(pattern string, group int) *Parser {
	return combinator.Match(pattern, group)
}

// Skip builds an atomic matcher that consumes pattern without
// contributing a value. See [combinator.Skip].
func Skip(pattern string) *Parser {
	return combinator.Skip(pattern)
}

// Define builds a parser whose definition may refer to the grammar
// root, enabling recursive rules. See [combinator.Define].
func Define(build func(root *Parser) *Parser) *Parser {
	return combinator.Define(build)
}

// Parse applies p to input, requiring the entire input to be consumed.
// It is shorthand for p.Parse(input).
func Parse(p *Parser, input string) types.Result {
	return p.Parse(input)
}
