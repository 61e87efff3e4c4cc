// Package combinator implements the gocombi parsing engine.
//
// A grammar is built bottom-up as a graph of [Parser] values: atomic
// pattern matchers ([Match], [Skip]) composed with the sequencing,
// alternation, repetition and value-shaping methods, plus [Define] for
// rules that refer to the grammar root. The finished grammar is applied
// with [Parser.Parse], which yields a [types.Result].
//
// # Architecture
//
// Every Parser wraps a single function from (grammar root, input,
// start offset) to an outcome. Combinators close only over their
// already-built operands and thread the root through unchanged, so the
// whole engine is pure: the same (root, input, offset) triple always
// produces the same outcome, and no combinator mutates shared state.
// Backtracking in [Parser.Or] is a plain nested call at the original
// offset; there is no external state to roll back.
//
// # Example
//
//	word := combinator.Match(`[a-z]+`, 0)
//	pair := word.Then(combinator.Skip(":")).Then(word)
//	res := pair.Parse("key:value")
//	if res.Ok() {
//	    fmt.Println(res.Value()) // ["key", "value"]
//	}
//
// # Limits
//
// Evaluation is synchronous recursive descent: recursion depth grows
// with grammar nesting times input nesting and is bounded only by the
// goroutine stack. Deeply recursive grammars over deeply nested input
// can exhaust the stack.
package combinator

import (
	"github.com/sandrolain/gocombi/pkg/types"
)

// runFunc is the unit of computation behind every Parser: it maps the
// grammar root, the input and a start offset to an outcome.
type runFunc func(root *Parser, input string, pos int) types.Result

// Parser is an immutable parsing rule.
//
// Once constructed a Parser may be applied any number of times against
// any input, shared between grammar alternatives and referenced
// recursively, and is safe for concurrent use by multiple goroutines.
// Combinators operate on and return *Parser, never copies, so shared
// sub-rules appear once in the grammar graph.
type Parser struct {
	run runFunc
}

// Define builds a parser whose definition may refer to the grammar
// root before that root is fully constructed, enabling self-referential
// and mutually recursive rules.
//
// On every invocation, build is called with the root parser threaded
// through the current parse (the parser Parse was invoked on) and the
// returned parser handles the call. The per-call rebuild is the cost of
// expressing recursion declaratively: the rule cannot be constructed
// eagerly because its own value does not yet exist.
//
// Example:
//
//	// Nested bracketed lists of digits: [1,[2,3]]
//	array := combinator.Define(func(root *combinator.Parser) *combinator.Parser {
//	    rest := combinator.Skip(",").Then(root).Repeat()
//	    return combinator.Skip(`\[`).
//	        Then(root.List().Then(rest).Flatten()).
//	        Then(combinator.Skip(`]`))
//	})
//	grammar := combinator.Match(`[0-9]+`, 0).Or(array)
func Define(build func(root *Parser) *Parser) *Parser {
	return &Parser{run: func(root *Parser, input string, pos int) types.Result {
		return build(root).run(root, input, pos)
	}}
}

// Parse applies p to input, anchored at offset 0 and requiring the
// entire input to be consumed. p itself is the root threaded through
// the parse, so [Define] rules inside p resolve against p.
//
// All positions are raw byte offsets into input: atomic matchers slice
// and anchor by byte offset, combinators add matched byte lengths, and
// the full-consumption check compares against len(input). A success
// that ends before len(input) is replaced by a Failure at its end
// position with the distinguished expectation "no length".
func (p *Parser) Parse(input string) types.Result {
	res := p.run(p, input, 0)
	if !res.Ok() {
		return res
	}
	if res.Position() < len(input) {
		return &types.Failure{Pos: res.Position(), Expect: []string{"no length"}}
	}
	return res
}
