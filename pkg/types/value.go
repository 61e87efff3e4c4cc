// Package types defines the core type system for gocombi.
//
// This package contains type definitions for:
//   - Value: the three-variant result payload (Empty, Leaf, List)
//   - Result: parse outcomes (Success, Failure)
//   - Merge: the furthest-failure diagnostic merge
package types

import (
	"strconv"
	"strings"
)

// Value is the payload carried by a successful parser application.
//
// There are exactly three variants:
//   - Empty: no semantic contribution (e.g. skipped punctuation)
//   - Leaf: a captured substring
//   - List: an ordered sequence of values
//
// Values are immutable and live only as long as the parse call that
// produced them. Discriminate variants with a type switch, or compare
// against Empty with == (safe for every variant: List has a different
// dynamic type, so the comparison is false without being evaluated).
type Value interface {
	value()
	String() string
}

type emptyValue struct{}

func (emptyValue) value() {}

func (emptyValue) String() string { return "<empty>" }

// Empty is the singleton Value carrying no semantic contribution.
// Sequencing and flattening drop Empty children, so it never appears
// inside a List they produce.
var Empty Value = emptyValue{}

// Leaf is a substring captured by an atomic matcher.
type Leaf string

func (Leaf) value() {}

func (l Leaf) String() string { return strconv.Quote(string(l)) }

// List is an ordered sequence of values produced by composition.
// Repetition always yields a List, even an empty one; it is the one
// combinator that does not collapse an empty contribution to Empty.
type List []Value

func (List) value() {}

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}
