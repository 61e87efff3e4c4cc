package types

// Result is the outcome of applying a parser to an input at a position.
//
// Exactly two types implement it: [*Success] and [*Failure]. Callers
// must discriminate the variant (via Ok or a type switch) before
// reading variant-specific payload; accessing the wrong variant's
// payload is a programmer error and panics rather than returning a
// zero value.
//
// Results are immutable, created per parser invocation and owned by
// the caller of that invocation; they are never cached or shared
// across parses.
type Result interface {
	// Ok reports whether the result is a Success.
	Ok() bool

	// Position returns the end offset on success, or the offset at
	// which matching failed.
	Position() int

	// ErrPosition returns the failure offset, or -1 on a Success.
	ErrPosition() int

	// Value returns the produced value. It panics on a Failure.
	Value() Value

	// Expected returns the expectation strings describing what would
	// have allowed progress. It panics on a Success.
	Expected() []string
}

// Success records a successful parser application. Pos is the offset
// at which the next parser should resume.
type Success struct {
	Pos int
	Val Value
}

// Ok reports whether the result is a Success. Always true.
func (s *Success) Ok() bool { return true }

// Position returns the end offset of the match.
func (s *Success) Position() int { return s.Pos }

// ErrPosition returns -1: a Success has no failure position.
func (s *Success) ErrPosition() int { return -1 }

// Value returns the produced value.
func (s *Success) Value() Value { return s.Val }

// Expected panics: a Success carries no expectations.
func (s *Success) Expected() []string {
	panic("gocombi/types: Expected called on a Success")
}

// Failure records a failed parser application. Pos is the furthest
// offset at which matching failed and Expect names what would have
// allowed progress there.
type Failure struct {
	Pos    int
	Expect []string
}

// Ok reports whether the result is a Success. Always false.
func (f *Failure) Ok() bool { return false }

// Position returns the offset at which matching failed.
func (f *Failure) Position() int { return f.Pos }

// ErrPosition returns the offset at which matching failed.
func (f *Failure) ErrPosition() int { return f.Pos }

// Value panics: a Failure carries no value.
func (f *Failure) Value() Value {
	panic("gocombi/types: Value called on a Failure")
}

// Expected returns the expectation strings.
func (f *Failure) Expected() []string { return f.Expect }

// Merge combines the failures of two alternatives tried at the same
// choice point, keeping the furthest position as the more informative
// diagnostic. Expectations come from the failure(s) that reached that
// position; when both did, a's expectations precede b's. Chained
// alternatives merge pairwise, left to right.
func Merge(a, b *Failure) *Failure {
	pos := a.Pos
	var expect []string
	if a.Pos >= b.Pos {
		expect = append(expect, a.Expect...)
	}
	if a.Pos <= b.Pos {
		expect = append(expect, b.Expect...)
		pos = b.Pos
	}
	return &Failure{Pos: pos, Expect: expect}
}
