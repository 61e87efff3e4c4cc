package combinator

import (
	"github.com/sandrolain/gocombi/pkg/types"
)

// Then sequences p and q: q starts where p ended. Either failure is
// propagated unchanged. On success the non-Empty values of p and q are
// collected in order; the result value is Empty when both contributed
// nothing, the lone value when exactly one did, and a List otherwise.
func (p *Parser) Then(q *Parser) *Parser {
	return &Parser{run: func(root *Parser, input string, pos int) types.Result {
		first := p.run(root, input, pos)
		if !first.Ok() {
			return first
		}
		second := q.run(root, input, first.Position())
		if !second.Ok() {
			return second
		}
		var v types.List
		if first.Value() != types.Empty {
			v = append(v, first.Value())
		}
		if second.Value() != types.Empty {
			v = append(v, second.Value())
		}
		val := types.Empty
		switch len(v) {
		case 0:
		case 1:
			val = v[0]
		default:
			val = v
		}
		return &types.Success{Pos: second.Position(), Val: val}
	}}
}

// Or tries p and falls back to q. The choice is left-biased: p's
// success wins even if q would also match. When p fails, q is tried at
// the same starting offset (full backtrack; a failed alternative
// consumes nothing). When both fail the failures are combined with
// [types.Merge], keeping the furthest one's diagnostics.
func (p *Parser) Or(q *Parser) *Parser {
	return &Parser{run: func(root *Parser, input string, pos int) types.Result {
		left := p.run(root, input, pos)
		if left.Ok() {
			return left
		}
		right := q.run(root, input, pos)
		if right.Ok() {
			return right
		}
		return types.Merge(left.(*types.Failure), right.(*types.Failure))
	}}
}

// Repeat applies p zero or more times, advancing past each success and
// accumulating the non-Empty values. The first failing attempt ends
// the loop and is discarded: Repeat itself never fails, and its end
// position is the offset just before that attempt. The value is always
// a List, even when p never succeeded; unlike [Parser.Then], an empty
// accumulation does not collapse to Empty.
//
// p must consume input when it succeeds: a zero-width success (e.g.
// Skip("")) repeats at the same offset forever.
func (p *Parser) Repeat() *Parser {
	return &Parser{run: func(root *Parser, input string, pos int) types.Result {
		v := types.List{}
		for {
			res := p.run(root, input, pos)
			if !res.Ok() {
				return &types.Success{Pos: pos, Val: v}
			}
			pos = res.Position()
			if res.Value() != types.Empty {
				v = append(v, res.Value())
			}
		}
	}}
}

// List wraps p's value in a single-element List when it is not Empty.
// It normalizes a scalar branch so a later [Parser.Flatten] treats it
// uniformly with list-shaped branches.
func (p *Parser) List() *Parser {
	return &Parser{run: func(root *Parser, input string, pos int) types.Result {
		res := p.run(root, input, pos)
		if !res.Ok() || res.Value() == types.Empty {
			return res
		}
		return &types.Success{Pos: res.Position(), Val: types.List{res.Value()}}
	}}
}

// Flatten splices one level of nesting out of p's List value: elements
// that are themselves Lists contribute their elements directly,
// Empty elements are dropped, everything else passes through as-is.
// Elements nested two or more levels deep keep their inner structure.
// A List emptied by the splice collapses to Empty, and a value that
// was not a List at all is returned unchanged.
func (p *Parser) Flatten() *Parser {
	return &Parser{run: func(root *Parser, input string, pos int) types.Result {
		res := p.run(root, input, pos)
		if !res.Ok() {
			return res
		}
		list, ok := res.Value().(types.List)
		if !ok {
			return res
		}
		var flat types.List
		for _, el := range list {
			switch el := el.(type) {
			case types.List:
				flat = append(flat, el...)
			default:
				if el != types.Empty {
					flat = append(flat, el)
				}
			}
		}
		val := types.Empty
		if len(flat) > 0 {
			val = flat
		}
		return &types.Success{Pos: res.Position(), Val: val}
	}}
}
