// Benchmarks for the gocombi engine.
//
// Run all benchmarks:
//
//	go test -bench=. -benchmem ./pkg/combinator/
//
// Run specific category:
//
//	go test -bench=BenchmarkParse -benchmem ./pkg/combinator/
package combinator_test

import (
	"strings"
	"testing"

	"github.com/sandrolain/gocombi/pkg/combinator"
)

var (
	// flatInput - a long run for the repetition loop
	flatInput = strings.Repeat("xy", 512)

	// nestedInput - deeply nested arrays for the recursive grammar
	nestedInput = strings.Repeat("[1,", 64) + "1" + strings.Repeat("]", 64)

	// jsonInput - a small mixed document
	jsonInput = `{"arr":[123,"456",789],"obj":{"key":"value","n":123},}`
)

func BenchmarkConstructGrammar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = newJSONGrammar()
	}
}

func BenchmarkParseRepeat(b *testing.B) {
	parser := combinator.Match("xy", 0).Repeat()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := parser.Parse(flatInput); !res.Ok() {
			b.Fatalf("parse failed at %d", res.ErrPosition())
		}
	}
}

func BenchmarkParseNested(b *testing.B) {
	grammar := nestedDigits()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := grammar.Parse(nestedInput); !res.Ok() {
			b.Fatalf("parse failed at %d", res.ErrPosition())
		}
	}
}

func BenchmarkParseJSON(b *testing.B) {
	g := newJSONGrammar()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := g.elements.Parse(jsonInput); !res.Ok() {
			b.Fatalf("parse failed at %d", res.ErrPosition())
		}
	}
}
