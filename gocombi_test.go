package gocombi_test

import (
	"reflect"
	"testing"

	"github.com/sandrolain/gocombi"
	"github.com/sandrolain/gocombi/pkg/types"
)

func TestQuickStart(t *testing.T) {
	word := gocombi.Match(`[a-z]+`, 0)
	pair := word.Then(gocombi.Skip(":")).Then(word)

	res := gocombi.Parse(pair, "key:value")
	if !res.Ok() {
		t.Fatalf("parse failed at %d, expected %v", res.ErrPosition(), res.Expected())
	}
	want := types.List{types.Leaf("key"), types.Leaf("value")}
	if !reflect.DeepEqual(res.Value(), want) {
		t.Errorf("value = %s, want %s", res.Value(), want)
	}

	res = gocombi.Parse(pair, "key:value:extra")
	if res.Ok() {
		t.Fatal("trailing input must not parse")
	}
	if res.ErrPosition() != 9 {
		t.Errorf("failure position = %d, want 9", res.ErrPosition())
	}
}

func TestRecursiveQuickStart(t *testing.T) {
	array := gocombi.Define(func(root *gocombi.Parser) *gocombi.Parser {
		rest := gocombi.Skip(",").Then(root).Repeat()
		return gocombi.Skip(`\[`).
			Then(root.List().Then(rest).Flatten()).
			Then(gocombi.Skip(`]`))
	})
	grammar := gocombi.Match(`[0-9]+`, 0).Or(array)

	res := gocombi.Parse(grammar, "[1,[2,3]]")
	if !res.Ok() {
		t.Fatalf("parse failed at %d, expected %v", res.ErrPosition(), res.Expected())
	}
	want := types.List{
		types.Leaf("1"),
		types.List{types.Leaf("2"), types.Leaf("3")},
	}
	if !reflect.DeepEqual(res.Value(), want) {
		t.Errorf("value = %s, want %s", res.Value(), want)
	}
}

func TestVersion(t *testing.T) {
	if gocombi.Version() == "" {
		t.Error("Version must not be empty")
	}
}
