package grammar_test

import (
	"testing"

	"github.com/attrgrammar/evalorder/grammar"
)

func TestKindString(t *testing.T) {
	cases := map[grammar.Kind]string{
		grammar.Inherited:   "inh",
		grammar.Synthesized: "syn",
		grammar.InitByValue: "val",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", k, got, want)
		}
	}
}

func TestEffectiveKindInitByValue(t *testing.T) {
	g := grammar.New()
	p := g.AddProduction('A', []byte("a"))
	vars := p.Variables()

	leftAttr := g.EnsureAttribute(vars[0], "x", grammar.InitByValue, true)
	if got := leftAttr.EffectiveKind(); got != grammar.Synthesized {
		t.Errorf("init-by-value at index 0: EffectiveKind() = %v, want Synthesized", got)
	}

	rightAttr := g.EnsureAttribute(vars[1], "y", grammar.InitByValue, true)
	if got := rightAttr.EffectiveKind(); got != grammar.Inherited {
		t.Errorf("init-by-value at index 1: EffectiveKind() = %v, want Inherited", got)
	}
}

func TestAddAndRemoveDependencyOnCountsSameIndexOnly(t *testing.T) {
	g := grammar.New()
	p := g.AddProduction('A', []byte("bc"))
	vars := p.Variables() // A(0), b(1), c(2)

	x0 := g.EnsureAttribute(vars[0], "x", grammar.Synthesized, true)
	x1 := g.EnsureAttribute(vars[1], "x", grammar.Inherited, true)
	y0 := g.EnsureAttribute(vars[0], "y", grammar.Synthesized, true)

	if isNew := x0.AddDependencyOn(y0); !isNew {
		t.Fatal("expected first AddDependencyOn to report a new edge")
	}
	if got := x0.SameIndexPredCount(); got != 1 {
		t.Errorf("same-index dependency: SameIndexPredCount() = %d, want 1", got)
	}
	if isNew := x0.AddDependencyOn(y0); isNew {
		t.Error("re-adding an existing edge should report isNew = false")
	}
	if got := x0.SameIndexPredCount(); got != 1 {
		t.Errorf("duplicate AddDependencyOn must not double-count: got %d, want 1", got)
	}

	// x1 is at a different index (1) than x0 (0): the edge is recorded but
	// must not affect x0's same-index counter.
	x0.AddDependencyOn(x1)
	if got := x0.SameIndexPredCount(); got != 1 {
		t.Errorf("cross-index dependency changed same-index count: got %d, want 1", got)
	}

	x0.RemoveFromDependsOn(y0)
	if got := x0.SameIndexPredCount(); got != 0 {
		t.Errorf("after removing the same-index dependency: got %d, want 0", got)
	}
	if len(x0.DependsOn()) != 1 {
		t.Errorf("x0 should still depend on x1 after removing y0: len = %d", len(x0.DependsOn()))
	}

	// idempotent removal
	x0.RemoveFromDependsOn(y0)
	if got := x0.SameIndexPredCount(); got != 0 {
		t.Errorf("idempotent RemoveFromDependsOn changed count: got %d, want 0", got)
	}
}
