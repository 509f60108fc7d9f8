package parse_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/attrgrammar/evalorder/grammar"
	"github.com/attrgrammar/evalorder/parse"
)

func TestParseProducesExpectedVariablesAndEdges(t *testing.T) {
	g, err := parse.Parse(strings.NewReader("A->b : x[0]=x[1]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	prods := g.AllProductions()
	if len(prods) != 1 {
		t.Fatalf("expected 1 production, got %d", len(prods))
	}
	p := prods[0]
	if p.LHS() != 'A' {
		t.Errorf("LHS() = %q, want 'A'", p.LHS())
	}
	if diff := cmp.Diff([]byte("b"), p.Symbols()); diff != "" {
		t.Errorf("Symbols() mismatch (-want +got):\n%s", diff)
	}

	vars := p.Variables()
	if len(vars) != 2 {
		t.Fatalf("expected 2 occurrences (LHS + 1 RHS symbol), got %d", len(vars))
	}
	ax, ok := vars[0].Attribute("x")
	if !ok {
		t.Fatal("A's occurrence has no attribute x")
	}
	if ax.Kind() != grammar.Synthesized {
		t.Errorf("A.x kind = %v, want Synthesized (index 0, right side non-empty)", ax.Kind())
	}
	bx, ok := vars[1].Attribute("x")
	if !ok {
		t.Fatal("b's occurrence has no attribute x")
	}
	found := false
	for _, d := range ax.DependsOn() {
		if d == bx {
			found = true
		}
	}
	if !found {
		t.Error("A.x should depend on b.x")
	}
}

// Kind is determined only by an equation's left-hand target, so a
// right-hand reference to an attribute whose defining equation appears
// later in the file must still resolve to the correct kind (the
// forward-reference case the two-pass parser exists to handle).
func TestParseResolvesForwardReferencedKind(t *testing.T) {
	text := "A->BC : y[0]=z[2]; x[1]=x[0]; x[2]=y[1]; y[2]=x[2]\n" +
		"B->a\n" +
		"B->C : y[0]=z[1]; x[1]=x[0]\n" +
		"C->b : z[0]=y[0]\n"
	g, err := parse.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// z is defined (as the left-hand target) only in "C->b : z[0]=y[0]",
	// which appears after "A->BC" already references z[2]. Every
	// occurrence of C must agree that z is Synthesized (index 0, defining
	// equation's right side is non-empty).
	for _, occ := range g.Occurrences('C') {
		z, ok := occ.Attribute("z")
		if !ok {
			t.Fatalf("C occurrence at position %d has no attribute z", occ.Position())
		}
		if z.Kind() != grammar.Synthesized {
			t.Errorf("C.z at position %d: kind = %v, want Synthesized", occ.Position(), z.Kind())
		}
	}
}

func TestParseRejectsMissingArrow(t *testing.T) {
	if _, err := parse.Parse(strings.NewReader("A b\n")); err == nil {
		t.Fatal("expected a syntax error for a line with no '->'")
	}
}

func TestParseRejectsMultiCharacterLHS(t *testing.T) {
	if _, err := parse.Parse(strings.NewReader("AB->c\n")); err == nil {
		t.Fatal("expected a syntax error for a multi-character left-hand side")
	}
}

func TestParseRejectsEquationWithoutEquals(t *testing.T) {
	if _, err := parse.Parse(strings.NewReader("A->b : x[0]\n")); err == nil {
		t.Fatal("expected a syntax error for an equation missing '='")
	}
}

func TestParseStopsAtBlankLine(t *testing.T) {
	g, err := parse.Parse(strings.NewReader("A->b\n\nC->d\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(g.AllProductions()) != 1 {
		t.Fatalf("expected parsing to stop at the blank line, got %d productions", len(g.AllProductions()))
	}
}

func TestParseIgnoresRuleTextOutsideAttributeReferences(t *testing.T) {
	// "§6: any non-attribute characters are skipped" — stray commentary
	// text around the equation must not break tokenization.
	g, err := parse.Parse(strings.NewReader("A->b : /* copy x */ x[0] = x[1] ;\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vars := g.AllProductions()[0].Variables()
	if _, ok := vars[0].Attribute("x"); !ok {
		t.Fatal("expected attribute x to be parsed despite surrounding commentary text")
	}
}
