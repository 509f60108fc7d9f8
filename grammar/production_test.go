package grammar

import "testing"

// TestSplitToBreakCycleResolvesMutualBlockAndMirrors builds, by hand, a
// production whose two variables block each other: A.x depends on B.p, and
// B.q depends on A.x, while B.p itself has no outstanding dependency. A's
// only group and B's only group are therefore both unschedulable as a
// whole (findSchedulableHead fails for both), but B's group has a
// non-empty ready subset ({p}), so splitToBreakCycle must split it into
// {p} (schedulable immediately) and a residual {q} that becomes
// schedulable once x is. The grammar also carries a second, unrelated
// occurrence of B, whose matching group must receive the same split
// (the mirror invariant, §5) even though that occurrence is never
// scheduled itself.
func TestSplitToBreakCycleResolvesMutualBlockAndMirrors(t *testing.T) {
	vA := newVariable('A', 0)
	x := newAttribute(0, "x", 0, Synthesized, true)
	vA.appendGroup([]*Attribute{x})
	vA.resetQueue()

	vB1 := newVariable('B', 1)
	p := newAttribute(1, "p", 1, Synthesized, true)
	q := newAttribute(2, "q", 1, Synthesized, true)
	vB1.appendGroup([]*Attribute{p, q})
	vB1.resetQueue()
	origID := vB1.groups[0].id

	x.AddDependencyOn(p) // A.x depends on B.p (cross-index)
	q.AddDependencyOn(x) // B.q depends on A.x (cross-index)

	vB2 := newVariable('B', 3)
	p2 := newAttribute(3, "p", 1, Synthesized, true)
	q2 := newAttribute(4, "q", 1, Synthesized, true)
	vB2.appendGroup([]*Attribute{p2, q2})
	vB2.resetQueue()

	g := &Grammar{occurrences: map[byte][]*Variable{'B': {vB1, vB2}}}
	prod := &Production{lhs: 'A', index: 0, variables: []*Variable{vA, vB1}, grammar: g}

	prod.determineCompatibleLocalExecutionOrder()

	if !prod.Acyclic() {
		t.Fatal("expected the mutual block to be resolved by splitting, not reported cyclic")
	}
	order := prod.Order()
	if len(order) != 3 {
		t.Fatalf("expected a 3-group schedule ({B.p}, {A.x}, {B.q}), got %d: %v", len(order), order)
	}
	wantOwners := []string{"p", "x", "q"}
	for i, grp := range order {
		if len(grp.Members()) != 1 || grp.Members()[0].Name() != wantOwners[i] {
			t.Errorf("order[%d] = %v, want a single-member group named %q", i, grp, wantOwners[i])
		}
	}

	loID, hiID := splitGroupID(origID)
	if len(vB2.queue) != 2 {
		t.Fatalf("expected the mirrored occurrence's queue to also hold 2 groups after the split, got %d", len(vB2.queue))
	}
	if vB2.queue[0].id != loID || vB2.queue[1].id != hiID {
		t.Errorf("mirrored split ids = %q, %q; want %q, %q", vB2.queue[0].id, vB2.queue[1].id, loID, hiID)
	}
	if len(vB2.queue[0].Members()) != 1 || vB2.queue[0].Members()[0].Name() != "p" {
		t.Errorf("mirrored head group = %v, want a single member named p", vB2.queue[0])
	}
	if len(vB2.queue[1].Members()) != 1 || vB2.queue[1].Members()[0].Name() != "q" {
		t.Errorf("mirrored residual group = %v, want a single member named q", vB2.queue[1])
	}

	// The split must not have mutated the pristine Group object vB1.groups
	// holds, even though v.queue started as a pointer-copy of v.groups.
	if len(vB1.groups) != 1 || vB1.groups[0].id != origID {
		t.Fatalf("vB1.groups[0] was mutated by the split: id = %q, want unchanged %q", vB1.groups[0].id, origID)
	}
	if len(vB1.groups[0].Members()) != 2 {
		t.Errorf("vB1.groups[0] should still report both original members: got %v", vB1.groups[0].Members())
	}
}
