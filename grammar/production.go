package grammar

import (
	"github.com/mpvl/unique"
)

// Production is one grammar rule: a fixed-size ordered list of Variable
// occurrences, position 0 is the left-hand side, positions 1..n are the
// right-hand side symbols in order.
type Production struct {
	lhs   byte
	index int // ordinal among productions sharing this LHS (for dump labels)

	variables []*Variable

	order   []*Group
	acyclic bool

	grammar *Grammar
}

// LHS returns the production's left-hand nonterminal.
func (p *Production) LHS() byte { return p.lhs }

// Index returns this production's ordinal among productions sharing its LHS.
func (p *Production) Index() int { return p.index }

// Variables returns the production's occurrence list, LHS first.
func (p *Production) Variables() []*Variable { return p.variables }

// Symbols returns the RHS symbol sequence (excluding the LHS).
func (p *Production) Symbols() []byte {
	syms := make([]byte, 0, len(p.variables)-1)
	for _, v := range p.variables[1:] {
		syms = append(syms, v.name)
	}
	return syms
}

// Acyclic reports whether a complete, schedulable execution order was
// produced for this production.
func (p *Production) Acyclic() bool { return p.acyclic }

// Order returns the production's final local execution order. Empty when
// the production was found cyclic.
func (p *Production) Order() []*Group { return p.order }

// findProjections materializes, for every Variable of this production,
// the transitive-closure projections implied by paths that leave and
// re-enter the same occurrence (see the specification's §4.3 path rule),
// and mirrors each discovered dependency onto every other occurrence of
// the same nonterminal across the grammar. Returns whether any new edge
// was introduced.
func (p *Production) findProjections() bool {
	changed := false
	for _, v := range p.variables {
		for _, a := range v.Attributes() {
			targets := findPathsToIndex(a, a.index, true)
			for _, b := range targets {
				if b.AddDependencyOn(a) {
					changed = true
				}
				if p.mirrorEdge(v, a, b) {
					changed = true
				}
			}
		}
	}
	return changed
}

// mirrorEdge propagates the dependency b.AddDependencyOn(a), established at
// occurrence v, onto every other occurrence of v's nonterminal: the
// corresponding attributes (matched by name) there also gain the edge.
func (p *Production) mirrorEdge(v *Variable, a, b *Attribute) bool {
	if p.grammar == nil {
		return false
	}
	changed := false
	for _, vj := range p.grammar.occurrences[v.name] {
		if vj == v {
			continue
		}
		aj, ok := vj.Attribute(a.name)
		if !ok {
			continue
		}
		bj, ok := vj.Attribute(b.name)
		if !ok {
			continue
		}
		if bj.AddDependencyOn(aj) {
			changed = true
		}
	}
	return changed
}

// determineCompatibleLocalExecutionOrder merges the per-occurrence group
// sequences of this production's variables into one total order consistent
// with inter-occurrence dependencies, splitting groups to break non-fatal
// inter-group cycles, and finally sweeps unneeded attributes and empty
// groups from the result.
func (p *Production) determineCompatibleLocalExecutionOrder() {
	remaining := 0
	for _, v := range p.variables {
		if v.Cyclic() {
			p.acyclic = false
			p.order = nil
			return
		}
		remaining += len(v.queue)
	}

	lastScheduled := -1
	for remaining > 0 {
		idx, g, ok := p.findSchedulableHead(lastScheduled)
		if ok {
			v := p.variables[idx]
			v.popHeadGroup()
			for _, a := range g.members {
				for _, c := range orderedByHandle(a.usedFor) {
					if c.index != a.index {
						c.RemoveFromDependsOn(a)
					}
				}
			}
			p.order = append(p.order, g)
			remaining--
			lastScheduled = idx
			continue
		}
		if p.splitToBreakCycle() {
			remaining++
			continue
		}
		p.acyclic = false
		p.order = nil
		return
	}

	p.acyclic = true
	p.order = p.removeNotNeededAttributes(p.order)
}

// findSchedulableHead scans variables round-robin starting one past
// lastScheduled, returning the first variable whose head group's members
// all have an empty depends_on set.
func (p *Production) findSchedulableHead(lastScheduled int) (int, *Group, bool) {
	n := len(p.variables)
	start := (lastScheduled + 1) % n
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		v := p.variables[idx]
		g, ok := v.headGroup()
		if !ok {
			continue
		}
		schedulable := true
		for _, a := range g.members {
			if len(a.dependsOn) > 0 {
				schedulable = false
				break
			}
		}
		if schedulable {
			return idx, g, true
		}
	}
	return 0, nil, false
}

// splitToBreakCycle finds a variable whose head group has a non-empty
// ready subset R (members with empty depends_on), splits that group into R
// (new head) and the residual, and propagates the same split onto every
// other occurrence of the same nonterminal by attribute name. Returns
// whether a split was made.
//
// A split never mutates the *Group it starts from in place: that object is
// still the one v.groups holds (queue is seeded from groups by identity,
// not by copy — see resetQueue), and groups must go on reporting the
// pristine partition after Analyze completes. The residual is therefore a
// freshly allocated Group that replaces the original in v.queue, leaving
// v.groups' member slice and id untouched.
func (p *Production) splitToBreakCycle() bool {
	for _, v := range p.variables {
		g, ok := v.headGroup()
		if !ok {
			continue
		}
		var ready, residual []*Attribute
		for _, a := range g.members {
			if len(a.dependsOn) == 0 {
				ready = append(ready, a)
			} else {
				residual = append(residual, a)
			}
		}
		if len(ready) == 0 {
			continue
		}

		origID := g.id
		origEnd := g.endPos
		loID, hiID := splitGroupID(origID)

		v.queue[0] = &Group{id: hiID, owner: v, endPos: origEnd, members: residual}
		newHead := &Group{id: loID, owner: v, endPos: origEnd - len(residual), members: ready}
		v.pushFrontGroup(newHead)

		if p.grammar != nil {
			for _, vj := range p.grammar.occurrences[v.name] {
				if vj == v {
					continue
				}
				p.splitMirror(vj, origID, ready, loID, hiID)
			}
		}
		return true
	}
	return false
}

// splitMirror locates, at occurrence vj, the group matching origID (either
// still queued or already emitted into vj's owning production's execution
// order) and splits it by attribute name the same way the triggering
// occurrence's group was split, by replacing it with two freshly allocated
// groups rather than mutating the matched Group object in place (see
// splitToBreakCycle).
func (p *Production) splitMirror(vj *Variable, origID groupID, ready []*Attribute, loID, hiID groupID) {
	if _, idx, ok := findGroupByID(vj.queue, origID); ok {
		gj := vj.queue[idx]
		extracted := cloneByName(gj, ready)
		rest := residualByName(gj, ready)
		vj.queue[idx] = &Group{id: hiID, owner: vj, endPos: gj.endPos, members: rest}
		newHead := &Group{id: loID, owner: vj, endPos: gj.endPos - len(rest), members: extracted}
		vj.queue = insertGroup(vj.queue, idx, newHead)
		return
	}
	if vj.production != nil {
		if _, idx, ok := findGroupByID(vj.production.order, origID); ok {
			gj := vj.production.order[idx]
			extracted := cloneByName(gj, ready)
			rest := residualByName(gj, ready)
			vj.production.order[idx] = &Group{id: hiID, owner: vj, endPos: gj.endPos, members: rest}
			newHead := &Group{id: loID, owner: vj, endPos: gj.endPos - len(rest), members: extracted}
			vj.production.order = insertGroup(vj.production.order, idx, newHead)
		}
	}
}

func findGroupByID(list []*Group, id groupID) ([]*Group, int, bool) {
	for i, g := range list {
		if g.id == id {
			return list, i, true
		}
	}
	return nil, 0, false
}

// cloneByName extracts, from gj.members, the attributes sharing a name with
// one of ready, in ready's order.
func cloneByName(gj *Group, ready []*Attribute) []*Attribute {
	out := make([]*Attribute, 0, len(ready))
	for _, want := range ready {
		for _, m := range gj.members {
			if m.name == want.name {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// residualByName returns gj's members that do not share a name with any of
// ready, without mutating gj — gj may still be the object v.groups holds.
func residualByName(gj *Group, ready []*Attribute) []*Attribute {
	names := make(map[string]bool, len(ready))
	for _, a := range ready {
		names[a.name] = true
	}
	out := make([]*Attribute, 0, len(gj.members))
	for _, m := range gj.members {
		if !names[m.name] {
			out = append(out, m)
		}
	}
	return out
}

func insertGroup(list []*Group, idx int, g *Group) []*Group {
	out := make([]*Group, 0, len(list)+1)
	out = append(out, list[:idx]...)
	out = append(out, g)
	out = append(out, list[idx:]...)
	return out
}

// removeNotNeededAttributes sweeps order, dropping non-needed attributes
// from every group and then dropping any group left empty.
func (p *Production) removeNotNeededAttributes(order []*Group) []*Group {
	dropped := map[string]bool{}
	swept := make([]*Group, 0, len(order))
	for _, g := range order {
		g2 := g.removeNeeded()
		for _, m := range g.members {
			if !m.needed {
				dropped[m.name] = true
			}
		}
		if len(g2.members) > 0 {
			swept = append(swept, g2)
		}
	}
	if len(dropped) > 0 {
		runID := ""
		if p.grammar != nil {
			runID = p.grammar.runID.String()
		}
		tracer().Infof("run %s: production %c%d: dropped unneeded attributes %v", runID, p.lhs, p.index, uniqueNames(dropped))
	}
	return swept
}

// uniqueNames returns the keys of set sorted and deduplicated.
func uniqueNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	unique.Sort(unique.StringSlice{P: &names})
	return names
}
