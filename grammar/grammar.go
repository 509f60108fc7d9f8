package grammar

import (
	"fmt"

	"github.com/google/uuid"
)

// Grammar is the top-level container: productions grouped by left-hand
// nonterminal, and every Variable occurrence grouped by nonterminal
// identifier, in first-seen order on both axes so that dumps are
// reproducible from a given input regardless of Go's map iteration order.
type Grammar struct {
	runID uuid.UUID

	arena arena

	lhsOrder    []byte
	productions map[byte][]*Production

	nameOrder   []byte
	occurrences map[byte][]*Variable

	signatures map[byte]map[string]Kind
}

// New returns an empty Grammar ready to be populated by a parser.
func New() *Grammar {
	return &Grammar{
		runID:       uuid.New(),
		productions: map[byte][]*Production{},
		occurrences: map[byte][]*Variable{},
	}
}

// RunID identifies this analysis run, for correlating log lines emitted
// across the three passes.
func (g *Grammar) RunID() uuid.UUID { return g.runID }

// AddProduction registers a new production lhs -> rhs and returns it. Every
// symbol position, including the LHS, becomes a Variable occurrence
// registered in the grammar's occurrences index.
func (g *Grammar) AddProduction(lhs byte, rhs []byte) *Production {
	p := &Production{lhs: lhs, grammar: g, acyclic: true}
	p.variables = append(p.variables, g.registerOccurrence(lhs, 0, p))
	for i, sym := range rhs {
		p.variables = append(p.variables, g.registerOccurrence(sym, i+1, p))
	}
	if _, ok := g.productions[lhs]; !ok {
		g.lhsOrder = append(g.lhsOrder, lhs)
	}
	p.index = len(g.productions[lhs])
	g.productions[lhs] = append(g.productions[lhs], p)
	return p
}

func (g *Grammar) registerOccurrence(name byte, position int, p *Production) *Variable {
	v := newVariable(name, position)
	v.production = p
	for attrName, kind := range g.signatures[name] {
		v.attributes[attrName] = g.arena.alloc(attrName, position, kind, false)
	}
	if _, ok := g.occurrences[name]; !ok {
		g.nameOrder = append(g.nameOrder, name)
	}
	g.occurrences[name] = append(g.occurrences[name], v)
	return v
}

// SeedSignatures installs the grammar-wide map of nonterminal -> attribute
// name -> kind that the parser pre-computes (by scanning every equation's
// left-hand target before creating any node) so that forward references —
// a right-hand attribute mentioned before the production that defines it
// has been parsed — still resolve to the correct kind. Must be called
// before any AddProduction, since registerOccurrence uses it to
// pre-populate every new occurrence's attribute set.
func (g *Grammar) SeedSignatures(sig map[byte]map[string]Kind) {
	g.signatures = sig
}

// EnsureAttribute returns v's attribute named name, creating it (with the
// given kind and needed flag) if absent. Creation also mirrors a fresh,
// not-needed attribute of the same name and kind onto every other
// occurrence of v's nonterminal that doesn't already have one, satisfying
// the mirror invariant at the point of creation rather than after the
// fact. If the attribute already exists, needed is OR'd into its flag and
// its kind is left untouched (kind is fixed at first mention).
func (g *Grammar) EnsureAttribute(v *Variable, name string, kind Kind, needed bool) *Attribute {
	if a, ok := v.Attribute(name); ok {
		if needed {
			a.needed = true
		}
		return a
	}
	a := g.arena.alloc(name, v.position, kind, needed)
	v.attributes[name] = a
	for _, vj := range g.occurrences[v.name] {
		if vj == v {
			continue
		}
		if _, exists := vj.Attribute(name); !exists {
			vj.attributes[name] = g.arena.alloc(name, vj.position, kind, false)
		}
	}
	return a
}

// Productions returns, in first-seen order, the productions sharing lhs.
func (g *Grammar) Productions(lhs byte) []*Production { return g.productions[lhs] }

// LHSOrder returns every left-hand nonterminal in first-seen order.
func (g *Grammar) LHSOrder() []byte { return g.lhsOrder }

// AllProductions returns every production, grouped by LHS in first-seen
// order and, within a group, in declaration order.
func (g *Grammar) AllProductions() []*Production {
	var all []*Production
	for _, lhs := range g.lhsOrder {
		all = append(all, g.productions[lhs]...)
	}
	return all
}

// Occurrences returns every Variable occurrence of nonterminal name, in
// first-seen order.
func (g *Grammar) Occurrences(name byte) []*Variable { return g.occurrences[name] }

// NameOrder returns every nonterminal identifier that has at least one
// occurrence, in first-seen order.
func (g *Grammar) NameOrder() []byte { return g.nameOrder }

// ComputeTransitiveClosure repeatedly runs findProjections over every
// production until a full pass introduces no new edge (§4.3).
func (g *Grammar) ComputeTransitiveClosure() {
	for {
		changed := false
		for _, p := range g.AllProductions() {
			if p.findProjections() {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// ComputeAttributeGroups runs create_groups on one representative
// occurrence per nonterminal and clones the result onto every other
// occurrence (§4.2). A cyclic representative marks every occurrence of
// that nonterminal cyclic and skips cloning.
func (g *Grammar) ComputeAttributeGroups() {
	for _, name := range g.nameOrder {
		occs := g.occurrences[name]
		if len(occs) == 0 {
			continue
		}
		representative := occs[0]
		if !representative.createGroups() {
			for _, v := range occs {
				v.markCyclic()
			}
			continue
		}
		for _, v := range occs[1:] {
			cloneGroups(representative, v)
		}
		for _, v := range occs {
			v.resetQueue()
		}
	}
}

// cloneGroups builds, at dst, a group sequence mirroring src's, consuming
// the matching same-index edges at dst and dropping members that are not
// needed at dst specifically (needed-ness is per-occurrence).
func cloneGroups(src, dst *Variable) {
	for _, g := range src.groups {
		var members []*Attribute
		for _, a := range g.members {
			ap, ok := dst.Attribute(a.name)
			if !ok {
				continue
			}
			for _, c := range orderedByHandle(ap.usedFor) {
				if c.index == ap.index {
					c.RemoveFromDependsOn(ap)
					c.recomputeSameIndexPredCount()
				}
			}
			if ap.needed {
				members = append(members, ap)
			}
		}
		dst.groups = append(dst.groups, &Group{id: g.id, owner: dst, endPos: g.endPos, members: members})
	}
}

// DetermineLocalExecutionOrders runs the synchronized schedule merge (§4.3)
// over every production.
func (g *Grammar) DetermineLocalExecutionOrders() {
	for _, p := range g.AllProductions() {
		p.determineCompatibleLocalExecutionOrder()
	}
}

// Analyze runs the full three-pass pipeline in order.
func (g *Grammar) Analyze() {
	g.ComputeTransitiveClosure()
	g.ComputeAttributeGroups()
	g.DetermineLocalExecutionOrders()
}

// CyclicErrors collects one *CyclicError per cyclic nonterminal and per
// production whose schedule merge failed, in nameOrder/lhsOrder. The
// analysis never aborts on these; they are reported findings, not faults
// (§7), surfaced here so a caller can list them without re-deriving the
// same scan over Occurrences/AllProductions.
func (g *Grammar) CyclicErrors() []*CyclicError {
	var errs []*CyclicError
	for _, name := range g.nameOrder {
		occs := g.occurrences[name]
		if len(occs) > 0 && occs[0].Cyclic() {
			errs = append(errs, &CyclicError{Kind: NonterminalCycle, Nonterminal: name})
		}
	}
	for _, p := range g.AllProductions() {
		if !p.Acyclic() {
			label := fmt.Sprintf("%c%d", p.lhs, p.index)
			errs = append(errs, &CyclicError{Kind: InterGroupCycle, Production: label})
		}
	}
	return errs
}
