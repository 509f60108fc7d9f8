package grammar

import "fmt"

// attributeHandle addresses an Attribute within a Grammar's arena. Handles
// are dense, Grammar-scoped indices, never a process-wide counter: the
// Design Notes of the specification call out a global ID counter as a
// hazard, so allocation is scoped to the owning *Grammar instead (see
// arena.go).
type attributeHandle int

// Kind is the three-valued tag distinguishing how an attribute is
// evaluated: inherited (computed from the production's context before its
// subtree is visited), synthesized (computed from the subtree's own
// attributes and returned to the context), or init-by-value (computed from
// a constant, with no right-hand attribute references at all).
type Kind int

const (
	Inherited Kind = iota
	Synthesized
	InitByValue
)

func (k Kind) String() string {
	switch k {
	case Inherited:
		return "inh"
	case Synthesized:
		return "syn"
	case InitByValue:
		return "val"
	default:
		return "?"
	}
}

// Attribute is one node of the per-occurrence dependence graph: the pair
// (name, index) identifies it uniquely within a production, where index is
// the position of the owning Variable (0 = left-hand side).
type Attribute struct {
	handle  attributeHandle
	name    string
	index   int
	kind    Kind
	needed  bool
	dependsOn map[attributeHandle]*Attribute
	usedFor   map[attributeHandle]*Attribute

	sameIndexPredCount int
}

func newAttribute(h attributeHandle, name string, index int, kind Kind, needed bool) *Attribute {
	return &Attribute{
		handle:    h,
		name:      name,
		index:     index,
		kind:      kind,
		needed:    needed,
		dependsOn: map[attributeHandle]*Attribute{},
		usedFor:   map[attributeHandle]*Attribute{},
	}
}

// Name returns the attribute's name, e.g. "x" in x[1].
func (a *Attribute) Name() string { return a.name }

// Index returns the position of the owning occurrence within its
// production (0 = left-hand side).
func (a *Attribute) Index() int { return a.index }

// Kind returns the attribute's declared kind, as inferred during parsing.
func (a *Attribute) Kind() Kind { return a.kind }

// EffectiveKind resolves the init-by-value/index interaction once: an
// init-by-value attribute behaves as synthesized at index 0 and as
// inherited everywhere else (it is still grouped and scheduled alongside
// attributes of that effective kind).
func (a *Attribute) EffectiveKind() Kind {
	if a.kind == InitByValue {
		if a.index == 0 {
			return Synthesized
		}
		return Inherited
	}
	return a.kind
}

// Needed reports whether any semantic rule actually references this
// attribute. Mirror-only attributes start unneeded and are swept from the
// final schedule.
func (a *Attribute) Needed() bool { return a.needed }

// DependsOn returns the attributes this one depends on (predecessors).
// Callers must not mutate the returned map.
func (a *Attribute) DependsOn() map[attributeHandle]*Attribute { return a.dependsOn }

// UsedFor returns the attributes that depend on this one (successors).
// Callers must not mutate the returned map.
func (a *Attribute) UsedFor() map[attributeHandle]*Attribute { return a.usedFor }

// SameIndexPredCount returns the cached count of predecessors whose index
// equals this attribute's index — the priority used by the Kahn-style
// grouping peel. The round-robin schedule merge does not use it; it tests
// whether depends_on is empty.
func (a *Attribute) SameIndexPredCount() int { return a.sameIndexPredCount }

// AddDependencyOn records other --> a (other is a predecessor of a) on
// both sides of the relation. Returns true if the edge did not already
// exist. If both attributes share the same index and the edge is new, the
// same-index predecessor counter is incremented.
func (a *Attribute) AddDependencyOn(other *Attribute) bool {
	_, hadDep := a.dependsOn[other.handle]
	_, hadUse := other.usedFor[a.handle]
	isNew := !hadDep || !hadUse
	a.dependsOn[other.handle] = other
	other.usedFor[a.handle] = a
	if isNew && a.index == other.index {
		a.sameIndexPredCount++
	}
	return isNew
}

// RemoveFromDependsOn removes other from a's predecessor set. Idempotent.
// If other sits at the same index, the same-index predecessor counter is
// decremented.
func (a *Attribute) RemoveFromDependsOn(other *Attribute) {
	if _, ok := a.dependsOn[other.handle]; !ok {
		return
	}
	delete(a.dependsOn, other.handle)
	if a.index == other.index {
		a.sameIndexPredCount--
	}
}

// recomputeSameIndexPredCount recounts the counter from dependsOn rather
// than trusting incremental bookkeeping. Used after cross-occurrence
// cloning, where edges are mutated on a copy rather than incrementally
// tracked (SPEC_FULL.md Open Question 2).
func (a *Attribute) recomputeSameIndexPredCount() {
	n := 0
	for _, p := range a.dependsOn {
		if p.index == a.index {
			n++
		}
	}
	a.sameIndexPredCount = n
}

func (a *Attribute) String() string {
	return fmt.Sprintf("%s%d %s", a.name, a.index, a.kind)
}

// printDependencies builds "<a> -> <b>\t<a> -> <c>..." for every outgoing
// edge of a, matching the original evaluator's per-attribute dump.
func (a *Attribute) printDependencies() string {
	if len(a.usedFor) == 0 {
		return ""
	}
	parts := make([]string, 0, len(a.usedFor))
	for _, other := range orderedByHandle(a.usedFor) {
		parts = append(parts, fmt.Sprintf("%s -> %s", a, other))
	}
	return joinTabs(parts)
}
