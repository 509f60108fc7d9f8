package grammar

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
)

// Variable is one occurrence of a (non-)terminal within a production,
// identified by (name, position) where position is the 0-based location
// in the owning production's symbol sequence (0 = left-hand side).
type Variable struct {
	name     byte
	position int

	attributes map[string]*Attribute
	groups     []*Group // the pristine per-occurrence partition; never mutated after ComputeAttributeGroups
	queue      []*Group // working copy consumed by the production merge; see resetQueue
	emitted    int      // running count of attributes emitted into groups so far

	cyclic bool

	production *Production
}

func newVariable(name byte, position int) *Variable {
	return &Variable{
		name:       name,
		position:   position,
		attributes: map[string]*Attribute{},
	}
}

// Name returns the nonterminal identifier of this occurrence.
func (v *Variable) Name() byte { return v.name }

// Position returns the 0-based location within the owning production.
func (v *Variable) Position() int { return v.position }

// Attribute looks up one of this occurrence's attributes by name.
func (v *Variable) Attribute(name string) (*Attribute, bool) {
	a, ok := v.attributes[name]
	return a, ok
}

// Attributes returns a deterministically ordered snapshot of this
// occurrence's attributes.
func (v *Variable) Attributes() []*Attribute {
	m := make(map[attributeHandle]*Attribute, len(v.attributes))
	for _, a := range v.attributes {
		m[a.handle] = a
	}
	return orderedByHandle(m)
}

// Cyclic reports whether this occurrence's nonterminal was found to
// contain an intra-nonterminal dependency cycle during grouping.
func (v *Variable) Cyclic() bool { return v.cyclic }

// Groups returns the group sequence computed (or cloned) for this
// occurrence. Callers must not mutate the returned slice.
func (v *Variable) Groups() []*Group { return v.groups }

func (v *Variable) markCyclic() { v.cyclic = true }

// resetQueue seeds the scheduling queue from the pristine group partition.
// Called once per occurrence after grouping (createGroups/cloneGroups) is
// complete and before any production merge consumes it, so that Groups()
// keeps reporting the original partition after scheduling has drained the
// queue to empty.
func (v *Variable) resetQueue() {
	v.queue = append([]*Group(nil), v.groups...)
}

func (v *Variable) headGroup() (*Group, bool) {
	if len(v.queue) == 0 {
		return nil, false
	}
	return v.queue[0], true
}

func (v *Variable) popHeadGroup() *Group {
	g := v.queue[0]
	v.queue = v.queue[1:]
	return g
}

func (v *Variable) pushFrontGroup(g *Group) {
	v.queue = append([]*Group{g}, v.queue...)
}

// appendGroup wraps members into a new Group with a monotonically
// increasing end-position and a content-derived, stable id, and appends it
// to this occurrence's group sequence.
func (v *Variable) appendGroup(members []*Attribute) {
	if len(members) == 0 {
		return
	}
	v.emitted += len(members)
	g := &Group{
		id:      newGroupID(v.name, v.emitted, members),
		owner:   v,
		endPos:  v.emitted,
		members: members,
	}
	v.groups = append(v.groups, g)
}

// --- grouping (Kahn-style peel over same-index dependencies) --------------

type prioNode struct {
	attr     *Attribute
	priority int
}

func prioCompare(a, b interface{}) int {
	na, nb := a.(prioNode), b.(prioNode)
	if na.priority != nb.priority {
		return na.priority - nb.priority
	}
	if na.attr.name != nb.attr.name {
		if na.attr.name < nb.attr.name {
			return -1
		}
		return 1
	}
	return 0
}

// createGroups partitions this occurrence's attributes into an alternating
// sequence of inherited/synthesized groups, peeling off attributes whose
// same-index predecessor count has reached zero, alternating between the
// inherited and synthesized queues. Returns false (and marks this
// occurrence cyclic) if neither queue can make progress while either of
// them still holds attributes.
func (v *Variable) createGroups() bool {
	inh := priorityqueue.NewWith(prioCompare)
	syn := priorityqueue.NewWith(prioCompare)

	for _, a := range v.Attributes() {
		node := prioNode{attr: a, priority: a.sameIndexPredCount}
		if a.EffectiveKind() == Inherited {
			inh.Enqueue(node)
		} else {
			syn.Enqueue(node)
		}
	}

	visited := map[attributeHandle]bool{}
	for !inh.Empty() || !syn.Empty() {
		inhGroup := drainReady(inh, inh, syn, visited)
		v.appendGroup(inhGroup)
		synGroup := drainReady(syn, inh, syn, visited)
		v.appendGroup(synGroup)
		if len(inhGroup) == 0 && len(synGroup) == 0 && (!inh.Empty() || !syn.Empty()) {
			v.cyclic = true
			return false
		}
	}
	return true
}

// drainReady pops every attribute at the front of from whose live
// same-index predecessor count is zero, skipping duplicates already
// emitted via a different (stale) queue entry, and then propagates the
// consumption of those attributes' same-index successors by decrementing
// their counters and re-enqueuing them at their new priority.
func drainReady(from, inh, syn *priorityqueue.Queue, visited map[attributeHandle]bool) []*Attribute {
	var subset []*Attribute
	for {
		top, ok := from.Peek()
		if !ok {
			break
		}
		node := top.(prioNode)
		if node.attr.sameIndexPredCount != 0 {
			break
		}
		from.Dequeue()
		if !visited[node.attr.handle] {
			visited[node.attr.handle] = true
			subset = append(subset, node.attr)
		}
	}
	for _, a := range subset {
		for _, other := range orderedByHandle(a.usedFor) {
			if other.index != a.index {
				continue
			}
			other.RemoveFromDependsOn(a)
			node := prioNode{attr: other, priority: other.sameIndexPredCount}
			if other.EffectiveKind() == Inherited {
				inh.Enqueue(node)
			} else {
				syn.Enqueue(node)
			}
		}
	}
	return subset
}
