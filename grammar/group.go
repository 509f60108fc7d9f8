package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
)

// groupID is a stable cross-occurrence identity for a Group, independent
// of its current position or member count. The specification's own Design
// Notes flag the original matching rule — "same group-index and member
// count" — as fragile (two unrelated groups could coincidentally share
// both), so every Group is assigned a content-derived id when it is first
// created, and that id (not groupIndex/size) is what split/clone
// operations use to find the corresponding group at another occurrence.
type groupID string

// groupSignature is hashed (via structhash) to derive a groupID. Fields
// are exported so structhash's reflection-based hashing can see them.
type groupSignature struct {
	Nonterminal byte
	GroupIndex  int
	Members     []string
}

func newGroupID(nonterminal byte, groupIndex int, members []*Attribute) groupID {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.name
	}
	sort.Strings(names)
	sig := groupSignature{Nonterminal: nonterminal, GroupIndex: groupIndex, Members: names}
	h, err := structhash.Hash(sig, 1)
	if err != nil {
		// structhash only fails on unhashable field types; groupSignature is
		// plain data, so this is unreachable in practice. Fall back to a
		// position-based id rather than panicking on a reporting path.
		return groupID(fmt.Sprintf("%c:%d:%v", nonterminal, groupIndex, names))
	}
	return groupID(h)
}

// splitGroupID derives the two ids a split produces from a parent id: lo
// for the new head group (the ready subset, scheduled first) and hi for the
// residual that keeps waiting. Both remain stable across further splits of
// the same lineage since each derivation only ever appends a suffix.
func splitGroupID(parent groupID) (lo, hi groupID) {
	return parent + "/lo", parent + "/hi"
}

// Group is a maximal, kind-pure, ordered subset of one Variable occurrence's
// attributes: all members are mutually independent (given the attributes
// already scheduled before this group) and share one effective kind.
type Group struct {
	id      groupID
	owner   *Variable
	endPos  int
	members []*Attribute
}

// Owner returns the Variable occurrence this group belongs to.
func (g *Group) Owner() *Variable { return g.owner }

// EndPos returns the group's position in its owner's group sequence (a
// running count of attributes emitted so far). It is a label only: groups
// are matched across occurrences by their id, not by EndPos.
func (g *Group) EndPos() int { return g.endPos }

// Members returns the group's attributes in their established order.
// Callers must not mutate the returned slice.
func (g *Group) Members() []*Attribute { return g.members }

// Kind returns the effective kind shared by all members (group purity is
// an invariant maintained by construction).
func (g *Group) Kind() Kind {
	if len(g.members) == 0 {
		return Inherited
	}
	return g.members[0].EffectiveKind()
}

func (g *Group) String() string {
	parts := make([]string, len(g.members))
	for i, m := range g.members {
		parts[i] = fmt.Sprintf("%c%d.%s", g.owner.name, g.owner.position, m.name)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// removeNeeded returns a copy of g containing only members with Needed()
// true, used by the final sweep over a production's execution order.
func (g *Group) removeNeeded() *Group {
	kept := g.members[:0:0]
	for _, m := range g.members {
		if m.needed {
			kept = append(kept, m)
		}
	}
	return &Group{id: g.id, owner: g.owner, endPos: g.endPos, members: kept}
}
