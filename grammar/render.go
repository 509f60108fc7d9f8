package grammar

import (
	"fmt"
	"strings"
)

// DependencyDump renders the "for every production, for every Variable"
// edge listing (§6): one line per occurrence, tab-joining every one of its
// attributes' outgoing dependency edges, prefixed by its owning
// nonterminal identifier. The exact formatting is a contract that tests
// compare against exact expected strings.
func (g *Grammar) DependencyDump() string {
	var lines []string
	for _, p := range g.AllProductions() {
		for _, v := range p.Variables() {
			var edges []string
			for _, a := range v.Attributes() {
				if e := a.printDependencies(); e != "" {
					edges = append(edges, e)
				}
			}
			if len(edges) > 0 {
				lines = append(lines, fmt.Sprintf("%c: %s", v.Name(), strings.Join(edges, "\t")))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// ExecutionOrderDump renders one line per production: its label, its
// symbol sequence, its scheduled group list, and its cycle-free flag (§6).
func (g *Grammar) ExecutionOrderDump() string {
	var lines []string
	for _, p := range g.AllProductions() {
		lines = append(lines, fmt.Sprintf("Production %c%d: %c -> %s\t\t%s cycle-free: %t",
			p.lhs, p.index, p.lhs, string(p.Symbols()), groupListString(p.Order()), p.Acyclic()))
	}
	return strings.Join(lines, "\n")
}

// GroupsDump renders, for every nonterminal, the group sequence of its
// representative (first-seen) occurrence (§6).
func (g *Grammar) GroupsDump() string {
	var lines []string
	for _, name := range g.nameOrder {
		occs := g.occurrences[name]
		if len(occs) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%c: %s", name, groupListString(occs[0].Groups())))
	}
	return strings.Join(lines, "\n")
}

func groupListString(groups []*Group) string {
	parts := make([]string, len(groups))
	for i, gr := range groups {
		parts[i] = gr.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
