// Package render formats a *grammar.Grammar for a terminal: colored
// section headers around the exact-format dumps grammar.Grammar itself
// produces, plus a tree diagram of one nonterminal's attribute
// dependencies. None of this output is a golden-file contract — that
// contract lives on grammar.Grammar's own Dump methods; this package only
// dresses them up for a human reading a terminal.
package render

import (
	"github.com/pterm/pterm"

	"github.com/attrgrammar/evalorder/grammar"
)

// Report prints the three textual contracts from §6, each under a colored
// section header, to the terminal.
func Report(g *grammar.Grammar) {
	pterm.DefaultSection.Println("Dependencies")
	pterm.Println(g.DependencyDump())

	pterm.DefaultSection.Println("Local execution orders")
	pterm.Println(g.ExecutionOrderDump())

	pterm.DefaultSection.Println("Attribute groups")
	pterm.Println(g.GroupsDump())

	if errs := g.CyclicErrors(); len(errs) > 0 {
		for _, e := range errs {
			pterm.Warning.Println(e.Error())
		}
	} else {
		pterm.Success.Println("Every production admits a local execution order")
	}
}
