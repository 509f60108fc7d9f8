package render

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/attrgrammar/evalorder/grammar"
)

// DependencyTree renders nonterminal name's representative occurrence as a
// tree: one branch per group in its schedule, one leaf per attribute in
// the group. This re-expresses what the original evaluator rendered as a
// LaTeX/TikZ figure, as a CLI-appropriate tree instead (see DESIGN.md).
func DependencyTree(g *grammar.Grammar, name byte) error {
	occs := g.Occurrences(name)
	if len(occs) == 0 {
		return fmt.Errorf("no occurrences of nonterminal %q", name)
	}
	v := occs[0]
	root := pterm.TreeNode{
		Text: fmt.Sprintf("%c (%d occurrence(s))", name, len(occs)),
	}
	for i, grp := range v.Groups() {
		branch := pterm.TreeNode{
			Text: fmt.Sprintf("group %d [%s]", i, grp.Kind()),
		}
		for _, a := range grp.Members() {
			branch.Children = append(branch.Children, pterm.TreeNode{
				Text: a.String(),
			})
		}
		root.Children = append(root.Children, branch)
	}
	return pterm.DefaultTree.WithRoot(root).Render()
}
