package grammar

import "github.com/emirpasic/gods/sets/hashset"

// findPathsToIndex performs a DFS from start over the usedFor edges,
// looking for every attribute reachable at the given target index. The
// first attribute at that index found along any given branch is recorded
// and that branch stops there (paths are explored independently, not
// merged into a tree, so the same target may be found via more than one
// branch and will be appended once per branch).
//
// skipSelfFirst, when true, means start itself does not terminate the
// search even if start.index already equals targetIndex — used when
// looking for a path back to the very occurrence the search originates
// from (a same-nonterminal self-loop would otherwise trivially "find" the
// start node with a zero-length path).
//
// Visitation state is local to this call (per the specification's
// traversal discipline: visited flags must never live on the shared graph
// nodes), so concurrent or repeated traversals over the same graph never
// interfere with each other.
func findPathsToIndex(start *Attribute, targetIndex int, skipSelfFirst bool) []*Attribute {
	visited := hashset.New()
	var result []*Attribute

	var dfs func(a *Attribute, skip bool)
	dfs = func(a *Attribute, skip bool) {
		if a.index == targetIndex && !skip {
			result = append(result, a)
			return
		}
		visited.Add(a.handle)
		for _, next := range orderedByHandle(a.usedFor) {
			if !visited.Contains(next.handle) {
				dfs(next, false)
			}
		}
		visited.Remove(a.handle)
	}
	dfs(start, skipSelfFirst)
	return result
}
