package grammar

import (
	"sort"
	"strings"
)

// orderedByHandle returns the attributes of m in a deterministic order
// (by index, then name) so that dumps and schedules do not depend on Go's
// randomized map iteration order.
func orderedByHandle(m map[attributeHandle]*Attribute) []*Attribute {
	out := make([]*Attribute, 0, len(m))
	for _, a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].index != out[j].index {
			return out[i].index < out[j].index
		}
		return out[i].name < out[j].name
	})
	return out
}

func joinTabs(parts []string) string {
	return strings.Join(parts, "\t")
}
