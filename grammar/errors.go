package grammar

import "fmt"

// CyclicKind distinguishes the two failure modes the analysis reports
// instead of raising: a same-nonterminal dependency cycle found while
// grouping, and an inter-group cycle found while merging a production's
// schedule.
type CyclicKind int

const (
	// NonterminalCycle marks a nonterminal whose occurrences could not be
	// partitioned into groups because no attribute ever reaches a
	// same-index predecessor count of zero.
	NonterminalCycle CyclicKind = iota
	// InterGroupCycle marks a production for which no execution order was
	// produced: either one of its occurrences belongs to a cyclic
	// nonterminal, or neither head-group selection nor splitting could make
	// progress while merging its group sequences.
	InterGroupCycle
)

func (k CyclicKind) String() string {
	if k == NonterminalCycle {
		return "cyclic nonterminal"
	}
	return "inter-group cycle"
}

// CyclicError describes an analytical failure. It is returned as a value
// alongside a partial result, never used to abort the pipeline: a cyclic
// grammar is a legitimate outcome (§7).
type CyclicError struct {
	Kind        CyclicKind
	Nonterminal byte
	Production  string
}

func (e *CyclicError) Error() string {
	if e.Kind == NonterminalCycle {
		return fmt.Sprintf("%s: nonterminal %q has a same-index dependency cycle", e.Kind, e.Nonterminal)
	}
	return fmt.Sprintf("%s: production %s has no schedulable head group and cannot be split further", e.Kind, e.Production)
}
