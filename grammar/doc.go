/*
Package grammar implements the core attribute-grammar analysis: Attribute,
Variable (one nonterminal occurrence within a production), Production and
Grammar, together with the three passes that derive a static local
evaluation order for every production:

 1. ComputeTransitiveClosure projects dependencies across shared
    nonterminal occurrences until the per-production graphs are stable.
 2. ComputeAttributeGroups partitions each nonterminal's attributes into an
    alternating sequence of inherited/synthesized groups.
 3. DetermineLocalExecutionOrders merges the group sequences of all
    occurrences in a production into one synchronized schedule, splitting
    groups to break non-fatal inter-group cycles.

All three passes mutate a shared dependence graph under the invariants
described in the project's specification: dependencies are mirrored across
every occurrence of a nonterminal, and group order established at one
occurrence is respected at every other occurrence.

----------------------------------------------------------------------

BSD License

Copyright (c) 2024, The evalorder Authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalorder.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("evalorder.grammar")
}
