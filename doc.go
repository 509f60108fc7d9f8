/*
Package evalorder analyzes an attribute grammar and, for every production,
derives a static local evaluation order: a sequence of attribute-evaluation
steps that respects all data dependencies induced by the grammar's semantic
rules and can be executed at parse time, independent of the concrete
derivation tree a parser eventually builds.

Package structure is as follows:

■ grammar: the analysis core — Attribute, Variable (nonterminal occurrence),
Production and Grammar, together with the three passes (transitive-closure
projection, attribute grouping, synchronized schedule construction).

■ parse: reads the line-oriented textual grammar format into a
grammar.Grammar.

■ render: human-facing textual and diagram output.

■ rtconfig: ambient configuration and logging bootstrap shared by the CLI
and the test suite.

The base package contains the small source-position type Pos; the other
packages do not import it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2024, The evalorder Authors
*/
package evalorder
