package main

import (
	"io"

	"github.com/attrgrammar/evalorder/grammar"
	"github.com/attrgrammar/evalorder/parse"
)

// runPipeline parses r and runs the full three-pass analysis over it.
func runPipeline(r io.Reader) (*grammar.Grammar, error) {
	g, err := parse.Parse(r)
	if err != nil {
		return nil, err
	}
	g.Analyze()
	return g, nil
}
