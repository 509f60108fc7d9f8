// Package rtconfig bootstraps the ambient concerns shared by the CLI and
// the test suite: trace-level logging (via schuko) and the optional YAML
// configuration file.
package rtconfig

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Tracer returns the shared trace sink. Packages that don't warrant their
// own dotted trace key (parse, render, cmd) log through this one; grammar
// uses its own ("evalorder.grammar") selected via tracing.Select.
func Tracer() tracing.Trace {
	return tracing.Select("evalorder")
}

// InitLogging wires gtrace.SyntaxTracer to a console adapter and sets the
// trace level from a CLI flag value ("Debug"|"Info"|"Error"). Call once
// from cmd/evalorder's root command before running any analysis.
func InitLogging(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	Tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
}
