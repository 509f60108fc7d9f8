package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/attrgrammar/evalorder/render"
	"github.com/attrgrammar/evalorder/rtconfig"
)

// debugTrace mirrors the active trace level: Debug runs also get a
// go-syntax dump of every production's final schedule on stderr, ahead of
// the regular rendered report.
var debugTrace bool

var rootFlags = struct {
	trace  *string
	repl   *bool
	tree   *string
	config *string
}{}

var rootCmd = &cobra.Command{
	Use:   "evalorder [demo ...]",
	Short: "Compute local attribute-evaluation orders for a grammar",
	Long: `evalorder analyzes an attribute grammar and, for each production,
computes a static local evaluation order: a schedule of attribute
evaluation steps that respects every data dependency the semantic rules
induce, valid at parse time regardless of the derivation tree shape.

With no arguments, the grammar is read from standard input (one production
per line, a blank line ends the input). Each argument names one of the
built-in demo grammars (s1..s6); an unrecognized name is skipped, and
if no argument names a demo, the grammar is read from standard input.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Info", "trace level: Debug|Info|Error")
	rootFlags.repl = rootCmd.Flags().Bool("repl", false, "start an interactive grammar REPL instead")
	rootFlags.tree = rootCmd.Flags().String("tree", "", "render a dependency tree diagram for the named nonterminal and exit")
	rootFlags.config = rootCmd.PersistentFlags().String("config", "", "path to a YAML config file (trace level, demo search path)")
}

// Execute runs the CLI, returning a non-zero-worthy error on I/O failure.
// Analytical failures (cyclic grammars) are reported, not returned as
// errors — they are a legitimate outcome of the analysis (§7).
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := rtconfig.Default()
	if *rootFlags.config != "" {
		loaded, err := rtconfig.Load(*rootFlags.config)
		if err != nil {
			return fmt.Errorf("loading config %s: %w", *rootFlags.config, err)
		}
		cfg = loaded
	}

	traceLevel := *rootFlags.trace
	if !cmd.Flags().Changed("trace") {
		traceLevel = cfg.TraceLevel
	}
	rtconfig.InitLogging(traceLevel)
	debugTrace = strings.EqualFold(traceLevel, "Debug")

	if *rootFlags.repl {
		return runREPL()
	}

	if len(args) == 0 {
		return analyzeAndReport(os.Stdin, "stdin")
	}

	ran := false
	for _, name := range args {
		text, ok := demoText(cfg, name)
		if !ok {
			continue
		}
		ran = true
		pterm.DefaultSection.Println("demo " + name)
		if err := analyzeAndReport(strings.NewReader(text), name); err != nil {
			return err
		}
	}
	if !ran {
		return analyzeAndReport(os.Stdin, "stdin")
	}
	return nil
}

// demoText resolves a demo name to its grammar text, preferring a file
// under cfg.DemoPath (so a deployment can add or override demos without
// a rebuild) and falling back to the built-in set.
func demoText(cfg *rtconfig.Config, name string) (string, bool) {
	if cfg.DemoPath != "" {
		data, err := os.ReadFile(filepath.Join(cfg.DemoPath, name+".ag"))
		if err == nil {
			return string(data), true
		}
	}
	text, ok := demos[strings.ToLower(name)]
	return text, ok
}

func analyzeAndReport(r io.Reader, source string) error {
	g, err := runPipeline(r)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	if debugTrace {
		for _, p := range g.AllProductions() {
			fmt.Fprintf(os.Stderr, "%c%d %c -> %s: %# v\n", p.LHS(), p.Index(), p.LHS(), string(p.Symbols()), pretty.Formatter(p.Order()))
		}
	}
	if *rootFlags.tree != "" {
		return render.DependencyTree(g, (*rootFlags.tree)[0])
	}
	render.Report(g)
	return nil
}
