package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

// runREPL starts an interactive session: each line is treated as one
// grammar-input line, accumulated until a blank line, at which point the
// accumulated production block is analyzed and reported, mirroring the
// standard-input pipeline one block at a time.
func runREPL() error {
	pterm.Info.Println("evalorder REPL — enter grammar lines, blank line to analyze, Ctrl-D to quit")
	repl, err := readline.New("evalorder> ")
	if err != nil {
		return err
	}
	defer repl.Close()

	var block []string
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on Ctrl-D
			break
		}
		if strings.TrimSpace(line) == "" {
			if len(block) == 0 {
				continue
			}
			if err := analyzeAndReport(strings.NewReader(strings.Join(block, "\n")+"\n"), "repl"); err != nil {
				pterm.Error.Println(err.Error())
			}
			block = nil
			continue
		}
		block = append(block, line)
	}
	pterm.Info.Println("goodbye")
	return nil
}
