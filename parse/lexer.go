package parse

import (
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/attrgrammar/evalorder/rtconfig"
)

// tokKind tags the tokens extracted from the rule part of a grammar-input
// line (the text following ':'). The production-head/body part (before
// ':') is not tokenized here: the specification defines it as a bare
// sequence of single visible characters, which the line scanner in
// parser.go reads directly.
type tokKind int

const (
	tokIdent tokKind = iota
	tokNumber
	tokLBrack
	tokRBrack
	tokEquals
	tokSemi
)

type tok struct {
	kind tokKind
	text string
}

var (
	lexOnce sync.Once
	lex     *lexmachine.Lexer
	lexErr  error
)

// ruleLexer lazily compiles the DFA for rule-text tokens. Compilation is
// expensive and the grammar rule vocabulary never changes at runtime, so
// one compiled lexer is shared across every parse.
func ruleLexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		l := lexmachine.NewLexer()
		add := func(pattern string, kind tokKind) {
			l.Add([]byte(pattern), makeTok(kind))
		}
		add(`[A-Za-z_][A-Za-z0-9_]*`, tokIdent)
		add(`[0-9]+`, tokNumber)
		add(`\[`, tokLBrack)
		add(`\]`, tokRBrack)
		add(`=`, tokEquals)
		add(`;`, tokSemi)
		l.Add([]byte(` |\t|\n|\r`), skipAction)
		// The rule's right-hand side may contain any non-attribute
		// characters (§6); anything not matched above is a single
		// skipped byte rather than a lexical error.
		l.Add([]byte(`.`), skipAction)
		if err := l.Compile(); err != nil {
			rtconfig.Tracer().Errorf("parse: compiling rule lexer: %v", err)
			lexErr = err
			return
		}
		lex = l
	})
	return lex, lexErr
}

func makeTok(kind tokKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return &tok{kind: kind, text: string(m.Bytes)}, nil
	}
}

func skipAction(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// tokenizeRule tokenizes the rule portion of a production line, i.e.
// everything after the top-level ':'.
func tokenizeRule(text string) ([]tok, error) {
	l, err := ruleLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := l.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}
	var toks []tok
	for {
		raw, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			return nil, err
		}
		if raw == nil {
			continue // whitespace or skipped filler byte
		}
		toks = append(toks, *raw.(*tok))
	}
	return toks, nil
}
