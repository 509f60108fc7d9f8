// Package parse converts the line-oriented grammar-input format (§6 of the
// specification) into a *grammar.Grammar. Parsing happens in two sweeps
// over the input: the first collects every production's raw symbols and
// equations without creating any graph node, and computes the kind of
// every (nonterminal, attribute-name) pair from its defining equations
// alone; the second builds the grammar, relying on the now-complete kind
// signature so that a right-hand reference to an attribute whose defining
// production appears later in the file still resolves to the correct
// kind. A reactive, single-pass mirror (attribute created the moment it is
// first mentioned, whichever side of an equation that is) cannot do this:
// a forward reference would freeze the wrong kind before its defining
// equation is ever seen.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/attrgrammar/evalorder/grammar"
)

type attrRef struct {
	name  string
	index int
}

type rawRule struct {
	left  attrRef
	right []attrRef
}

type rawProduction struct {
	lhs byte
	rhs []byte
	rules []rawRule
	row int
}

func (rp *rawProduction) symbolAt(index int) (byte, bool) {
	if index == 0 {
		return rp.lhs, true
	}
	i := index - 1
	if i < 0 || i >= len(rp.rhs) {
		return 0, false
	}
	return rp.rhs[i], true
}

// Parse reads grammar-input lines from r until EOF or a blank line, and
// returns the resulting Grammar.
func Parse(r io.Reader) (*grammar.Grammar, error) {
	raws, err := scanProductions(r)
	if err != nil {
		return nil, err
	}

	signatures := map[byte]map[string]grammar.Kind{}
	for _, rp := range raws {
		for _, rule := range rp.rules {
			name, ok := rp.symbolAt(rule.left.index)
			if !ok {
				return nil, &SyntaxError{Row: rp.row, Cause: fmt.Errorf("attribute index %d out of range for production %c -> %s", rule.left.index, rp.lhs, string(rp.rhs))}
			}
			kind := grammar.InitByValue
			if len(rule.right) > 0 {
				if rule.left.index == 0 {
					kind = grammar.Synthesized
				} else {
					kind = grammar.Inherited
				}
			}
			sig, ok := signatures[name]
			if !ok {
				sig = map[string]grammar.Kind{}
				signatures[name] = sig
			}
			sig[rule.left.name] = kind
		}
	}

	g := grammar.New()
	g.SeedSignatures(signatures)

	for _, rp := range raws {
		p := g.AddProduction(rp.lhs, rp.rhs)
		vars := p.Variables()
		for _, rule := range rp.rules {
			if rule.left.index < 0 || rule.left.index >= len(vars) {
				return nil, &SyntaxError{Row: rp.row, Cause: fmt.Errorf("attribute index %d out of range", rule.left.index)}
			}
			kind := signatures[mustSymbol(rp, rule.left.index)][rule.left.name]
			leftAttr := g.EnsureAttribute(vars[rule.left.index], rule.left.name, kind, true)
			for _, ref := range rule.right {
				if ref.index < 0 || ref.index >= len(vars) {
					return nil, &SyntaxError{Row: rp.row, Cause: fmt.Errorf("attribute index %d out of range", ref.index)}
				}
				rightSym := mustSymbol(rp, ref.index)
				rightKind := signatures[rightSym][ref.name]
				rightAttr := g.EnsureAttribute(vars[ref.index], ref.name, rightKind, true)
				leftAttr.AddDependencyOn(rightAttr)
			}
		}
	}
	return g, nil
}

func mustSymbol(rp *rawProduction, index int) byte {
	sym, _ := rp.symbolAt(index)
	return sym
}

// scanProductions reads the input line by line, stopping at the first
// blank line (or EOF), and parses each non-blank line into a rawProduction.
func scanProductions(r io.Reader) ([]*rawProduction, error) {
	var out []*rawProduction
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		row++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		rp, err := parseLine(line, row)
		if err != nil {
			return nil, err
		}
		out = append(out, rp)
	}
	if err := scanner.Err(); err != nil {
		return nil, &SyntaxError{Row: row, Cause: err}
	}
	return out, nil
}

func parseLine(line string, row int) (*rawProduction, error) {
	arrow := strings.Index(line, "->")
	if arrow < 0 {
		return nil, &SyntaxError{Row: row, Line: line, Cause: fmt.Errorf("missing '->'")}
	}
	lhsText := strings.TrimSpace(line[:arrow])
	lhsRunes := []rune(lhsText)
	if len(lhsRunes) != 1 || lhsRunes[0] > unicode.MaxASCII {
		return nil, &SyntaxError{Row: row, Line: line, Cause: fmt.Errorf("left-hand side must be exactly one symbol, got %q", lhsText)}
	}

	rest := line[arrow+2:]
	symsText, ruleText, hasRule := strings.Cut(rest, ":")

	var rhs []byte
	for _, r := range symsText {
		if unicode.IsSpace(r) {
			continue
		}
		if r > unicode.MaxASCII {
			return nil, &SyntaxError{Row: row, Line: line, Cause: fmt.Errorf("non-ASCII symbol %q", r)}
		}
		rhs = append(rhs, byte(r))
	}
	if len(rhs) == 0 {
		return nil, &SyntaxError{Row: row, Line: line, Cause: fmt.Errorf("production has no right-hand symbols")}
	}

	rp := &rawProduction{lhs: byte(lhsRunes[0]), rhs: rhs, row: row}
	if !hasRule {
		return rp, nil
	}

	toks, err := tokenizeRule(ruleText)
	if err != nil {
		return nil, &SyntaxError{Row: row, Line: line, Cause: err}
	}
	for _, group := range splitOnSemi(toks) {
		if len(group) == 0 {
			continue
		}
		rule, err := parseEquation(group)
		if err != nil {
			return nil, &SyntaxError{Row: row, Line: line, Cause: err}
		}
		rp.rules = append(rp.rules, rule)
	}
	return rp, nil
}

func splitOnSemi(toks []tok) [][]tok {
	var groups [][]tok
	var cur []tok
	for _, t := range toks {
		if t.kind == tokSemi {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	groups = append(groups, cur)
	return groups
}

func parseEquation(toks []tok) (rawRule, error) {
	eq := -1
	for i, t := range toks {
		if t.kind == tokEquals {
			eq = i
			break
		}
	}
	if eq < 0 {
		return rawRule{}, fmt.Errorf("equation missing '='")
	}
	leftRefs := extractAttrRefs(toks[:eq])
	if len(leftRefs) != 1 {
		return rawRule{}, fmt.Errorf("equation must define exactly one attribute, found %d", len(leftRefs))
	}
	rightRefs := extractAttrRefs(toks[eq+1:])
	return rawRule{left: leftRefs[0], right: rightRefs}, nil
}

// extractAttrRefs scans a token stream for name[index] sequences,
// ignoring everything else (§6: "only attribute occurrences are
// extracted").
func extractAttrRefs(toks []tok) []attrRef {
	var refs []attrRef
	i := 0
	for i < len(toks) {
		if toks[i].kind == tokIdent && i+3 < len(toks) &&
			toks[i+1].kind == tokLBrack && toks[i+2].kind == tokNumber && toks[i+3].kind == tokRBrack {
			idx, err := strconv.Atoi(toks[i+2].text)
			if err == nil {
				refs = append(refs, attrRef{name: toks[i].text, index: idx})
			}
			i += 4
			continue
		}
		i++
	}
	return refs
}
