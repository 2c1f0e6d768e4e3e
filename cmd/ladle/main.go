/*
Command ladle runs the Mid-Rule chart engine over a token sequence read from
the command line and prints every completed derivation tree it finds for
the requested start symbol that spans the whole input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/ladle-go/ladle"
	"github.com/ladle-go/ladle/chart"
	"github.com/ladle-go/ladle/forest"
	"github.com/ladle-go/ladle/grammar"
	lscanner "github.com/ladle-go/ladle/lr/scanner"
)

func tracer() tracing.Trace {
	return tracing.Select("ladle.cmd")
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	tokensArg := flag.String("tokens", "", "comma-separated terminal ids, e.g. \"0,1,2\"")
	textArg := flag.String("text", "", "an a/b/c string to scan into terminals instead of -tokens")
	startArg := flag.Int("start", 0, "non-terminal id to query for a full-span derivation")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	var tokens []ladle.Symbol
	var err error
	if *textArg != "" {
		tokens, err = scanTokens(*textArg)
	} else {
		tokens, err = parseTokens(*tokensArg)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	g := demoGrammar()

	e, err := chart.NewEngine(g, tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	e.RunToFixpoint()
	pterm.Info.Println(fmt.Sprintf("parsed %d tokens into %d arena nodes", len(tokens), e.NodeCount()))

	q := forest.New(e)
	start := ladle.N(*startArg)
	roots := q.NodesWithLabelCovering(start, 0, e.N())
	if len(roots) == 0 {
		pterm.Error.Println(fmt.Sprintf("no derivation of %s spans the full input", start))
		os.Exit(1)
	}
	for _, h := range roots {
		tree, err := q.BuildTree(h)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		printTree(tree)
	}
}

func parseTokens(s string) ([]ladle.Symbol, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	tokens := make([]ladle.Symbol, len(parts))
	for i, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid token id %q: %w", p, err)
		}
		tokens[i] = ladle.T(id)
	}
	return tokens, nil
}

// scanTokens tokenizes s with the package's default Go-style scanner and maps
// each single-character identifier "a", "b", "c" to the matching terminal id
// of demoGrammar (0, 1, 2). It exists to give the command an input mode that
// goes through a real lexer front end rather than pre-split ids.
func scanTokens(s string) ([]ladle.Symbol, error) {
	t := lscanner.GoTokenizer("-text", strings.NewReader(s))
	var tokens []ladle.Symbol
	for {
		tok := t.NextToken()
		if tok.TokType() == ladle.TokType(scanner.EOF) {
			break
		}
		id, ok := map[string]int{"a": 0, "b": 1, "c": 2}[tok.Lexeme()]
		if !ok {
			return nil, fmt.Errorf("unexpected token %q at %s", tok.Lexeme(), tok.Span())
		}
		tokens = append(tokens, ladle.T(id))
	}
	return tokens, nil
}

// demoGrammar builds a small default grammar so the command is useful
// without requiring a grammar file:
//
//	S <- base=0, successors=[1, 2]   (a pure successor chain)
func demoGrammar() *grammar.Grammar {
	a, b, c, S := ladle.T(0), ladle.T(1), ladle.T(2), ladle.N(0)
	return grammar.NewBuilder().Rule(S).Base(a).Successors(b, c).Add().Grammar()
}

func printTree(t *forest.Tree) {
	root := treeNode(t)
	pterm.DefaultTree.WithRoot(root).Render()
}

func treeNode(t *forest.Tree) pterm.TreeNode {
	label := t.Label.String()
	if t.IsLeaf() {
		label = fmt.Sprintf("%s@%d", label, t.TokenIndex)
	}
	node := pterm.TreeNode{Text: label}
	for _, c := range t.Children {
		node.Children = append(node.Children, treeNode(c))
	}
	return node
}
