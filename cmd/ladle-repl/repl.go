/*
Command ladle-repl is an interactive CLI for exercising the chart engine:
enter a whitespace-separated terminal-id sequence, and the REPL parses it with a
small built-in demo grammar, printing every non-terminal node found and
letting you query a derivation tree for any of them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/ladle-go/ladle"
	"github.com/ladle-go/ladle/chart"
	"github.com/ladle-go/ladle/forest"
	"github.com/ladle-go/ladle/grammar"
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

// Session holds the state of one REPL run: the grammar in effect and the
// last engine built from it, so that "tree <handle>" can be answered
// without reparsing.
type Session struct {
	g    *grammar.Grammar
	repl *readline.Instance
	last *chart.Engine
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to the ladle REPL")

	rl, err := readline.New("ladle> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer rl.Close()

	sess := &Session{g: demoGrammar(), repl: rl}
	tracer().Infof("Quit with <ctrl>D")
	sess.loop()
}

func demoGrammar() *grammar.Grammar {
	a, b, c, S := ladle.T(0), ladle.T(1), ladle.T(2), ladle.N(0)
	b1 := grammar.NewBuilder()
	b1.Rule(S).Base(a).Successors(b, c).Add()
	b1.Rule(S).Base(a).Add()
	return b1.Grammar()
}

func (sess *Session) loop() {
	for {
		line, err := sess.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := sess.eval(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (sess *Session) eval(line string) (quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return true
	case "tree":
		sess.cmdTree(fields[1:])
	default:
		sess.cmdParse(fields)
	}
	return false
}

func (sess *Session) cmdParse(tokenIDs []string) {
	tokens := make([]ladle.Symbol, 0, len(tokenIDs))
	for _, s := range tokenIDs {
		id, err := strconv.Atoi(s)
		if err != nil {
			pterm.Error.Println(fmt.Sprintf("not a token id: %q", s))
			return
		}
		tokens = append(tokens, ladle.T(id))
	}
	e, err := chart.NewEngine(sess.g, tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	e.RunToFixpoint()
	sess.last = e

	q := forest.New(e)
	count := 0
	for start := 0; start <= e.N(); start++ {
		for stop := start + 1; stop <= e.N(); stop++ {
			for _, h := range q.NodesCovering(start, stop) {
				n, _ := e.NodeAt(h)
				if n.Terminal {
					continue
				}
				pterm.Info.Println(fmt.Sprintf("node %d: %s", int(h), n.String()))
				count++
			}
		}
	}
	pterm.Info.Println(fmt.Sprintf("%d non-terminal nodes (enter \"tree <handle>\" to inspect one)", count))
}

func (sess *Session) cmdTree(args []string) {
	if sess.last == nil {
		pterm.Error.Println("no parse has been run yet")
		return
	}
	if len(args) != 1 {
		pterm.Error.Println("usage: tree <handle>")
		return
	}
	h, err := strconv.Atoi(args[0])
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	q := forest.New(sess.last)
	t, err := q.BuildTree(chart.NodeHandle(h))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.DefaultTree.WithRoot(renderTree(t)).Render()
}

func renderTree(t *forest.Tree) pterm.TreeNode {
	label := t.Label.String()
	if t.IsLeaf() {
		label = fmt.Sprintf("%s@%d", label, t.TokenIndex)
	}
	node := pterm.TreeNode{Text: label}
	for _, c := range t.Children {
		node.Children = append(node.Children, renderTree(c))
	}
	return node
}
