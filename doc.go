/*
Package ladle is a generalized context-free parsing engine.

It accepts a grammar expressed in Mid-Rule form — where each production
names a distinguished base symbol plus ordered lists of left-context
(predecessors) and right-context (successors) symbols — and a flat sequence
of input tokens, and produces every parse-forest node recognized by the
grammar over any contiguous region of the input. Package structure is as
follows:

■ grammar: Mid-Rule productions, the immutable Grammar value, and the
rule index that maps a base symbol to the productions anchored at it.

■ chart: the bidirectional chart parser itself — node arena, chart table,
work queues and the Match Engine state machine that drives partial matches
left and right from an anchor node.

■ forest: queries over the completed parse forest and derivation-tree
materialization.

■ cfgconv: converts conventional (LHS → RHS…) context-free rules into
Mid-Rule form.

■ text: source-text utilities for diagnostics — line/column lookup and an
annotated-excerpt renderer — used when reporting over a parse, not by the
engine itself.

■ lr/scanner: tokenizer adapters feeding the engine from text input; these
sit outside the engine proper and are provided for convenience of the
cmd/ tools.

■ lr1: an unfinished LR(1) shift/reduce skeleton without table construction, kept as a stub for
a possible future bottom-up front end. Not used by the chart engine.

The base package contains data types — symbols, spans, tokens — used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ladle
