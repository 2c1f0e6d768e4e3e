package chart

// Option configures an Engine at construction time, following the same
// functional-option style used elsewhere in this codebase.
type Option func(*Engine)

// WithShouldStop installs a monotonically-checked predicate the outer loop
// consults between dequeues. When it returns true, RunToFixpoint exits after
// the current dequeue; the arena and chart remain valid but IsDone reports
// false — the engine reflects a partial, not corrupted, parse.
func WithShouldStop(f func() bool) Option {
	return func(e *Engine) {
		e.shouldStop = f
	}
}

// symbolRange, if set via WithSymbolRange, bounds the terminal and
// non-terminal symbol ids NewEngine will accept from the grammar and the
// token stream.
type symbolRange struct {
	maxTerminalID    int
	maxNonTerminalID int
}

// WithSymbolRange declares the valid symbol id range for this engine: IDs
// must fall in [0, maxTerminalID] for terminals and [0, maxNonTerminalID]
// for non-terminals. NewEngine validates every rule and token against this
// range and fails with a *ConstructionError on the first violation found.
// Without this option, no range checking is performed.
func WithSymbolRange(maxTerminalID, maxNonTerminalID int) Option {
	return func(e *Engine) {
		e.symRange = &symbolRange{maxTerminalID, maxNonTerminalID}
	}
}
