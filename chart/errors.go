package chart

import (
	"fmt"

	"github.com/ladle-go/ladle"
)

// ConstructionError is returned synchronously by NewEngine when the
// grammar or token stream references a symbol outside a caller-declared
// range (see WithSymbolRange). This is a programmer error, surfaced at the
// API boundary rather than silently ignored.
type ConstructionError struct {
	Symbol ladle.Symbol
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("ladle/chart: construction error: %s: %s", e.Reason, e.Symbol)
}

// InvalidHandleError is returned when a NodeHandle passed to the API is out
// of range for the engine's arena.
type InvalidHandleError struct {
	Handle NodeHandle
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("ladle/chart: invalid node handle %d", int(e.Handle))
}
