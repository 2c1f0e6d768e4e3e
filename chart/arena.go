package chart

// Arena is an append-only store of parse-forest nodes, addressed by dense
// integer handles. Arena entries never move, so handles remain valid for
// the lifetime of the Engine that owns the arena.
type Arena struct {
	nodes []Node
}

// newArena preallocates capacity for roughly twice as many nodes as input
// tokens, per the engine's memory discipline; it grows by doubling (via the
// underlying slice) beyond that.
func newArena(tokens int) *Arena {
	cap := tokens * 2
	if cap < 8 {
		cap = 8
	}
	return &Arena{nodes: make([]Node, 0, cap)}
}

// add appends a node to the arena and returns its handle.
func (a *Arena) add(n Node) NodeHandle {
	h := NodeHandle(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return h
}

// Get returns the node addressed by h. It panics on an out-of-range handle;
// see (*Engine).NodeAt for a checked accessor suitable for the API boundary.
func (a *Arena) Get(h NodeHandle) Node {
	return a.nodes[h]
}

// Len returns the number of nodes currently in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}
