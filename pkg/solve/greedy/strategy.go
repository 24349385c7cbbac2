package greedy

// Strategy selects one of the single-path construction policies. The set
// is closed so an orchestrator can sweep it exhaustively.
type Strategy int

const (
	// Lookahead0 extends with the maximum-weight edge to an unvisited
	// neighbor, no scoring beyond the immediate edge.
	Lookahead0 Strategy = iota
	// Lookahead1 blends the immediate edge with the candidate's best
	// onward edge, preferring edges that open onto further good edges.
	Lookahead1
	// Lookahead2 extends the blend one hop further, penalizing edges
	// that lead into near-term dead ends even when locally attractive.
	Lookahead2
	// Backtrack is forward construction with bounded single-step repair:
	// on a dead end the last step is undone and extension retried once
	// at the new tail, excluding the removed vertex.
	Backtrack
	// Reverse grows the path by prepending predecessors instead of
	// appending successors, producing structurally different candidates
	// from the same start vertex.
	Reverse
)

// Strategies returns all strategies in sweep order.
func Strategies() []Strategy {
	return []Strategy{Lookahead0, Lookahead1, Lookahead2, Backtrack, Reverse}
}

func (s Strategy) String() string {
	switch s {
	case Lookahead0:
		return "lookahead0"
	case Lookahead1:
		return "lookahead1"
	case Lookahead2:
		return "lookahead2"
	case Backtrack:
		return "backtrack"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}
