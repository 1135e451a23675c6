package fsm

// Graph maps a state name to the set of state names it may transition into.
// It is consulted before every transition attempt; a missing entry means the
// state allows no outgoing transitions.
type Graph map[string][]string

// Allowed reports whether the graph permits moving from one state to another.
func (g Graph) Allowed(from, to string) bool {
	for _, name := range g[from] {
		if name == to {
			return true
		}
	}
	return false
}

// DefaultGraph returns the built-in player transition graph.
func DefaultGraph() Graph {
	return Graph{
		StateIdle:      {StateWalking, StateJumping, StateAttacking, StateCasting},
		StateWalking:   {StateIdle, StateJumping, StateAttacking},
		StateJumping:   {StateIdle, StateAttacking},
		StateAttacking: {StateIdle, StateJumping},
		StateCasting:   {StateIdle, StateWalking},
	}
}
