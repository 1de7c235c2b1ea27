package mdp

// Enumerate returns every state reachable from m.Start(), in breadth-first
// order. Successors are discovered through every legal action in the order
// m.Actions lists them, and through every positive-probability outcome in the
// order m.Transition lists them. The result is duplicate-free and identical
// across calls for a deterministic model.
//
// Complexity: O(V·A·K) where K is the largest outcome list.
func Enumerate(m MDP) ([]State, error) {
	if m == nil {
		return nil, ErrMDPNil
	}
	start := m.Start()
	seen := map[State]bool{start: true}
	order := []State{start}
	// order doubles as the FIFO queue; head indexes the next state to expand.
	for head := 0; head < len(order); head++ {
		s := order[head]
		for _, a := range m.Actions(s) {
			for _, tr := range m.Transition(s, a) {
				if tr.Prob <= 0 || seen[tr.Next] {
					continue
				}
				seen[tr.Next] = true
				order = append(order, tr.Next)
			}
		}
	}

	return order, nil
}

// Index maps each state to its position in states.
func Index(states []State) map[State]int {
	idx := make(map[State]int, len(states))
	for i, s := range states {
		idx[s] = i
	}

	return idx
}
