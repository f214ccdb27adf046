package core

// Clone returns a deep copy of g: same vertices in the same enumeration
// order, same edges. Useful for snapshotting an editor graph before a run
// while the user keeps editing the original.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.order = make([]VertexID, len(g.order))
	copy(out.order, g.order)

	for id, pos := range g.position {
		out.position[id] = pos
	}
	for id, set := range g.adjacent {
		cp := make(map[VertexID]bool, len(set))
		for nb := range set {
			cp[nb] = true
		}
		out.adjacent[id] = cp
	}
	out.edgeCount = g.edgeCount

	return out
}
