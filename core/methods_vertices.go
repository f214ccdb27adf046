// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns ids in insertion order; removal compacts the
//     order slice without disturbing the relative order of survivors.
//
// Concurrency:
//   - All topology state is guarded by a single RWMutex; graphs here are
//     tens of vertices, so lock granularity buys nothing.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// The new vertex is appended to the enumeration order, which fixes its
// dense index for every later adjacency build until a removal occurs.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id VertexID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
}

// addVertexLocked registers id in the catalog; caller holds g.mu.
func (g *Graph) addVertexLocked(id VertexID) {
	if _, exists := g.position[id]; exists {
		return // no-op for existing vertex
	}

	g.position[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacent[id] = make(map[VertexID]bool)
}

// HasVertex reports whether the vertex id exists.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.position[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// The enumeration order of the remaining vertices is preserved; their
// positions shift down by one past the removed slot. Returns
// ErrVertexNotFound if id is absent.
//
// Complexity: O(V + deg(id)).
func (g *Graph) RemoveVertex(id VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, exists := g.position[id]
	if !exists {
		return ErrVertexNotFound
	}

	// Drop incident edges from both sides of the adjacency.
	for nb := range g.adjacent[id] {
		delete(g.adjacent[nb], id)
		g.edgeCount--
	}
	delete(g.adjacent, id)

	// Compact the order slice and re-seat the positions behind the gap.
	g.order = append(g.order[:pos], g.order[pos+1:]...)
	for i := pos; i < len(g.order); i++ {
		g.position[g.order[i]] = i
	}
	delete(g.position, id)

	return nil
}

// Vertices returns all vertex ids in insertion order.
//
// This is the stable enumeration surface: the adjacency package assigns
// dense index i to Vertices()[i], making index 0 the search root.
//
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]VertexID, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
