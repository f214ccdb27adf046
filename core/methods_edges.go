// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() emits each undirected edge exactly once, ordered by the
//     insertion positions of its endpoints (earlier endpoint first).
package core

// AddEdge inserts the undirected edge {u, v}, creating missing endpoints
// (u registered before v, which matters for enumeration order).
//
// Errors:
//   - ErrLoopNotAllowed if u == v.
//   - ErrDuplicateEdge if the edge is already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v VertexID) error {
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Ensure endpoints exist; insertion order is u first, then v.
	g.addVertexLocked(u)
	g.addVertexLocked(v)

	if g.adjacent[u][v] {
		return ErrDuplicateEdge
	}

	g.adjacent[u][v] = true
	g.adjacent[v][u] = true
	g.edgeCount++

	return nil
}

// HasEdge reports whether the undirected edge {u, v} is present.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacent[u][v]
}

// RemoveEdge deletes the undirected edge {u, v}.
//
// Returns ErrEdgeNotFound if either endpoint or the edge itself is absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.adjacent[u][v] {
		return ErrEdgeNotFound
	}

	delete(g.adjacent[u], v)
	delete(g.adjacent[v], u)
	g.edgeCount--

	return nil
}

// Neighbors returns the neighbors of id in insertion order of the
// neighbor vertices, mirroring the engine's ascending-index tie-break.
//
// Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(V).
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, exists := g.adjacent[id]
	if !exists {
		return nil, ErrVertexNotFound
	}

	out := make([]VertexID, 0, len(set))
	for _, cand := range g.order {
		if set[cand] {
			out = append(out, cand)
		}
	}

	return out, nil
}

// Edges returns every undirected edge exactly once, U being the endpoint
// that entered the graph first, pairs ordered by (position(U), position(V)).
//
// Complexity: O(V^2) — acceptable at this scale, and the order is what
// tests and golden traces key on.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for i, u := range g.order {
		for _, v := range g.order[i+1:] {
			if g.adjacent[u][v] {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
