// File: components.go
// Role: Connected components of the face-adjacency graph.
// Determinism:
//   - Components are ordered by their smallest face; faces within a component
//     follow BFS order from that face.

package core

// components partitions the faces into edge-connected components in one
// pass: a single seen slice and a single queue serve every component.
//
// Time:   O(F) given at most three neighbours per face.
// Memory: O(F).
func (a *adjacency) components() [][]FaceRef {
	seen := make([]bool, len(a.faceFaces))
	queue := make([]FaceRef, 0, len(a.faceFaces))
	var comps [][]FaceRef

	for f0 := range a.faceFaces {
		if seen[f0] {
			continue
		}
		// The queue of one component is its BFS order.
		queue = append(queue[:0], FaceRef(f0))
		seen[f0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, nbr := range a.faceFaces[queue[qi]] {
				if !seen[nbr] {
					seen[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		comps = append(comps, append([]FaceRef(nil), queue...))
	}

	return comps
}

// FaceComponents groups face ids by edge-connected component, so a caller
// can split disconnected input into meshes Build accepts. It runs the
// adjacency stage (and reports its errors) but does not stitch anything.
//
// Complexity: O(V + F + Σ k²) for adjacency (k faces around a vertex),
// then O(F) for labelling.
func (m *Mesh) FaceComponents() ([][]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.buildAdjacency(); err != nil {
		return nil, err
	}
	comps := m.adj.components()
	out := make([][]int, len(comps))
	for i, comp := range comps {
		ids := make([]int, len(comp))
		for j, f := range comp {
			ids[j] = m.faces[f].ID
		}
		out[i] = ids
	}

	return out, nil
}
