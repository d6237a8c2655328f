/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package matrix builds adjacency matrices from a graph and provides the
classical matrix operations (transpose, multiply, power, elementwise,
subgraph, conversion, edge-list export) on top of them. Matrices are
derived, immutable snapshots: once built, they are independent of later
mutations to the graph they were built from.

Dense matrices are backed by gonum.org/v1/gonum/mat.Dense. Sparse
matrices use a plain coordinate-list (COO) representation; sparse
multiplication falls back to a dense conversion, matching the
documented baseline (a production implementation would replace this
with a true sparse product).
*/
package matrix

import (
	"github.com/krotik/graphlite/graph"
	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/graph/util"
	"gonum.org/v1/gonum/mat"
)

/*
Kind distinguishes the two matrix storage representations.
*/
type Kind int

const (
	Dense Kind = iota
	Sparse
)

/*
Triple is one coordinate entry of a sparse (COO) matrix: row and column
are indices into the owning Matrix's NodeMapping.
*/
type Triple struct {
	Row, Col int
	Value    float64
}

/*
Matrix is an adjacency matrix snapshot of a graph. NodeMapping is a
bijection from NodeId onto [0, n); Index is its inverse, used by
ToEdges and Subgraph to translate matrix coordinates back to node ids.

For the empty graph, Rows == Cols == 0 and both Dense and Sparse are
nil - this is the "empty matrix" sentinel that every operation below
propagates rather than rejecting.
*/
type Matrix struct {
	Kind        Kind
	NodeMapping map[data.NodeId]int
	Index       []data.NodeId
	Rows, Cols  int

	Dense  *mat.Dense
	Sparse []Triple
}

func newMapping(nodes []data.Node) (map[data.NodeId]int, []data.NodeId) {
	mapping := make(map[data.NodeId]int, len(nodes))
	index := make([]data.NodeId, len(nodes))

	for i, n := range nodes {
		mapping[n.Id()] = i
		index[i] = n.Id()
	}

	return mapping, index
}

/*
empty constructs the zero-sized sentinel matrix, carrying forward the
requested kind so callers can still ask what representation an empty
result "would have been".
*/
func empty(kind Kind) *Matrix {
	return &Matrix{Kind: kind, NodeMapping: map[data.NodeId]int{}, Index: nil, Rows: 0, Cols: 0}
}

/*
Empty exposes empty for callers outside this package that need the
empty-matrix sentinel (e.g. semiring multiplication propagating an
empty operand).
*/
func Empty(kind Kind) *Matrix {
	return empty(kind)
}

/*
IsEmpty reports whether m is the empty-graph sentinel.
*/
func (m *Matrix) IsEmpty() bool {
	return m.Rows == 0 && m.Cols == 0
}

/*
FromGraph enumerates g's nodes in storage iteration order to build
NodeMapping, then scatters every edge's weight (graph/data.Weight,
which reads the "weight" property falling back to "Weight", defaulting
to 1) at (idx(from), idx(to)). Edges are read per source node in the
order of its outgoing adjacency list (insertion order), so multiple
edges between the same ordered pair of nodes collapse last-write-wins:
the most recently added edge's weight is kept.
*/
func FromGraph(g *graph.Graph, kind Kind) *Matrix {
	nodes := g.Store().AllNodes()

	if len(nodes) == 0 {
		return empty(kind)
	}

	mapping, index := newMapping(nodes)
	n := len(nodes)

	m := &Matrix{Kind: kind, NodeMapping: mapping, Index: index, Rows: n, Cols: n}

	weights := make(map[[2]int]float64)

	for _, from := range nodes {
		fromIdx := mapping[from.Id()]
		for _, eid := range g.Store().Adjacency(from.Id()).Out {
			e, err := g.Store().GetEdge(eid)
			if err != nil {
				continue
			}
			toIdx, ok := mapping[e.To()]
			if !ok {
				continue
			}
			weights[[2]int{fromIdx, toIdx}] = data.Weight(e)
		}
	}

	switch kind {
	case Sparse:
		triples := make([]Triple, 0, len(weights))
		for rc, w := range weights {
			triples = append(triples, Triple{Row: rc[0], Col: rc[1], Value: w})
		}
		m.Sparse = triples
	default:
		dense := mat.NewDense(n, n, nil)
		for rc, w := range weights {
			dense.Set(rc[0], rc[1], w)
		}
		m.Dense = dense
	}

	return m
}

/*
mappingsMatch reports whether a and b share the exact same node
mapping, the precondition every binary matrix op requires.
*/
func mappingsMatch(a, b *Matrix) bool {
	if len(a.NodeMapping) != len(b.NodeMapping) {
		return false
	}
	for id, idx := range a.NodeMapping {
		if bIdx, ok := b.NodeMapping[id]; !ok || bIdx != idx {
			return false
		}
	}
	return true
}

func requireSameMapping(a, b *Matrix) error {
	if a.IsEmpty() || b.IsEmpty() {
		return nil
	}
	if !mappingsMatch(a, b) {
		return &util.GraphError{Type: util.ErrIncompatibleMapping, Detail: "matrix operands do not share a node mapping"}
	}
	return nil
}

/*
RequireSameMapping exposes requireSameMapping for callers outside this
package (e.g. semiring multiplication) that need the same precondition
check §4.4 requires of multiply/elementwise_op.
*/
func RequireSameMapping(a, b *Matrix) error {
	return requireSameMapping(a, b)
}

/*
toDense returns the matrix's contents as a dense *mat.Dense, converting
a sparse matrix (scattering its triples into a zero-filled tensor) if
necessary. The empty sentinel yields a nil Dense.
*/
func (m *Matrix) toDense() *mat.Dense {
	if m.IsEmpty() {
		return nil
	}
	if m.Kind == Dense {
		return m.Dense
	}

	d := mat.NewDense(m.Rows, m.Cols, nil)
	for _, t := range m.Sparse {
		d.Set(t.Row, t.Col, t.Value)
	}
	return d
}

/*
ToDense exposes toDense for callers outside this package (e.g. semiring
multiplication) that need read access to a matrix's raw values
regardless of its storage Kind.
*/
func (m *Matrix) ToDense() *mat.Dense {
	return m.toDense()
}
