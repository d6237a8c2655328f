/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package matrix

import (
	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/graph/util"
	"gonum.org/v1/gonum/mat"
)

/*
Transpose swaps a matrix's axes and its node mapping's row/col roles.
The empty sentinel transposes to itself.
*/
func Transpose(m *Matrix) *Matrix {
	if m.IsEmpty() {
		return empty(m.Kind)
	}

	out := &Matrix{Kind: m.Kind, NodeMapping: m.NodeMapping, Index: m.Index, Rows: m.Cols, Cols: m.Rows}

	switch m.Kind {
	case Sparse:
		triples := make([]Triple, len(m.Sparse))
		for i, t := range m.Sparse {
			triples[i] = Triple{Row: t.Col, Col: t.Row, Value: t.Value}
		}
		out.Sparse = triples
	default:
		var d mat.Dense
		d.CloneFrom(m.Dense.T())
		out.Dense = &d
	}

	return out
}

/*
Multiply computes the standard (+,*) dot product A*B. Both operands
must share the same node mapping, or ErrIncompatibleMapping is
returned. If either operand is sparse, both are converted to dense
before multiplying - the documented sparse-multiplication fallback; a
production implementation would replace this with a true sparse
product. The empty sentinel propagates: multiplying with an empty
matrix yields the empty matrix.
*/
func Multiply(a, b *Matrix) (*Matrix, error) {
	if err := requireSameMapping(a, b); err != nil {
		return nil, err
	}

	if a.IsEmpty() || b.IsEmpty() {
		return empty(Dense), nil
	}

	var out mat.Dense
	out.Mul(a.toDense(), b.toDense())

	return &Matrix{Kind: Dense, NodeMapping: a.NodeMapping, Index: a.Index, Rows: a.Rows, Cols: b.Cols, Dense: &out}, nil
}

/*
Power raises m to the k-th power by left-folding Multiply k-1 times.
k must be >= 1; Power(m, 1) returns m unchanged.
*/
func Power(m *Matrix, k int) (*Matrix, error) {
	if k < 1 {
		return nil, &util.GraphError{Type: util.ErrInvalidData, Detail: "matrix power exponent must be >= 1"}
	}

	if k == 1 || m.IsEmpty() {
		return m, nil
	}

	result := m
	for i := 1; i < k; i++ {
		next, err := Multiply(result, m)
		if err != nil {
			return nil, err
		}
		result = next
	}

	return result, nil
}

/*
ElementwiseAdd applies pairwise addition over two matrices sharing the
same node mapping. A parameterized elementwise_op taking an arbitrary
function is a non-goal per the specification; addition is the minimum
required instance.
*/
func ElementwiseAdd(a, b *Matrix) (*Matrix, error) {
	if err := requireSameMapping(a, b); err != nil {
		return nil, err
	}

	if a.IsEmpty() || b.IsEmpty() {
		return empty(Dense), nil
	}

	var out mat.Dense
	out.Add(a.toDense(), b.toDense())

	return &Matrix{Kind: Dense, NodeMapping: a.NodeMapping, Index: a.Index, Rows: a.Rows, Cols: a.Cols, Dense: &out}, nil
}

/*
Subgraph projects m onto the rows and columns whose node ids are in
ids, assigning the retained ids fresh indices in the order given by the
caller (not their original relative order in m).
*/
func Subgraph(m *Matrix, ids []data.NodeId) *Matrix {
	if m.IsEmpty() || len(ids) == 0 {
		return empty(m.Kind)
	}

	mapping := make(map[data.NodeId]int, len(ids))
	index := make([]data.NodeId, 0, len(ids))
	oldIdx := make([]int, 0, len(ids))

	for _, id := range ids {
		old, ok := m.NodeMapping[id]
		if !ok {
			continue
		}
		mapping[id] = len(index)
		index = append(index, id)
		oldIdx = append(oldIdx, old)
	}

	n := len(index)
	if n == 0 {
		return empty(m.Kind)
	}

	dense := m.toDense()
	sub := mat.NewDense(n, n, nil)

	for i, oi := range oldIdx {
		for j, oj := range oldIdx {
			sub.Set(i, j, dense.At(oi, oj))
		}
	}

	out := &Matrix{Kind: Dense, NodeMapping: mapping, Index: index, Rows: n, Cols: n, Dense: sub}

	if m.Kind == Sparse {
		return toSparse(out)
	}
	return out
}

/*
EdgeTriple is a single non-zero matrix entry resolved back to graph
space via the inverse of NodeMapping.
*/
type EdgeTriple struct {
	From, To data.NodeId
	Weight   float64
}

/*
ToEdges enumerates m's non-zero entries as (from, to, weight) triples.
*/
func ToEdges(m *Matrix) []EdgeTriple {
	if m.IsEmpty() {
		return nil
	}

	var out []EdgeTriple

	if m.Kind == Sparse {
		for _, t := range m.Sparse {
			if t.Value == 0 {
				continue
			}
			out = append(out, EdgeTriple{From: m.Index[t.Row], To: m.Index[t.Col], Weight: t.Value})
		}
		return out
	}

	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			if v := m.Dense.At(i, j); v != 0 {
				out = append(out, EdgeTriple{From: m.Index[i], To: m.Index[j], Weight: v})
			}
		}
	}

	return out
}

/*
Convert returns m represented as the given kind, scattering/gathering
values as needed. Converting to the same kind is the identity.
*/
func Convert(m *Matrix, kind Kind) *Matrix {
	if m.IsEmpty() {
		return empty(kind)
	}
	if m.Kind == kind {
		return m
	}
	if kind == Sparse {
		return toSparse(m)
	}
	return &Matrix{Kind: Dense, NodeMapping: m.NodeMapping, Index: m.Index, Rows: m.Rows, Cols: m.Cols, Dense: m.toDense()}
}

func toSparse(m *Matrix) *Matrix {
	dense := m.toDense()
	var triples []Triple

	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			if v := dense.At(i, j); v != 0 {
				triples = append(triples, Triple{Row: i, Col: j, Value: v})
			}
		}
	}

	return &Matrix{Kind: Sparse, NodeMapping: m.NodeMapping, Index: m.Index, Rows: m.Rows, Cols: m.Cols, Sparse: triples}
}
