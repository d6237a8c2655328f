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
	"testing"

	"github.com/krotik/graphlite/graph"
	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/storage"
)

func abcGraph(t *testing.T) *graph.Graph {
	g := graph.New("test", storage.Config{})

	for _, id := range []string{"a", "b", "c"} {
		if err := g.AddNode(data.NewNode(id, nil, nil)); err != nil {
			t.Fatal(err)
		}
	}

	if err := g.AddEdge(data.NewEdge("ab", "a", "b", "NEXT", map[string]interface{}{"weight": 1.0})); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(data.NewEdge("bc", "b", "c", "NEXT", map[string]interface{}{"weight": 2.5})); err != nil {
		t.Fatal(err)
	}

	return g
}

func TestFromGraphEmpty(t *testing.T) {
	g := graph.New("empty", storage.Config{})

	m := FromGraph(g, Dense)
	if !m.IsEmpty() {
		t.Error("Expected an empty matrix for an empty graph")
		return
	}
}

func TestFromGraphRoundTrip(t *testing.T) {
	g := abcGraph(t)

	m := FromGraph(g, Dense)
	edges := ToEdges(m)

	if len(edges) != 2 {
		t.Error("Expected exactly 2 edges, got:", len(edges))
		return
	}

	seen := map[string]float64{}
	for _, e := range edges {
		seen[string(e.From)+"->"+string(e.To)] = e.Weight
	}

	if seen["a->b"] != 1.0 {
		t.Error("Unexpected weight for a->b:", seen["a->b"])
		return
	}
	if seen["b->c"] != 2.5 {
		t.Error("Unexpected weight for b->c:", seen["b->c"])
		return
	}
}

func TestFromGraphMultiEdgeLastWriteWins(t *testing.T) {
	g := graph.New("test", storage.Config{})
	g.AddNode(data.NewNode("a", nil, nil))
	g.AddNode(data.NewNode("b", nil, nil))

	g.AddEdge(data.NewEdge("e1", "a", "b", "NEXT", map[string]interface{}{"weight": 1.0}))
	g.AddEdge(data.NewEdge("e2", "a", "b", "NEXT", map[string]interface{}{"weight": 9.0}))

	m := FromGraph(g, Dense)
	edges := ToEdges(m)

	if len(edges) != 1 {
		t.Error("Expected the two parallel edges to collapse to one entry:", edges)
		return
	}

	if edges[0].Weight != 9.0 {
		t.Error("Expected the later edge's weight to win:", edges[0].Weight)
		return
	}
}

func TestTransposeInvolution(t *testing.T) {
	g := abcGraph(t)

	m := FromGraph(g, Dense)
	tt := Transpose(Transpose(m))

	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			if m.Dense.At(i, j) != tt.Dense.At(i, j) {
				t.Error("Transpose(Transpose(M)) != M at", i, j)
				return
			}
		}
	}
}

func TestMultiplyDimensions(t *testing.T) {
	g := abcGraph(t)

	m := FromGraph(g, Dense)
	prod, err := Multiply(m, m)
	if err != nil {
		t.Error(err)
		return
	}

	if prod.Rows != m.Rows || prod.Cols != m.Cols {
		t.Error("Unexpected product dimensions:", prod.Rows, prod.Cols)
		return
	}

	// a -> b -> c is the only length-2 walk, so M^2[a,c] should carry its
	// weight product and every other cell should be zero.
	aIdx := m.NodeMapping["a"]
	cIdx := m.NodeMapping["c"]
	if v := prod.Dense.At(aIdx, cIdx); v != 2.5 {
		t.Error("Unexpected M^2[a,c]:", v)
		return
	}
}

func TestMultiplyIncompatibleMapping(t *testing.T) {
	g1 := abcGraph(t)
	g2 := graph.New("other", storage.Config{})
	g2.AddNode(data.NewNode("x", nil, nil))

	m1 := FromGraph(g1, Dense)
	m2 := FromGraph(g2, Dense)

	if _, err := Multiply(m1, m2); err == nil {
		t.Error("Expected an error for mismatched node mappings")
		return
	}
}

func TestPower(t *testing.T) {
	g := abcGraph(t)
	m := FromGraph(g, Dense)

	p1, err := Power(m, 1)
	if err != nil || p1 != m {
		t.Error("Power(M, 1) should return M unchanged")
		return
	}

	p2, err := Power(m, 2)
	if err != nil {
		t.Error(err)
		return
	}

	direct, _ := Multiply(m, m)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			if p2.Dense.At(i, j) != direct.Dense.At(i, j) {
				t.Error("Power(M, 2) should equal Multiply(M, M)")
				return
			}
		}
	}
}

func TestSubgraphProjection(t *testing.T) {
	g := abcGraph(t)
	m := FromGraph(g, Dense)

	sub := Subgraph(m, []data.NodeId{"c", "a"})

	if sub.Rows != 2 || sub.Cols != 2 {
		t.Error("Unexpected subgraph dimensions:", sub.Rows, sub.Cols)
		return
	}

	if sub.NodeMapping["c"] != 0 || sub.NodeMapping["a"] != 1 {
		t.Error("Subgraph should assign fresh indices in caller order:", sub.NodeMapping)
		return
	}
}

func TestConvertRoundTrip(t *testing.T) {
	g := abcGraph(t)
	dense := FromGraph(g, Dense)

	sparse := Convert(dense, Sparse)
	if sparse.Kind != Sparse {
		t.Error("Expected a sparse matrix")
		return
	}

	back := Convert(sparse, Dense)
	for i := 0; i < dense.Rows; i++ {
		for j := 0; j < dense.Cols; j++ {
			if dense.Dense.At(i, j) != back.Dense.At(i, j) {
				t.Error("Dense -> Sparse -> Dense round trip mismatch at", i, j)
				return
			}
		}
	}
}

func TestElementwiseAdd(t *testing.T) {
	g := abcGraph(t)
	m := FromGraph(g, Dense)

	sum, err := ElementwiseAdd(m, m)
	if err != nil {
		t.Error(err)
		return
	}

	aIdx := m.NodeMapping["a"]
	bIdx := m.NodeMapping["b"]
	if sum.Dense.At(aIdx, bIdx) != 2.0 {
		t.Error("Unexpected sum at [a,b]:", sum.Dense.At(aIdx, bIdx))
		return
	}
}
