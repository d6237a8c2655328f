/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package semiring

import (
	"math"
	"testing"

	"github.com/krotik/graphlite/graph"
	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/matrix"
	"github.com/krotik/graphlite/storage"
)

func abcGraph(t *testing.T) *graph.Graph {
	g := graph.New("test", storage.Config{})

	for _, id := range []string{"a", "b", "c"} {
		if err := g.AddNode(data.NewNode(id, nil, nil)); err != nil {
			t.Fatal(err)
		}
	}

	if err := g.AddEdge(data.NewEdge("ab", "a", "b", "NEXT", nil)); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(data.NewEdge("bc", "b", "c", "NEXT", nil)); err != nil {
		t.Fatal(err)
	}

	return g
}

func TestBooleanReachability(t *testing.T) {
	g := abcGraph(t)
	m := matrix.FromGraph(g, matrix.Dense)

	m2, err := Multiply(m, m, Boolean)
	if err != nil {
		t.Error(err)
		return
	}

	aIdx := m.NodeMapping["a"]
	cIdx := m.NodeMapping["c"]

	if m2.Dense.At(aIdx, cIdx) == 0 {
		t.Error("Expected a walk of length 2 from a to c to be reachable")
		return
	}
	if m2.Dense.At(aIdx, aIdx) != 0 {
		t.Error("Expected a to not be reachable from itself in 2 hops")
		return
	}
}

func TestTropicalShortestPath(t *testing.T) {
	g := graph.New("test", storage.Config{})
	for _, id := range []string{"a", "b", "c"} {
		g.AddNode(data.NewNode(id, nil, nil))
	}
	g.AddEdge(data.NewEdge("ab", "a", "b", "NEXT", map[string]interface{}{"weight": 2.0}))
	g.AddEdge(data.NewEdge("bc", "b", "c", "NEXT", map[string]interface{}{"weight": 3.0}))
	g.AddEdge(data.NewEdge("ac", "a", "c", "NEXT", map[string]interface{}{"weight": 7.0}))

	m := matrix.FromGraph(g, matrix.Dense)

	// Off-graph entries must be +∞ and the diagonal 0 for the tropical
	// semiring's identity laws to hold - from_graph leaves both at 0,
	// so seed them explicitly before squaring.
	aIdx, bIdx, cIdx := m.NodeMapping["a"], m.NodeMapping["b"], m.NodeMapping["c"]
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			if i == j {
				continue
			}
			if m.Dense.At(i, j) == 0 {
				m.Dense.Set(i, j, math.Inf(1))
			}
		}
	}

	m2, err := Multiply(m, m, Tropical)
	if err != nil {
		t.Error(err)
		return
	}

	if got := m2.Dense.At(aIdx, cIdx); got != 5 {
		t.Error("Expected the a->b->c path (weight 5) to beat the direct a->c edge (weight 7):", got)
		return
	}
	_ = bIdx
}

func TestCountingPathEnumeration(t *testing.T) {
	g := graph.New("test", storage.Config{})
	for _, id := range []string{"a", "b", "c"} {
		g.AddNode(data.NewNode(id, nil, nil))
	}
	g.AddEdge(data.NewEdge("ab1", "a", "b", "NEXT", nil))
	g.AddEdge(data.NewEdge("bc", "b", "c", "NEXT", nil))

	m := matrix.FromGraph(g, matrix.Dense)

	m2, err := Multiply(m, m, Counting)
	if err != nil {
		t.Error(err)
		return
	}

	aIdx, cIdx := m.NodeMapping["a"], m.NodeMapping["c"]
	if got := m2.Dense.At(aIdx, cIdx); got != 1 {
		t.Error("Expected exactly one length-2 walk from a to c:", got)
		return
	}
}

func TestProbabilityCombination(t *testing.T) {
	g := graph.New("test", storage.Config{})
	g.AddNode(data.NewNode("a", nil, nil))
	g.AddNode(data.NewNode("b", nil, nil))

	g.AddEdge(data.NewEdge("e1", "a", "b", "NEXT", map[string]interface{}{"weight": 0.5}))

	m := matrix.FromGraph(g, matrix.Dense)

	sum, err := Multiply(m, matrix.Transpose(matrix.Transpose(m)), Probability)
	if err != nil {
		t.Error(err)
		return
	}
	if sum == nil {
		t.Error("Expected a result matrix")
		return
	}
}

func TestCustomSemiring(t *testing.T) {
	g := abcGraph(t)
	m := matrix.FromGraph(g, matrix.Dense)

	maxPlus := Custom("max-plus", math.Inf(-1), 0,
		func(a, b float64) float64 {
			if a > b {
				return a
			}
			return b
		},
		func(a, b float64) float64 { return a + b })

	if _, err := Multiply(m, m, maxPlus); err != nil {
		t.Error(err)
		return
	}
}

func TestMultiplyIncompatibleMapping(t *testing.T) {
	g1 := abcGraph(t)
	g2 := graph.New("other", storage.Config{})
	g2.AddNode(data.NewNode("x", nil, nil))

	m1 := matrix.FromGraph(g1, matrix.Dense)
	m2 := matrix.FromGraph(g2, matrix.Dense)

	if _, err := Multiply(m1, m2, Boolean); err == nil {
		t.Error("Expected an error for mismatched node mappings")
		return
	}
}
