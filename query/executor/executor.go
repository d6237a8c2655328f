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
Package executor runs a parsed query/ast.Query against a graph.Graph:
seed candidate bindings from the first pattern node, expand across the
pattern's edges, filter by the where condition, project the return
items into rows, and apply order/skip/limit. Grounded on the
seed-expand-filter-project shape of the teacher's eql/interpreter
package, reworked around ast.Query's discriminated-union conditions
instead of an interpreter tree of Runtime nodes.
*/
package executor

import (
	"time"

	"github.com/krotik/graphlite/graph"
	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/graph/util"
	"github.com/krotik/graphlite/query/ast"
)

/*
Binding maps a pattern variable to the Node or Edge currently bound to
it.
*/
type Binding map[string]interface{}

func (b Binding) clone() Binding {
	out := make(Binding, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	return out
}

/*
Row is one projected result row, columns in the same order as
Result.Columns.
*/
type Row struct {
	Values []interface{}
}

/*
Stats carries the counters the specification requires alongside a
result set.
*/
type Stats struct {
	NodesVisited   int
	EdgesTraversed int
	ExecutionTime  time.Duration
}

/*
Result is the outcome of running a query.
*/
type Result struct {
	Columns []string
	Rows    []Row
	Stats   Stats
}

/*
Execute runs q against g. q.MatchPatterns must contain at most one
pattern - this is the only shape the parser produces - anything wider
fails with util.ErrUnsupportedPattern.
*/
func Execute(g *graph.Graph, q *ast.Query) (*Result, error) {
	start := time.Now()

	ex := &execContext{g: g}

	bindings, err := ex.run(q)
	if err != nil {
		return nil, err
	}

	rows, columns, err := project(bindings, q.ReturnItems)
	if err != nil {
		return nil, err
	}

	rows = applyOrder(rows, columns, q.OrderBy)
	rows = applySkipLimit(rows, q.Skip, q.Limit)

	return &Result{
		Columns: columns,
		Rows:    rows,
		Stats: Stats{
			NodesVisited:   ex.nodesVisited,
			EdgesTraversed: ex.edgesTraversed,
			ExecutionTime:  time.Since(start),
		},
	}, nil
}

type execContext struct {
	g              *graph.Graph
	nodesVisited   int
	edgesTraversed int
}

func (ex *execContext) run(q *ast.Query) ([]Binding, error) {
	var bindings []Binding

	switch len(q.MatchPatterns) {
	case 0:
		bindings = []Binding{{}}

	case 1:
		var err error
		bindings, err = ex.seedAndExpand(q.MatchPatterns[0])
		if err != nil {
			return nil, err
		}

	default:
		return nil, &util.GraphError{Type: util.ErrUnsupportedPattern, Detail: "multiple match patterns are not supported"}
	}

	if q.Where == nil {
		return bindings, nil
	}

	out := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		ok, err := evalCondition(b, q.Where)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (ex *execContext) seedAndExpand(pattern ast.MatchPattern) ([]Binding, error) {
	if len(pattern.Nodes) == 0 {
		return []Binding{{}}, nil
	}
	if len(pattern.Edges) != len(pattern.Nodes)-1 {
		return nil, &util.GraphError{Type: util.ErrUnsupportedPattern, Detail: "edge count does not match a path-shaped pattern"}
	}

	bindings := ex.seed(pattern.Nodes[0])

	for i, edgePat := range pattern.Edges {
		var err error
		bindings, err = ex.expand(bindings, edgePat, pattern.Nodes[i], pattern.Nodes[i+1])
		if err != nil {
			return nil, err
		}
	}

	return bindings, nil
}

func (ex *execContext) seed(nodePat ast.NodePat) []Binding {
	candidates := ex.g.ListNodes(graph.NodeFilter{Label: soleLabel(nodePat.Labels)})

	bindings := make([]Binding, 0, len(candidates))
	for _, n := range candidates {
		ex.nodesVisited++
		if !matchesNode(n, nodePat) {
			continue
		}

		b := Binding{}
		if nodePat.Var != "" {
			b[nodePat.Var] = n
		}
		bindings = append(bindings, b)
	}

	return bindings
}

func soleLabel(labels []string) string {
	if len(labels) == 1 {
		return labels[0]
	}
	return ""
}

func (ex *execContext) expand(bindings []Binding, edgePat ast.EdgePat, fromPat, toPat ast.NodePat) ([]Binding, error) {
	out := []Binding{}

	for _, b := range bindings {
		fromCandidates, err := ex.fromNodesFor(b, fromPat)
		if err != nil {
			return nil, err
		}

		for _, fromNode := range fromCandidates {
			edges, err := ex.candidateEdges(fromNode.Id(), edgePat)
			if err != nil {
				return nil, err
			}

			for _, e := range edges {
				ex.edgesTraversed++
				if !matchesEdge(e, edgePat) {
					continue
				}

				toID := e.OtherEnd(fromNode.Id())
				toNode, err := ex.g.GetNode(toID)
				if err != nil {
					continue
				}

				ex.nodesVisited++
				if !matchesNode(toNode, toPat) {
					continue
				}

				nb := b.clone()
				if fromPat.Var != "" {
					nb[fromPat.Var] = fromNode
				}
				if toPat.Var != "" {
					nb[toPat.Var] = toNode
				}
				if edgePat.Var != "" {
					nb[edgePat.Var] = e
				}
				out = append(out, nb)
			}
		}
	}

	return out, nil
}

func (ex *execContext) fromNodesFor(b Binding, fromPat ast.NodePat) ([]data.Node, error) {
	if fromPat.Var != "" {
		if bound, ok := b[fromPat.Var]; ok {
			n, ok := bound.(data.Node)
			if !ok {
				return nil, &util.GraphError{Type: util.ErrUnsupportedPattern, Detail: "pattern variable " + fromPat.Var + " is not bound to a node"}
			}
			return []data.Node{n}, nil
		}
	}

	candidates := ex.g.ListNodes(graph.NodeFilter{Label: soleLabel(fromPat.Labels)})
	out := make([]data.Node, 0, len(candidates))
	for _, n := range candidates {
		ex.nodesVisited++
		if matchesNode(n, fromPat) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (ex *execContext) candidateEdges(fromID data.NodeId, edgePat ast.EdgePat) ([]data.Edge, error) {
	switch edgePat.Direction {
	case ast.Outgoing:
		return ex.g.GetOutgoingEdges(fromID)

	case ast.Incoming:
		return ex.g.GetIncomingEdges(fromID)

	default:
		return ex.g.GetEdgesForNode(fromID), nil
	}
}
