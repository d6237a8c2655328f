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
Package traversal provides BFS-based neighborhood expansion and
unweighted shortest-path search over a graph's adjacency index.
Both operations are pure functions over a *graph.Graph reference -
neither component holds state of its own.
*/
package traversal

import (
	"github.com/krotik/graphlite/graph"
	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/graph/util"
)

/*
Direction constrains which incident edges a hop may follow.
*/
type Direction int

const (
	Out Direction = iota
	In
	Both
)

func neighbors(g *graph.Graph, id data.NodeId, dir Direction) []data.NodeId {
	var ids []data.NodeId

	switch dir {
	case Out:
		for _, e := range mustGetOutgoing(g, id) {
			ids = append(ids, e.To())
		}
	case In:
		for _, e := range mustGetIncoming(g, id) {
			ids = append(ids, e.From())
		}
	default:
		for _, e := range mustGetOutgoing(g, id) {
			ids = append(ids, e.OtherEnd(id))
		}
		for _, e := range mustGetIncoming(g, id) {
			ids = append(ids, e.OtherEnd(id))
		}
	}

	return ids
}

func mustGetOutgoing(g *graph.Graph, id data.NodeId) []data.Edge {
	edges, err := g.GetOutgoingEdges(id)
	if err != nil {
		return nil
	}
	return edges
}

func mustGetIncoming(g *graph.Graph, id data.NodeId) []data.Edge {
	edges, err := g.GetIncomingEdges(id)
	if err != nil {
		return nil
	}
	return edges
}

/*
Neighborhood runs a breadth-first search from start out to maxDepth
hops (inclusive), following edges in the given direction, and returns
every node reached - including start itself at depth 0. A node is
expanded at most once, so the result has no duplicates. Ordering
follows discovery order, which is stable with respect to each node's
adjacency-list insertion order.
*/
func Neighborhood(g *graph.Graph, start data.NodeId, maxDepth int, dir Direction) ([]data.Node, error) {
	startNode, err := g.GetNode(start)
	if err != nil {
		return nil, err
	}

	type queued struct {
		id    data.NodeId
		depth int
	}

	visited := map[data.NodeId]struct{}{start: {}}
	order := []data.Node{startNode}
	queue := []queued{{start, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.depth >= maxDepth {
			continue
		}

		for _, nid := range neighbors(g, cur.id, dir) {
			if _, seen := visited[nid]; seen {
				continue
			}
			visited[nid] = struct{}{}

			n, err := g.GetNode(nid)
			if err != nil {
				continue
			}

			order = append(order, n)
			queue = append(queue, queued{nid, cur.depth + 1})
		}
	}

	return order, nil
}

/*
ShortestPath runs an unweighted, undirected breadth-first search from
from to to - a step may traverse an incident edge in either direction,
regardless of the edge's own direction. Returns the node-id sequence of
a shortest path (length 1, [from], if from == to), or ErrNoPath if the
nodes are not connected. Ties between equally-short paths are broken by
first discovery, i.e. by each node's adjacency-list insertion order.
*/
func ShortestPath(g *graph.Graph, from, to data.NodeId) ([]data.NodeId, error) {
	if _, err := g.GetNode(from); err != nil {
		return nil, err
	}
	if _, err := g.GetNode(to); err != nil {
		return nil, err
	}

	if from == to {
		return []data.NodeId{from}, nil
	}

	type queued struct {
		id   data.NodeId
		path []data.NodeId
	}

	visited := map[data.NodeId]struct{}{from: {}}
	queue := []queued{{from, []data.NodeId{from}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, nid := range neighbors(g, cur.id, Both) {
			if _, seen := visited[nid]; seen {
				continue
			}

			path := append(append([]data.NodeId{}, cur.path...), nid)

			if nid == to {
				return path, nil
			}

			visited[nid] = struct{}{}
			queue = append(queue, queued{nid, path})
		}
	}

	return nil, &util.GraphError{Type: util.ErrNoPath, Detail: "no path from " + from + " to " + to}
}
