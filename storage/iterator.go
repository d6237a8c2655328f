/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package storage

import "github.com/krotik/graphlite/graph/data"

/*
NodeIterator iterates the nodes of a Storage instance without requiring
the caller to materialize the full node slice. It snapshots the id list
at construction time, matching the Matrix component's snapshot
semantics: nodes added after the iterator was created are not visited.
*/
type NodeIterator struct {
	nodes []data.Node
	pos   int
}

/*
NewNodeIterator creates a NodeIterator over the current contents of s.
*/
func (s *Storage) NewNodeIterator() *NodeIterator {
	return &NodeIterator{nodes: s.AllNodes()}
}

/*
HasNext returns whether there is a next node to visit.
*/
func (it *NodeIterator) HasNext() bool {
	return it.pos < len(it.nodes)
}

/*
Next returns the next node, or nil once exhausted.
*/
func (it *NodeIterator) Next() data.Node {
	if !it.HasNext() {
		return nil
	}
	n := it.nodes[it.pos]
	it.pos++
	return n
}

/*
EdgeIterator iterates the edges of a Storage instance.
*/
type EdgeIterator struct {
	edges []data.Edge
	pos   int
}

/*
NewEdgeIterator creates an EdgeIterator over the current contents of s.
*/
func (s *Storage) NewEdgeIterator() *EdgeIterator {
	return &EdgeIterator{edges: s.AllEdges()}
}

/*
HasNext returns whether there is a next edge to visit.
*/
func (it *EdgeIterator) HasNext() bool {
	return it.pos < len(it.edges)
}

/*
Next returns the next edge, or nil once exhausted.
*/
func (it *EdgeIterator) Next() data.Edge {
	if !it.HasNext() {
		return nil
	}
	e := it.edges[it.pos]
	it.pos++
	return e
}
