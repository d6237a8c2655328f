/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/storage"
)

/*
NodeIterator can be used to iterate all nodes of a graph without
materializing them into a slice first.
*/
type NodeIterator struct {
	it *storage.NodeIterator
}

/*
NodeIterator creates a new NodeIterator over the current contents of g.
*/
func (g *Graph) NodeIterator() *NodeIterator {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return &NodeIterator{g.store.NewNodeIterator()}
}

/*
HasNext returns whether there is a next node to visit.
*/
func (it *NodeIterator) HasNext() bool {
	return it.it.HasNext()
}

/*
Next returns the next node, or nil once exhausted.
*/
func (it *NodeIterator) Next() data.Node {
	return it.it.Next()
}

/*
EdgeIterator can be used to iterate all edges of a graph without
materializing them into a slice first.
*/
type EdgeIterator struct {
	it *storage.EdgeIterator
}

/*
EdgeIterator creates a new EdgeIterator over the current contents of g.
*/
func (g *Graph) EdgeIterator() *EdgeIterator {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return &EdgeIterator{g.store.NewEdgeIterator()}
}

/*
HasNext returns whether there is a next edge to visit.
*/
func (it *EdgeIterator) HasNext() bool {
	return it.it.HasNext()
}

/*
Next returns the next edge, or nil once exhausted.
*/
func (it *EdgeIterator) Next() data.Edge {
	return it.it.Next()
}
