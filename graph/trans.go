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
	"fmt"
	"sync"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/graphlite/graph/data"
)

/*
idCounter is a simple counter used to hand out transaction ids.
*/
var idCounter uint64
var idCounterLock sync.Mutex

/*
Transaction groups multiple node/edge operations and applies them in one
pass against a Graph. Unlike the teacher's disk-backed transaction, this
is grouping for aggregate error reporting only - each queued operation
still takes the graph lock on its own, and there is no rollback. Transactional rollback is explicitly out of scope
(§1's Non-goals); a caller that needs all-or-nothing semantics must
check every op's result before calling Commit, or discard the
Transaction on the first failure it cares about.
*/
type Transaction struct {
	id string
	g  *Graph

	storeNodes  []data.Node
	removeNodes []data.NodeId
	storeEdges  []data.Edge
	removeEdges []data.EdgeId
}

/*
NewTransaction creates a new, empty Transaction against g.
*/
func NewTransaction(g *Graph) *Transaction {
	idCounterLock.Lock()
	idCounter++
	id := fmt.Sprint(idCounter)
	idCounterLock.Unlock()

	return &Transaction{id: id, g: g}
}

/*
ID returns a unique transaction id.
*/
func (t *Transaction) ID() string {
	return t.id
}

/*
String returns a human-readable summary of this transaction's size.
*/
func (t *Transaction) String() string {
	sn, se, rn, re := t.Counts()
	return fmt.Sprintf("Transaction %v - Nodes: I:%v R:%v - Edges: I:%v R:%v",
		t.id, sn, rn, se, re)
}

/*
Counts returns the transaction size: nodes to store, edges to store,
nodes to remove, edges to remove.
*/
func (t *Transaction) Counts() (int, int, int, int) {
	return len(t.storeNodes), len(t.storeEdges), len(t.removeNodes), len(t.removeEdges)
}

/*
IsEmpty reports whether this transaction has no queued operations.
*/
func (t *Transaction) IsEmpty() bool {
	sn, se, rn, re := t.Counts()
	return sn == 0 && se == 0 && rn == 0 && re == 0
}

/*
StoreNode queues a node to be added.
*/
func (t *Transaction) StoreNode(n data.Node) {
	t.storeNodes = append(t.storeNodes, n)
}

/*
RemoveNode queues a node to be deleted.
*/
func (t *Transaction) RemoveNode(id data.NodeId) {
	t.removeNodes = append(t.removeNodes, id)
}

/*
StoreEdge queues an edge to be added.
*/
func (t *Transaction) StoreEdge(e data.Edge) {
	t.storeEdges = append(t.storeEdges, e)
}

/*
RemoveEdge queues an edge to be deleted.
*/
func (t *Transaction) RemoveEdge(id data.EdgeId) {
	t.removeEdges = append(t.removeEdges, id)
}

/*
Commit applies every queued operation against the underlying Graph in
the order store-nodes, store-edges, remove-edges, remove-nodes (edges
before the nodes that might still reference them are removed, so a
queued node removal never races its own edges). Every failure is
collected into a single CompositeError rather than aborting on the
first one, so a caller inspecting a failed commit sees every problem,
not just the first.
*/
func (t *Transaction) Commit() error {
	if t.IsEmpty() {
		return nil
	}

	cerr := errorutil.NewCompositeError()

	for _, n := range t.storeNodes {
		if err := t.g.AddNode(n); err != nil {
			cerr.Add(err)
		}
	}

	for _, e := range t.storeEdges {
		if err := t.g.AddEdge(e); err != nil {
			cerr.Add(err)
		}
	}

	for _, id := range t.removeEdges {
		if err := t.g.DeleteEdge(id); err != nil {
			cerr.Add(err)
		}
	}

	for _, id := range t.removeNodes {
		if err := t.g.DeleteNode(id); err != nil {
			cerr.Add(err)
		}
	}

	t.storeNodes = nil
	t.storeEdges = nil
	t.removeEdges = nil
	t.removeNodes = nil

	if cerr.HasErrors() {
		return cerr
	}

	return nil
}
