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
	"github.com/krotik/graphlite/graph/util"
)

/*
EdgeFilter narrows an edge scan. Every set field must match; the zero
value matches every edge. Edge listing is always a full scan with
predicates, per §4.2 - there is no edge-type index.
*/
type EdgeFilter struct {
	RelationshipType string
	From             data.NodeId
	To               data.NodeId
	PropertyKey      string
	PropertyValue    interface{}
	HasProperty      bool
}

func (f EdgeFilter) matches(e data.Edge) bool {
	if f.RelationshipType != "" && e.RelationshipType() != f.RelationshipType {
		return false
	}
	if f.From != "" && e.From() != f.From {
		return false
	}
	if f.To != "" && e.To() != f.To {
		return false
	}
	if f.HasProperty {
		val, ok := e.Property(f.PropertyKey)
		if !ok || !data.Equal(val, f.PropertyValue) {
			return false
		}
	}
	return true
}

/*
AddEdge validates that both endpoints exist, then stores the edge.
Fails with NodeNotFound if either endpoint is missing.

AddEdge holds the graph's write lock across the validation and the
storage write, and DeleteNode takes the same lock, so through the Graph
API an endpoint cannot be deleted in between. Writes made directly
through Store() bypass this lock.
*/
func (g *Graph) AddEdge(e data.Edge) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if err := checkEdge(e); err != nil {
		return err
	}

	if _, err := g.store.GetNode(e.From()); err != nil {
		return &util.GraphError{Type: util.ErrNodeNotFound, Detail: "edge endpoint " + e.From() + " does not exist"}
	}

	if _, err := g.store.GetNode(e.To()); err != nil {
		return &util.GraphError{Type: util.ErrNodeNotFound, Detail: "edge endpoint " + e.To() + " does not exist"}
	}

	if err := g.store.PutEdge(e); err != nil {
		return err
	}

	g.rules.fire(EventEdgeCreated, e)

	return nil
}

/*
GetEdge fetches a single edge by id.
*/
func (g *Graph) GetEdge(id data.EdgeId) (data.Edge, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return g.store.GetEdge(id)
}

/*
DeleteEdge removes a single edge.
*/
func (g *Graph) DeleteEdge(id data.EdgeId) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.deleteEdgeLocked(id)
}

func (g *Graph) deleteEdgeLocked(id data.EdgeId) error {
	e, err := g.store.GetEdge(id)
	if err != nil {
		return err
	}

	if err := g.store.DeleteEdge(id); err != nil {
		return err
	}

	g.rules.fire(EventEdgeDeleted, e)

	return nil
}

/*
ListEdges returns edges matching filter via a full scan, per §4.2.
*/
func (g *Graph) ListEdges(filter EdgeFilter) []data.Edge {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	edges := g.store.AllEdges()
	out := make([]data.Edge, 0, len(edges))
	for _, e := range edges {
		if filter.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

/*
GetOutgoingEdges returns the edges for which id is the From endpoint.
*/
func (g *Graph) GetOutgoingEdges(id data.NodeId) ([]data.Edge, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if _, err := g.store.GetNode(id); err != nil {
		return nil, err
	}

	adj := g.store.Adjacency(id)
	return g.resolveEdges(adj.Out), nil
}

/*
GetIncomingEdges returns the edges for which id is the To endpoint.
*/
func (g *Graph) GetIncomingEdges(id data.NodeId) ([]data.Edge, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if _, err := g.store.GetNode(id); err != nil {
		return nil, err
	}

	adj := g.store.Adjacency(id)
	return g.resolveEdges(adj.In), nil
}

func (g *Graph) resolveEdges(ids []data.EdgeId) []data.Edge {
	edges := make([]data.Edge, 0, len(ids))
	for _, id := range ids {
		if e, err := g.store.GetEdge(id); err == nil {
			edges = append(edges, e)
		}
	}
	return edges
}

/*
GetEdgesForNode returns every edge incident to id, deduplicated.
*/
func (g *Graph) GetEdgesForNode(id data.NodeId) []data.Edge {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return g.store.GetEdgesForNode(id)
}
