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

import (
	"fmt"

	"github.com/krotik/graphlite/graph/data"
)

/*
PutEdge inserts e into the edges table and appends its id to the
adjacency records of both endpoints, creating those records lazily.
*/
func (s *Storage) PutEdge(e data.Edge) error {
	s.edgesMu.Lock()
	s.edges[e.Id()] = e
	s.edgesMu.Unlock()

	s.adjacencyMu.Lock()
	defer s.adjacencyMu.Unlock()

	s.adjacencyRecord(e.From()).Out = append(s.adjacencyRecord(e.From()).Out, e.Id())
	s.adjacencyRecord(e.To()).In = append(s.adjacencyRecord(e.To()).In, e.Id())

	return nil
}

/*
GetEdge returns the edge stored under id, or NotFound if absent.
*/
func (s *Storage) GetEdge(id data.EdgeId) (data.Edge, error) {
	s.edgesMu.RLock()
	defer s.edgesMu.RUnlock()

	e, ok := s.edges[id]
	if !ok {
		return nil, notFound(fmt.Sprintf("edge %v not found", id))
	}

	return e, nil
}

/*
DeleteEdge removes the edge stored under id and removes its id from
both endpoints' adjacency lists. Missing endpoints are tolerated
silently since a cascading node delete may already have removed them.
*/
func (s *Storage) DeleteEdge(id data.EdgeId) error {
	s.edgesMu.Lock()
	e, ok := s.edges[id]
	if !ok {
		s.edgesMu.Unlock()
		return notFound(fmt.Sprintf("edge %v not found", id))
	}
	delete(s.edges, id)
	s.edgesMu.Unlock()

	s.adjacencyMu.Lock()
	defer s.adjacencyMu.Unlock()

	if rec, ok := s.adjacency[e.From()]; ok {
		rec.Out = removeID(rec.Out, id)
	}
	if rec, ok := s.adjacency[e.To()]; ok {
		rec.In = removeID(rec.In, id)
	}

	return nil
}

/*
GetEdgesForNode returns the edges whose id appears in the in or out list
of a node's adjacency record, deduplicated and resolved through the
edges table. Ids whose edge is absent (a torn intermediate state - see
§5) are silently skipped rather than surfaced as errors.
*/
func (s *Storage) GetEdgesForNode(id data.NodeId) []data.Edge {
	s.adjacencyMu.RLock()
	rec, ok := s.adjacency[id]
	var ids []data.EdgeId
	if ok {
		ids = make([]data.EdgeId, 0, len(rec.In)+len(rec.Out))
		seen := make(map[data.EdgeId]struct{}, len(rec.In)+len(rec.Out))
		for _, eid := range append(append([]data.EdgeId{}, rec.Out...), rec.In...) {
			if _, dup := seen[eid]; !dup {
				seen[eid] = struct{}{}
				ids = append(ids, eid)
			}
		}
	}
	s.adjacencyMu.RUnlock()

	s.edgesMu.RLock()
	defer s.edgesMu.RUnlock()

	edges := make([]data.Edge, 0, len(ids))
	for _, eid := range ids {
		if e, ok := s.edges[eid]; ok {
			edges = append(edges, e)
		}
	}

	return edges
}

/*
Adjacency returns a snapshot of the in/out edge ids of a node, or a
zero-valued record if the node has no incident edges.
*/
func (s *Storage) Adjacency(id data.NodeId) AdjacencyRecord {
	s.adjacencyMu.RLock()
	defer s.adjacencyMu.RUnlock()

	rec, ok := s.adjacency[id]
	if !ok {
		return AdjacencyRecord{}
	}

	return AdjacencyRecord{
		In:  append([]data.EdgeId{}, rec.In...),
		Out: append([]data.EdgeId{}, rec.Out...),
	}
}

/*
AllEdges returns every edge in the table, in unspecified order.
*/
func (s *Storage) AllEdges() []data.Edge {
	s.edgesMu.RLock()
	defer s.edgesMu.RUnlock()

	edges := make([]data.Edge, 0, len(s.edges))
	for _, e := range s.edges {
		edges = append(edges, e)
	}
	return edges
}

/*
EdgeCount returns the number of edges currently stored.
*/
func (s *Storage) EdgeCount() int {
	s.edgesMu.RLock()
	defer s.edgesMu.RUnlock()

	return len(s.edges)
}

/*
adjacencyRecord returns the adjacency record for id, creating it lazily.
Callers must hold adjacencyMu.
*/
func (s *Storage) adjacencyRecord(id data.NodeId) *AdjacencyRecord {
	rec, ok := s.adjacency[id]
	if !ok {
		rec = &AdjacencyRecord{}
		s.adjacency[id] = rec
	}
	return rec
}

func removeID(ids []data.EdgeId, target data.EdgeId) []data.EdgeId {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
