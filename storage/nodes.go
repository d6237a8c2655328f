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
PutNode inserts n into the nodes table and indexes its labels and
properties. Rejects with AlreadyExists if a node with the same id is
already stored - the specification's preferred duplicate-insertion
policy (see open question in §9); callers that want overwrite semantics
should delete-then-insert explicitly, which keeps stale index entries
from accumulating.
*/
func (s *Storage) PutNode(n data.Node) error {
	s.nodesMu.Lock()
	defer s.nodesMu.Unlock()

	if _, ok := s.nodes[n.Id()]; ok {
		return alreadyExists(fmt.Sprintf("node %v already exists", n.Id()))
	}

	s.nodes[n.Id()] = n

	s.indexLabels(n)
	s.indexProperties(n.Id(), n.Properties())

	return nil
}

/*
GetNode returns the node stored under id, or NotFound if absent.
*/
func (s *Storage) GetNode(id data.NodeId) (data.Node, error) {
	s.nodesMu.RLock()
	defer s.nodesMu.RUnlock()

	n, ok := s.nodes[id]
	if !ok {
		return nil, notFound(fmt.Sprintf("node %v not found", id))
	}

	return n, nil
}

/*
DeleteNode removes the node stored under id along with its label and
property index entries and its adjacency record. It does not delete
incident edges - callers (graph.Graph) must remove those first so that
readers never observe a dangling edge.
*/
func (s *Storage) DeleteNode(id data.NodeId) error {
	s.nodesMu.Lock()
	defer s.nodesMu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return notFound(fmt.Sprintf("node %v not found", id))
	}

	s.unindexLabels(n)
	s.unindexProperties(id, n.Properties())

	s.adjacencyMu.Lock()
	delete(s.adjacency, id)
	s.adjacencyMu.Unlock()

	delete(s.nodes, id)

	return nil
}

/*
AllNodes returns every node in the table, in unspecified order (callers
needing a stable order should sort by id).
*/
func (s *Storage) AllNodes() []data.Node {
	s.nodesMu.RLock()
	defer s.nodesMu.RUnlock()

	nodes := make([]data.Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

/*
NodeCount returns the number of nodes currently stored.
*/
func (s *Storage) NodeCount() int {
	s.nodesMu.RLock()
	defer s.nodesMu.RUnlock()

	return len(s.nodes)
}

func (s *Storage) indexLabels(n data.Node) {
	s.labelMu.Lock()
	defer s.labelMu.Unlock()

	for _, label := range n.Labels() {
		ids, ok := s.labelIndex[label]
		if !ok {
			ids = make(map[data.NodeId]struct{})
			s.labelIndex[label] = ids
		}
		ids[n.Id()] = struct{}{}
	}
}

func (s *Storage) unindexLabels(n data.Node) {
	s.labelMu.Lock()
	defer s.labelMu.Unlock()

	for _, label := range n.Labels() {
		if ids, ok := s.labelIndex[label]; ok {
			delete(ids, n.Id())
			if len(ids) == 0 {
				delete(s.labelIndex, label)
			}
		}
	}
}

func (s *Storage) indexProperties(id data.NodeId, properties map[string]interface{}) {
	s.propertyMu.Lock()
	defer s.propertyMu.Unlock()

	for k, v := range properties {
		pk := propertyIndexKey(k, v)
		ids, ok := s.propertyIndex[pk]
		if !ok {
			ids = make(map[data.NodeId]struct{})
			s.propertyIndex[pk] = ids
		}
		ids[id] = struct{}{}
	}
}

func (s *Storage) unindexProperties(id data.NodeId, properties map[string]interface{}) {
	s.propertyMu.Lock()
	defer s.propertyMu.Unlock()

	for k, v := range properties {
		pk := propertyIndexKey(k, v)
		if ids, ok := s.propertyIndex[pk]; ok {
			delete(ids, id)
			if len(ids) == 0 {
				delete(s.propertyIndex, pk)
			}
		}
	}
}

/*
propertyIndexKey builds a comparable map key for the (key, value) pair.
Values are compared by structural equality per the specification, which
fmt.Sprintf("%v", ...) approximates well enough for the scalar and
composite kinds a property map may hold (this is a lookup-bucket key,
not the equality check itself - callers must still confirm a candidate
node's actual property value matches).
*/
func propertyIndexKey(key string, value interface{}) string {
	return fmt.Sprintf("%s\x00%v", key, value)
}
