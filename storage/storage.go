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
Package storage holds the five concurrent tables backing a graph: the
primary node and edge tables plus the label, property and adjacency
indexes. All mutating operations on a single table are atomic with
respect to concurrent readers of that table; a logical operation that
spans several tables (Graph.AddEdge, Graph.DeleteNode) is only
per-table atomic at this level, not cross-table atomic - package graph
serializes its own multi-table writes with a graph-wide lock (see
Graph.AddEdge).
*/
package storage

import (
	"sync"

	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/graph/util"
)

/*
PropertyKey identifies a (key, value) pair in the property index.
*/
type PropertyKey struct {
	Key   string
	Value interface{}
}

/*
AdjacencyRecord holds the incoming and outgoing edge ids of a node.
*/
type AdjacencyRecord struct {
	In  []data.EdgeId
	Out []data.EdgeId
}

/*
Config are the storage construction hints from the specification's
configuration surface (§6). Both fields are hints only - this
implementation always uses a sync.RWMutex per table (§5's "preferred:
a single writer per table with optimistic concurrent reads"), so the
hints are accepted but do not currently change behavior.
*/
type Config struct {
	ReadConcurrency  bool
	WriteConcurrency bool
}

/*
Storage owns the five tables for one graph. Safe for concurrent use by
multiple goroutines.
*/
type Storage struct {
	config Config

	nodesMu sync.RWMutex
	nodes   map[data.NodeId]data.Node

	edgesMu sync.RWMutex
	edges   map[data.EdgeId]data.Edge

	labelMu    sync.RWMutex
	labelIndex map[string]map[data.NodeId]struct{}

	propertyMu    sync.RWMutex
	propertyIndex map[string]map[data.NodeId]struct{} // keyed by propertyIndexKey(key, value)

	adjacencyMu sync.RWMutex
	adjacency   map[data.NodeId]*AdjacencyRecord
}

/*
New creates a new, empty Storage instance.
*/
func New(config Config) *Storage {
	return &Storage{
		config:        config,
		nodes:         make(map[data.NodeId]data.Node),
		edges:         make(map[data.EdgeId]data.Edge),
		labelIndex:    make(map[string]map[data.NodeId]struct{}),
		propertyIndex: make(map[string]map[data.NodeId]struct{}),
		adjacency:     make(map[data.NodeId]*AdjacencyRecord),
	}
}

/*
notFound builds the NotFound error returned by point lookups and
deletes of absent items.
*/
func notFound(detail string) error {
	return &util.GraphError{Type: util.ErrNotFound, Detail: detail}
}

/*
alreadyExists builds the AlreadyExists error returned by PutNode when a
node with the same id is already stored.
*/
func alreadyExists(detail string) error {
	return &util.GraphError{Type: util.ErrAlreadyExists, Detail: detail}
}
