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
Package graph contains the main API to the in-memory graph datastore.

Graph API

Graph is a thin coordinator in front of a storage.Storage instance. It
adds referential validation (an edge may not be added unless both
endpoints already exist) and cascading edge deletion (deleting a node
first removes every edge incident to it) on top of Storage's per-table
CRUD.

Rules

Graph rules provide automatic operations which help keep the graph
consistent. Rules trigger on graph events. The rules ruleDeleteNodeEdges
and ruleUpdateNodeStats are automatically loaded when a new Graph is
created. See rules.go for details.

Transactions

A Transaction groups multiple add/delete operations and applies them in
one pass, collecting every failure into a single error rather than
failing fast on the first one. This is grouping for convenience and
aggregate error reporting only - it is not atomic and does not roll
back; transactional rollback is explicitly out of scope.
*/
package graph

import (
	"sync"

	"github.com/krotik/graphlite/storage"
)

/*
VERSION of the graph package's public contract.
*/
const VERSION = 1

// Graph events
// ============

/*
EventNodeCreated is fired when a node is added.

Parameters: created node
*/
const EventNodeCreated = 0x01

/*
EventNodeUpdated is fired when a node's properties change via SetProperty.

Parameters: updated node
*/
const EventNodeUpdated = 0x02

/*
EventNodeDeleted is fired before a node is removed from storage.

Parameters: deleted node
*/
const EventNodeDeleted = 0x03

/*
EventEdgeCreated is fired when an edge is added.

Parameters: created edge
*/
const EventEdgeCreated = 0x04

/*
EventEdgeDeleted is fired after an edge is removed from storage.

Parameters: deleted edge
*/
const EventEdgeDeleted = 0x05

/*
ErrEventHandled is returned by Rule.Handle to signal that it fully
handled an event and no further rules for that event should run.
*/
var ErrEventHandled = &sentinelError{"event was handled by a rule"}

type sentinelError struct{ msg string }

func (e *sentinelError) Error() string { return e.msg }

/*
Graph is a named container owning one Storage instance. Multiple graphs
can coexist in a process, distinguished by Name.
*/
type Graph struct {
	name  string
	store *storage.Storage
	rules *rulesManager
	mutex sync.RWMutex
}

/*
New creates a new, empty Graph with the given name. config supplies the
storage concurrency hints; the zero value is a reasonable default.
*/
func New(name string, config storage.Config) *Graph {
	g := &Graph{
		name:  name,
		store: storage.New(config),
	}

	g.rules = newRulesManager(g)
	g.rules.SetRule(&ruleDeleteNodeEdges{})
	g.rules.SetRule(&ruleUpdateNodeStats{})

	return g
}

/*
Name returns the name of this graph.
*/
func (g *Graph) Name() string {
	return g.name
}

/*
Store exposes the underlying Storage instance for components (matrix,
traversal, query) that need direct, read-only access to the tables.
Mutating callers should go through Graph so that rules and referential
validation keep running.
*/
func (g *Graph) Store() *storage.Storage {
	return g.store
}

/*
SetRule installs an additional graph rule. Built-in rules are already
installed by New; this is an extension point for callers that want to
react to graph events themselves.
*/
func (g *Graph) SetRule(rule Rule) {
	g.rules.SetRule(rule)
}
