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
)

/*
NodeFilter narrows a node scan. Exactly one of Label, PropertyKey (with
PropertyValue) should be set; the zero value matches every node. Setting
more than one field falls back to a full scan filtered by predicate,
which is intentionally not index-accelerated - see ListNodes.
*/
type NodeFilter struct {
	Label         string
	PropertyKey   string
	PropertyValue interface{}
	HasProperty   bool
}

func (f NodeFilter) isEmpty() bool {
	return f.Label == "" && !f.HasProperty
}

func (f NodeFilter) isComposite() bool {
	return f.Label != "" && f.HasProperty
}

func (f NodeFilter) matches(n data.Node) bool {
	if f.Label != "" && !n.HasLabel(f.Label) {
		return false
	}
	if f.HasProperty {
		val, ok := n.Property(f.PropertyKey)
		if !ok || !data.Equal(val, f.PropertyValue) {
			return false
		}
	}
	return true
}

/*
AddNode stores a new node. Fails with AlreadyExists if a node with the
same id is already present (see storage.PutNode).
*/
func (g *Graph) AddNode(n data.Node) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if err := checkNode(n); err != nil {
		return err
	}

	if err := g.store.PutNode(n); err != nil {
		return err
	}

	g.rules.fire(EventNodeCreated, n)

	return nil
}

/*
UpsertNode stores n, overwriting any existing node with the same id.
Performs a full delete-then-insert so label/property index entries never
go stale, per the specification's recommendation for implementations
that choose to support overwrite.
*/
func (g *Graph) UpsertNode(n data.Node) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if err := checkNode(n); err != nil {
		return err
	}

	if _, err := g.store.GetNode(n.Id()); err == nil {
		if err := g.deleteNodeLocked(n.Id()); err != nil {
			return err
		}
	}

	if err := g.store.PutNode(n); err != nil {
		return err
	}

	g.rules.fire(EventNodeCreated, n)

	return nil
}

/*
GetNode fetches a single node by id.
*/
func (g *Graph) GetNode(id data.NodeId) (data.Node, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return g.store.GetNode(id)
}

/*
DeleteNode removes a node and cascades the deletion to every edge
incident to it (ruleDeleteNodeEdges, fired on EventNodeDeleted). The
cascade completes before the node record disappears from storage, so a
reader that still observes the node never observes a dangling edge.
*/
func (g *Graph) DeleteNode(id data.NodeId) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.deleteNodeLocked(id)
}

func (g *Graph) deleteNodeLocked(id data.NodeId) error {
	n, err := g.store.GetNode(id)
	if err != nil {
		return err
	}

	g.rules.fire(EventNodeDeleted, n)

	return g.store.DeleteNode(id)
}

/*
SetNodeProperty sets a property on an existing node and fires
EventNodeUpdated. Node.SetProperty itself bumps UpdatedAt; no built-in
rule handles EventNodeUpdated.
*/
func (g *Graph) SetNodeProperty(id data.NodeId, key string, val interface{}) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	n, err := g.store.GetNode(id)
	if err != nil {
		return err
	}

	n.SetProperty(key, val)
	g.rules.fire(EventNodeUpdated, n)

	return nil
}

/*
ListNodes returns nodes matching filter. No filter performs a full scan;
a single Label or PropertyKey filter uses the corresponding index;
composite filters (both set) fall back to a full scan with the combined
predicate applied - this path is intentionally not index-accelerated.
*/
func (g *Graph) ListNodes(filter NodeFilter) []data.Node {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if filter.isEmpty() {
		return g.store.AllNodes()
	}

	if !filter.isComposite() {
		if filter.Label != "" {
			return g.store.QueryLabel(filter.Label)
		}
		return filterNodes(g.store.QueryProperty(filter.PropertyKey, filter.PropertyValue), filter)
	}

	return filterNodes(g.store.AllNodes(), filter)
}

func filterNodes(nodes []data.Node, filter NodeFilter) []data.Node {
	out := make([]data.Node, 0, len(nodes))
	for _, n := range nodes {
		if filter.matches(n) {
			out = append(out, n)
		}
	}
	return out
}
