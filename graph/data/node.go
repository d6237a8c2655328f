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
Package data contains the Node and Edge records held by storage and
Graph. A Node carries an id, a set of labels, a schemaless property map
and created/updated timestamps; an Edge additionally carries its two
directed endpoints and a single relationship type. Both are mutated only
through the graphNode/graphEdge setters so that Storage can keep its
indexes in step with whatever a caller changes.
*/
package data

import (
	"bytes"
	"fmt"
	"time"
)

/*
NodeId identifies a Node uniquely within a Graph.
*/
type NodeId = string

/*
Node models a node in the property graph.
*/
type Node interface {

	/*
		Id returns the unique id of this node.
	*/
	Id() NodeId

	/*
		Labels returns the set of labels attached to this node, deduplicated.
	*/
	Labels() []string

	/*
		HasLabel reports whether this node carries the given label.
	*/
	HasLabel(label string) bool

	/*
		Properties returns the property map of this node. The returned map
		must not be mutated by the caller; use SetProperty.
	*/
	Properties() map[string]interface{}

	/*
		Property returns a single property value and whether it was present.
	*/
	Property(key string) (interface{}, bool)

	/*
		SetProperty sets a property value. Setting a nil value removes the
		property. Bumps UpdatedAt.
	*/
	SetProperty(key string, val interface{})

	/*
		CreatedAt returns the creation timestamp.
	*/
	CreatedAt() time.Time

	/*
		UpdatedAt returns the last-modification timestamp.
	*/
	UpdatedAt() time.Time

	/*
		Touch bumps UpdatedAt to now; used by graph rules after structural
		changes (e.g. an incident edge being added) that do not go through
		SetProperty.
	*/
	Touch()

	/*
		IndexMap returns a string-keyed view of this node's properties,
		suitable for building a property index entry.
	*/
	IndexMap() map[string]string

	/*
		String returns a human-readable representation of this node.
	*/
	String() string
}

/*
graphNode is the minimal implementation of the Node interface.
*/
type graphNode struct {
	id         NodeId
	labels     map[string]struct{}
	properties map[string]interface{}
	createdAt  time.Time
	updatedAt  time.Time
}

/*
NewNode creates a new Node with the given id, labels and properties.
Duplicate labels are deduplicated. Both timestamps are set to now.
*/
func NewNode(id NodeId, labels []string, properties map[string]interface{}) Node {
	now := time.Now()
	return NewNodeAt(id, labels, properties, now, now)
}

/*
NewNodeAt creates a new Node with explicit created/updated timestamps,
used by tests and by import paths that need to preserve original
timestamps. The updatedAt >= createdAt invariant is not checked here,
nor by Graph.AddNode.
*/
func NewNodeAt(id NodeId, labels []string, properties map[string]interface{},
	createdAt, updatedAt time.Time) Node {

	lset := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		lset[l] = struct{}{}
	}

	props := make(map[string]interface{}, len(properties))
	for k, v := range properties {
		props[k] = v
	}

	return &graphNode{id, lset, props, createdAt, updatedAt}
}

func (n *graphNode) Id() NodeId {
	return n.id
}

func (n *graphNode) Labels() []string {
	labels := make([]string, 0, len(n.labels))
	for l := range n.labels {
		labels = append(labels, l)
	}
	return labels
}

func (n *graphNode) HasLabel(label string) bool {
	_, ok := n.labels[label]
	return ok
}

func (n *graphNode) Properties() map[string]interface{} {
	return n.properties
}

func (n *graphNode) Property(key string) (interface{}, bool) {
	val, ok := n.properties[key]
	return val, ok
}

func (n *graphNode) SetProperty(key string, val interface{}) {
	if val == nil {
		delete(n.properties, key)
	} else {
		n.properties[key] = val
	}
	n.updatedAt = time.Now()
}

func (n *graphNode) CreatedAt() time.Time {
	return n.createdAt
}

func (n *graphNode) UpdatedAt() time.Time {
	return n.updatedAt
}

func (n *graphNode) Touch() {
	n.updatedAt = time.Now()
}

func (n *graphNode) IndexMap() map[string]string {
	ret := make(map[string]string)
	for attr, val := range n.properties {
		if st, ok := stringify(val); ok {
			ret[attr] = st
		}
	}
	return ret
}

func (n *graphNode) String() string {
	var buf bytes.Buffer

	buf.WriteString("Node:\n")
	fmt.Fprintf(&buf, "    id     : %v\n", n.id)
	fmt.Fprintf(&buf, "    labels : %v\n", n.Labels())

	for _, attr := range sortedKeys(n.properties) {
		fmt.Fprintf(&buf, "    %v : %v\n", attr, n.properties[attr])
	}

	return buf.String()
}
