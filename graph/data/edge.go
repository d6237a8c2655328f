/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import (
	"bytes"
	"fmt"
	"time"
)

/*
EdgeId identifies an Edge uniquely within a Graph.
*/
type EdgeId = string

/*
Edge models a directed, typed edge connecting two nodes.
*/
type Edge interface {

	/*
		Id returns the unique id of this edge.
	*/
	Id() EdgeId

	/*
		From returns the id of the edge's source node.
	*/
	From() NodeId

	/*
		To returns the id of the edge's target node.
	*/
	To() NodeId

	/*
		RelationshipType returns the single relationship type of this edge.
	*/
	RelationshipType() string

	/*
		Properties returns the property map of this edge. The returned map
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
		OtherEnd returns the id of the endpoint on the other side from the
		given node id, or "" if id is neither endpoint.
	*/
	OtherEnd(id NodeId) NodeId

	/*
		Touch bumps UpdatedAt to now.
	*/
	Touch()

	/*
		IndexMap returns a string-keyed view of this edge's properties.
	*/
	IndexMap() map[string]string

	/*
		String returns a human-readable representation of this edge.
	*/
	String() string
}

/*
EdgeWeightKey is the reserved property key matrix construction reads to
derive an edge weight (§4.4). EdgeWeightAltKey is consulted when the
primary key is absent, matching the "alternate key variant" language of
the specification.
*/
const (
	EdgeWeightKey    = "weight"
	EdgeWeightAltKey = "Weight"
)

/*
graphEdge is the minimal implementation of the Edge interface.
*/
type graphEdge struct {
	id         EdgeId
	from       NodeId
	to         NodeId
	relType    string
	properties map[string]interface{}
	createdAt  time.Time
	updatedAt  time.Time
}

/*
NewEdge creates a new Edge. Both timestamps are set to now.
*/
func NewEdge(id EdgeId, from, to NodeId, relType string,
	properties map[string]interface{}) Edge {

	now := time.Now()
	return NewEdgeAt(id, from, to, relType, properties, now, now)
}

/*
NewEdgeAt creates a new Edge with explicit timestamps.
*/
func NewEdgeAt(id EdgeId, from, to NodeId, relType string,
	properties map[string]interface{}, createdAt, updatedAt time.Time) Edge {

	props := make(map[string]interface{}, len(properties))
	for k, v := range properties {
		props[k] = v
	}

	return &graphEdge{id, from, to, relType, props, createdAt, updatedAt}
}

func (e *graphEdge) Id() EdgeId {
	return e.id
}

func (e *graphEdge) From() NodeId {
	return e.from
}

func (e *graphEdge) To() NodeId {
	return e.to
}

func (e *graphEdge) RelationshipType() string {
	return e.relType
}

func (e *graphEdge) Properties() map[string]interface{} {
	return e.properties
}

func (e *graphEdge) Property(key string) (interface{}, bool) {
	val, ok := e.properties[key]
	return val, ok
}

func (e *graphEdge) SetProperty(key string, val interface{}) {
	if val == nil {
		delete(e.properties, key)
	} else {
		e.properties[key] = val
	}
	e.updatedAt = time.Now()
}

func (e *graphEdge) CreatedAt() time.Time {
	return e.createdAt
}

func (e *graphEdge) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *graphEdge) Touch() {
	e.updatedAt = time.Now()
}

func (e *graphEdge) OtherEnd(id NodeId) NodeId {
	if id == e.from {
		return e.to
	}
	if id == e.to {
		return e.from
	}
	return ""
}

func (e *graphEdge) IndexMap() map[string]string {
	ret := make(map[string]string)
	for attr, val := range e.properties {
		if st, ok := stringify(val); ok {
			ret[attr] = st
		}
	}
	return ret
}

func (e *graphEdge) String() string {
	var buf bytes.Buffer

	buf.WriteString("Edge:\n")
	fmt.Fprintf(&buf, "    id   : %v\n", e.id)
	fmt.Fprintf(&buf, "    from : %v\n", e.from)
	fmt.Fprintf(&buf, "    to   : %v\n", e.to)
	fmt.Fprintf(&buf, "    type : %v\n", e.relType)

	for _, attr := range sortedKeys(e.properties) {
		fmt.Fprintf(&buf, "    %v : %v\n", attr, e.properties[attr])
	}

	return buf.String()
}

/*
Weight reads the weight an edge contributes to matrix construction: the
value of EdgeWeightKey, falling back to EdgeWeightAltKey, defaulting to 1.
Only numeric values are honored; anything else falls back to the default.
*/
func Weight(e Edge) float64 {
	if v, ok := e.Property(EdgeWeightKey); ok {
		if n, ok := asNumber(v); ok {
			return n
		}
	}
	if v, ok := e.Property(EdgeWeightAltKey); ok {
		if n, ok := asNumber(v); ok {
			return n
		}
	}
	return 1
}
