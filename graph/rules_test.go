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
	"testing"

	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/storage"
)

func TestCascadeDeleteRule(t *testing.T) {
	g := New("test", storage.Config{})

	g.AddNode(data.NewNode("alice", []string{"Person"}, nil))
	g.AddNode(data.NewNode("bob", []string{"Person"}, nil))

	if err := g.AddEdge(data.NewEdge("e1", "alice", "bob", "KNOWS", nil)); err != nil {
		t.Error(err)
		return
	}

	if err := g.DeleteNode("alice"); err != nil {
		t.Error(err)
		return
	}

	if _, err := g.GetEdge("e1"); err == nil {
		t.Error("Expected cascading delete to remove the incident edge")
		return
	}

	if _, err := g.GetNode("bob"); err != nil {
		t.Error("Expected bob to survive the deletion of alice:", err)
		return
	}

	if edges := g.ListEdges(EdgeFilter{}); len(edges) != 0 {
		t.Error("Expected no edges to remain:", edges)
		return
	}
}

func TestUpdateNodeStatsRule(t *testing.T) {
	g := New("test", storage.Config{})

	g.AddNode(data.NewNode("alice", nil, nil))
	g.AddNode(data.NewNode("bob", nil, nil))

	alice, _ := g.GetNode("alice")
	before := alice.UpdatedAt()

	if err := g.AddEdge(data.NewEdge("e1", "alice", "bob", "KNOWS", nil)); err != nil {
		t.Error(err)
		return
	}

	if alice.UpdatedAt().Before(before) {
		t.Error("Expected UpdatedAt to advance after an incident edge was added")
		return
	}
}

func TestCustomRule(t *testing.T) {
	g := New("test", storage.Config{})

	seen := 0
	g.SetRule(&countingRule{counter: &seen})

	g.AddNode(data.NewNode("alice", nil, nil))

	if seen != 1 {
		t.Error("Expected custom rule to observe exactly one node creation:", seen)
		return
	}
}

type countingRule struct {
	counter *int
}

func (r *countingRule) Name() string    { return "test.counting" }
func (r *countingRule) Handles() []int  { return []int{EventNodeCreated} }
func (r *countingRule) Handle(g *Graph, event int, data ...interface{}) error {
	*r.counter++
	return nil
}
