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
	"strings"
	"testing"

	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/storage"
)

func TestTransactionEmpty(t *testing.T) {
	g := New("test", storage.Config{})
	tr := NewTransaction(g)

	if !tr.IsEmpty() {
		t.Error("A freshly created transaction should be empty")
		return
	}

	if err := tr.Commit(); err != nil {
		t.Error("Committing an empty transaction should never fail:", err)
		return
	}
}

func TestTransactionBatchesNodesAndEdges(t *testing.T) {
	g := New("test", storage.Config{})
	tr := NewTransaction(g)

	tr.StoreNode(data.NewNode("alice", []string{"Person"}, nil))
	tr.StoreNode(data.NewNode("bob", []string{"Person"}, nil))
	tr.StoreEdge(data.NewEdge("e1", "alice", "bob", "KNOWS", nil))

	sn, se, rn, re := tr.Counts()
	if sn != 2 || se != 1 || rn != 0 || re != 0 {
		t.Error("Unexpected transaction counts:", sn, se, rn, re)
		return
	}

	if err := tr.Commit(); err != nil {
		t.Error(err)
		return
	}

	if !tr.IsEmpty() {
		t.Error("Transaction should be empty after a successful commit")
		return
	}

	if _, err := g.GetNode("alice"); err != nil {
		t.Error("Expected alice to have been stored:", err)
		return
	}

	if _, err := g.GetEdge("e1"); err != nil {
		t.Error("Expected e1 to have been stored:", err)
		return
	}
}

func TestTransactionRemovals(t *testing.T) {
	g := New("test", storage.Config{})

	g.AddNode(data.NewNode("alice", nil, nil))
	g.AddNode(data.NewNode("bob", nil, nil))
	g.AddEdge(data.NewEdge("e1", "alice", "bob", "KNOWS", nil))

	tr := NewTransaction(g)
	tr.RemoveEdge("e1")
	tr.RemoveNode("alice")
	tr.RemoveNode("bob")

	if err := tr.Commit(); err != nil {
		t.Error(err)
		return
	}

	if _, err := g.GetNode("alice"); err == nil {
		t.Error("Expected alice to have been removed")
		return
	}

	if _, err := g.GetNode("bob"); err == nil {
		t.Error("Expected bob to have been removed")
		return
	}
}

func TestTransactionCollectsAllErrors(t *testing.T) {
	g := New("test", storage.Config{})
	g.AddNode(data.NewNode("alice", nil, nil))

	tr := NewTransaction(g)

	// Both of these should fail: alice already exists, and the node to
	// remove does not exist - the transaction must report both instead of
	// stopping at the first.
	tr.StoreNode(data.NewNode("alice", nil, nil))
	tr.RemoveNode("nonexistent")

	err := tr.Commit()
	if err == nil {
		t.Error("Expected the transaction to fail")
		return
	}

	msg := err.Error()
	if !strings.Contains(msg, "alice") || !strings.Contains(msg, "nonexistent") {
		t.Error("Expected the composite error to mention the failing operations:", msg)
		return
	}
}

func TestTransactionID(t *testing.T) {
	g := New("test", storage.Config{})

	tr1 := NewTransaction(g)
	tr2 := NewTransaction(g)

	if tr1.ID() == tr2.ID() {
		t.Error("Expected distinct transactions to get distinct ids")
		return
	}

	if tr1.String() == "" {
		t.Error("Expected a non-empty summary string")
		return
	}
}
