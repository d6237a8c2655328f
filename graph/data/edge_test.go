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
	"testing"
)

func TestEdge(t *testing.T) {
	e := NewEdge("e1", "alice", "bob", "KNOWS", map[string]interface{}{
		"since": 2020,
	})

	if res := e.Id(); res != "e1" {
		t.Error("Unexpected id:", res)
		return
	}

	if e.From() != "alice" || e.To() != "bob" {
		t.Error("Unexpected endpoints:", e.From(), e.To())
		return
	}

	if e.RelationshipType() != "KNOWS" {
		t.Error("Unexpected relationship type:", e.RelationshipType())
		return
	}

	if res := e.OtherEnd("alice"); res != "bob" {
		t.Error("Unexpected other end:", res)
		return
	}

	if res := e.OtherEnd("bob"); res != "alice" {
		t.Error("Unexpected other end:", res)
		return
	}

	if res := e.OtherEnd("carol"); res != "" {
		t.Error("Expected empty other end for unrelated node:", res)
		return
	}
}

func TestEdgeWeight(t *testing.T) {
	withWeight := NewEdge("e1", "a", "b", "LINK", map[string]interface{}{"weight": 2.5})
	if res := Weight(withWeight); res != 2.5 {
		t.Error("Unexpected weight:", res)
		return
	}

	withAltWeight := NewEdge("e2", "a", "b", "LINK", map[string]interface{}{"Weight": 4})
	if res := Weight(withAltWeight); res != 4 {
		t.Error("Unexpected weight from alternate key:", res)
		return
	}

	noWeight := NewEdge("e3", "a", "b", "LINK", nil)
	if res := Weight(noWeight); res != 1 {
		t.Error("Expected default weight of 1:", res)
		return
	}

	nonNumeric := NewEdge("e4", "a", "b", "LINK", map[string]interface{}{"weight": "heavy"})
	if res := Weight(nonNumeric); res != 1 {
		t.Error("Expected default weight for non-numeric value:", res)
		return
	}
}
