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

func TestNode(t *testing.T) {
	n := NewNode("alice", []string{"Person", "Person"}, map[string]interface{}{
		"name": "Alice",
		"age":  30,
	})

	if res := n.Id(); res != "alice" {
		t.Error("Unexpected id:", res)
		return
	}

	if labels := n.Labels(); len(labels) != 1 || labels[0] != "Person" {
		t.Error("Labels were not deduplicated:", labels)
		return
	}

	if !n.HasLabel("Person") {
		t.Error("Expected node to have label Person")
		return
	}

	if val, ok := n.Property("name"); !ok || val != "Alice" {
		t.Error("Unexpected property:", val, ok)
		return
	}

	if _, ok := n.Property("missing"); ok {
		t.Error("Expected missing property to be absent")
		return
	}

	created := n.CreatedAt()
	n.SetProperty("age", 31)

	if val, _ := n.Property("age"); val != 31 {
		t.Error("Unexpected property after update:", val)
		return
	}

	if n.UpdatedAt().Before(created) {
		t.Error("UpdatedAt must not precede CreatedAt")
		return
	}

	n.SetProperty("age", nil)

	if _, ok := n.Property("age"); ok {
		t.Error("Expected property to be removed after setting nil")
		return
	}
}

func TestNodeIndexMap(t *testing.T) {
	n := NewNode("acme", []string{"Organization"}, map[string]interface{}{
		"name":  "Acme",
		"years": 12,
	})

	im := n.IndexMap()

	if im["name"] != "Acme" {
		t.Error("Unexpected index map entry for name:", im["name"])
		return
	}

	if im["years"] != "12" {
		t.Error("Unexpected index map entry for years:", im["years"])
		return
	}
}

func TestNodeString(t *testing.T) {
	n := NewNode("alice", []string{"Person"}, map[string]interface{}{"name": "Alice"})

	if res := n.String(); res == "" {
		t.Error("Expected non-empty string representation")
		return
	}
}
