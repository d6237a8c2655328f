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

	"github.com/krotik/graphlite/storage"
)

func TestNewGraph(t *testing.T) {
	g := New("mygraph", storage.Config{})

	if g.Name() != "mygraph" {
		t.Error("Unexpected graph name:", g.Name())
		return
	}

	if g.Store() == nil {
		t.Error("Expected a non-nil store")
		return
	}

	rules := g.rules.Rules()
	if len(rules) != 2 {
		t.Error("Expected exactly the two built-in rules to be registered:", rules)
		return
	}
}

func TestSetRuleOverride(t *testing.T) {
	g := New("mygraph", storage.Config{})

	before := len(g.rules.Rules())

	g.SetRule(&countingRule{counter: new(int)})

	if len(g.rules.Rules()) != before+1 {
		t.Error("Expected registering a new rule to grow the rule set")
		return
	}

	// Registering another rule under the same name replaces it rather
	// than growing the set further.
	g.SetRule(&countingRule{counter: new(int)})

	if len(g.rules.Rules()) != before+1 {
		t.Error("Expected re-registering a rule by name to replace, not add:", g.rules.Rules())
		return
	}
}
