/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package executor

import (
	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/query/ast"
)

/*
matchesNode reports whether n carries every label and every property
value a NodePat demands.
*/
func matchesNode(n data.Node, pat ast.NodePat) bool {
	for _, label := range pat.Labels {
		if !n.HasLabel(label) {
			return false
		}
	}

	for key, want := range pat.Properties {
		got, ok := n.Property(key)
		if !ok || !data.Equal(got, want) {
			return false
		}
	}

	return true
}

/*
matchesEdge reports whether e's relationship type (if the pattern
names one) and properties satisfy an EdgePat.
*/
func matchesEdge(e data.Edge, pat ast.EdgePat) bool {
	if pat.RelType != "" && e.RelationshipType() != pat.RelType {
		return false
	}

	for key, want := range pat.Properties {
		got, ok := e.Property(key)
		if !ok || !data.Equal(got, want) {
			return false
		}
	}

	return true
}
