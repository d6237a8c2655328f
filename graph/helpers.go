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
	"github.com/krotik/graphlite/graph/util"
)

// Helper functions for Graph
// ===========================

/*
checkNode checks if a given node can be written to the datastore.
Labels carry no charset restriction and are already deduplicated by
data.NewNode, so there is nothing left to validate beyond identity and
properties.
*/
func checkNode(n data.Node) error {
	if n.Id() == "" {
		return &util.GraphError{Type: util.ErrInvalidData, Detail: "Node is missing an id"}
	}

	return checkProperties(n.Properties(), "Node")
}

/*
checkEdge checks if a given edge can be written to the datastore.
*/
func checkEdge(e data.Edge) error {
	if e.Id() == "" {
		return &util.GraphError{Type: util.ErrInvalidData, Detail: "Edge is missing an id"}
	}

	if e.From() == "" || e.To() == "" {
		return &util.GraphError{Type: util.ErrInvalidData, Detail: "Edge is missing an endpoint"}
	}

	if e.RelationshipType() == "" {
		return &util.GraphError{Type: util.ErrInvalidData, Detail: "Edge is missing a relationship type"}
	}

	return checkProperties(e.Properties(), "Edge")
}

/*
checkProperties checks the general properties of a given graph item.
*/
func checkProperties(properties map[string]interface{}, name string) error {
	for attr := range properties {
		if attr == "" {
			return &util.GraphError{Type: util.ErrInvalidData, Detail: name + " contains empty string property name"}
		}
	}

	return nil
}
