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
	"github.com/google/uuid"

	"github.com/krotik/graphlite/graph/data"
)

/*
NewNodeId generates a fresh random node id for callers that have no
natural identity to assign, e.g. a node created purely to anchor a
relationship.
*/
func NewNodeId() data.NodeId {
	return uuid.New().String()
}

/*
NewEdgeId generates a fresh random edge id.
*/
func NewEdgeId() data.EdgeId {
	return uuid.New().String()
}
