/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package storage

import (
	"github.com/krotik/common/sortutil"

	"github.com/krotik/graphlite/graph/data"
)

/*
QueryLabel returns the nodes carrying a given label, using the label
index. Ids are sorted before resolution so repeated scans of the same
index come back in a stable order regardless of Go's randomized map
iteration.
*/
func (s *Storage) QueryLabel(label string) []data.Node {
	s.labelMu.RLock()
	ids, ok := s.labelIndex[label]
	var idList []data.NodeId
	if ok {
		idList = make([]data.NodeId, 0, len(ids))
		for id := range ids {
			idList = append(idList, id)
		}
	}
	s.labelMu.RUnlock()

	sortNodeIds(idList)

	return s.resolveNodes(idList)
}

/*
QueryProperty returns the nodes in the property index bucket for (key,
value). The bucket is keyed by the value's %v rendering, so a node whose
value only prints the same (e.g. int64(1) and "1") is returned too;
callers confirm the actual value (see propertyIndexKey). Ids are sorted
before resolution for the same stability reason as QueryLabel.
*/
func (s *Storage) QueryProperty(key string, value interface{}) []data.Node {
	pk := propertyIndexKey(key, value)

	s.propertyMu.RLock()
	ids, ok := s.propertyIndex[pk]
	var idList []data.NodeId
	if ok {
		idList = make([]data.NodeId, 0, len(ids))
		for id := range ids {
			idList = append(idList, id)
		}
	}
	s.propertyMu.RUnlock()

	sortNodeIds(idList)

	return s.resolveNodes(idList)
}

func sortNodeIds(ids []data.NodeId) {
	abstract := make([]interface{}, len(ids))
	for i, id := range ids {
		abstract[i] = id
	}
	sortutil.InterfaceStrings(abstract)
	for i, v := range abstract {
		ids[i] = v.(data.NodeId)
	}
}

func (s *Storage) resolveNodes(ids []data.NodeId) []data.Node {
	s.nodesMu.RLock()
	defer s.nodesMu.RUnlock()

	nodes := make([]data.Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := s.nodes[id]; ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
