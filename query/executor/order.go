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
	"sort"

	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/query/ast"
)

/*
applyOrder sorts rows by order_by pairs with lexicographic tie-break,
using a stable sort so rows that compare equal on every term keep
their relative order.
*/
func applyOrder(rows []Row, columns []string, orderBy []ast.OrderTerm) []Row {
	if len(orderBy) == 0 {
		return rows
	}

	indices := make([]int, len(orderBy))
	for i, term := range orderBy {
		indices[i] = columnIndex(columns, term.Column)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for k, term := range orderBy {
			idx := indices[k]
			if idx < 0 {
				continue
			}

			a, b := rows[i].Values[idx], rows[j].Values[idx]
			if data.Equal(a, b) {
				continue
			}

			if term.Descending {
				return data.Less(b, a)
			}
			return data.Less(a, b)
		}
		return false
	})

	return rows
}

func columnIndex(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}

/*
applySkipLimit drops skip rows then takes at most limit rows. Either
clause being nil is a no-op, per §4.8.
*/
func applySkipLimit(rows []Row, skip, limit *int) []Row {
	if skip != nil {
		n := *skip
		if n < 0 {
			n = 0
		}
		if n >= len(rows) {
			rows = rows[:0]
		} else {
			rows = rows[n:]
		}
	}

	if limit != nil {
		n := *limit
		if n < 0 {
			n = 0
		}
		if n < len(rows) {
			rows = rows[:n]
		}
	}

	return rows
}
