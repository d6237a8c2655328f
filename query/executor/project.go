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
	"github.com/krotik/graphlite/graph/util"
	"github.com/krotik/graphlite/query/ast"
)

/*
project turns surviving bindings into rows keyed by each return item's
canonical column name. A query with at least one aggregation item
collapses to a single row - there is no GROUP BY in the grammar, so an
aggregation always reduces over the whole surviving result set.
*/
func project(bindings []Binding, items []ast.ReturnItem) ([]Row, []string, error) {
	columns := make([]string, len(items))
	hasAgg := false
	for i, it := range items {
		columns[i] = it.ColumnName()
		if it.Kind == ast.ReturnAggregation {
			hasAgg = true
		}
	}

	if hasAgg {
		row, err := projectAggregateRow(bindings, items)
		if err != nil {
			return nil, nil, err
		}
		return []Row{row}, columns, nil
	}

	rows := make([]Row, 0, len(bindings))
	for _, b := range bindings {
		vals := make([]interface{}, len(items))
		for i, it := range items {
			v, err := projectItem(b, it)
			if err != nil {
				return nil, nil, err
			}
			vals[i] = v
		}
		rows = append(rows, Row{Values: vals})
	}

	return rows, columns, nil
}

func projectItem(b Binding, it ast.ReturnItem) (interface{}, error) {
	switch it.Kind {

	case ast.ReturnVariable:
		return b[it.Variable], nil

	case ast.ReturnProperty:
		bound, ok := b[it.Variable]
		if !ok {
			return nil, nil
		}
		return propertyOf(bound, it.Property), nil

	case ast.ReturnAggregation:
		return nil, nil
	}

	return nil, &util.GraphError{Type: util.ErrUnsupportedPattern, Detail: "unknown return item kind"}
}

func propertyOf(bound interface{}, key string) interface{} {
	switch v := bound.(type) {
	case data.Node:
		val, _ := v.Property(key)
		return val
	case data.Edge:
		val, _ := v.Property(key)
		return val
	}
	return nil
}

func hasProperty(bound interface{}, key string) bool {
	switch v := bound.(type) {
	case data.Node:
		_, ok := v.Property(key)
		return ok
	case data.Edge:
		_, ok := v.Property(key)
		return ok
	}
	return false
}

func projectAggregateRow(bindings []Binding, items []ast.ReturnItem) (Row, error) {
	vals := make([]interface{}, len(items))

	for i, it := range items {
		if it.Kind != ast.ReturnAggregation {
			if len(bindings) == 0 {
				continue
			}
			v, err := projectItem(bindings[0], it)
			if err != nil {
				return Row{}, err
			}
			vals[i] = v
			continue
		}

		vals[i] = aggregate(bindings, it)
	}

	return Row{Values: vals}, nil
}

func aggregate(bindings []Binding, it ast.ReturnItem) interface{} {
	if it.AggFunc == "count" {
		n := 0
		for _, b := range bindings {
			if _, ok := b[it.Variable]; ok {
				n++
			}
		}
		return int64(n)
	}

	nums := aggregateOperands(bindings, it)

	switch it.AggFunc {
	case "sum":
		var s float64
		for _, n := range nums {
			s += n
		}
		return s

	case "avg":
		if len(nums) == 0 {
			return float64(0)
		}
		var s float64
		for _, n := range nums {
			s += n
		}
		return s / float64(len(nums))

	case "min":
		if len(nums) == 0 {
			return nil
		}
		m := nums[0]
		for _, n := range nums[1:] {
			if n < m {
				m = n
			}
		}
		return m

	case "max":
		if len(nums) == 0 {
			return nil
		}
		m := nums[0]
		for _, n := range nums[1:] {
			if n > m {
				m = n
			}
		}
		return m
	}

	return nil
}

func aggregateOperands(bindings []Binding, it ast.ReturnItem) []float64 {
	nums := make([]float64, 0, len(bindings))

	for _, b := range bindings {
		bound, ok := b[it.Variable]
		if !ok {
			continue
		}

		var raw interface{}
		if it.Property != "" {
			raw = propertyOf(bound, it.Property)
		} else {
			raw = bound
		}

		if n, ok := toFloat64(raw); ok {
			nums = append(nums, n)
		}
	}

	return nums
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
