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
resolveOperand resolves a literal or a {variable, property?} reference
against the current binding. An unbound variable resolves to nil, not
an error - the condition evaluates to false rather than aborting the
whole pipeline, matching §7's "filtering, not aborting" posture for
invariant-adjacent situations.
*/
func resolveOperand(b Binding, op ast.Operand) interface{} {
	if op.IsLiteral {
		return op.Literal
	}

	bound, ok := b[op.Variable]
	if !ok {
		return nil
	}

	if op.Property == "" {
		return bound
	}

	return propertyOf(bound, op.Property)
}

/*
evalCondition evaluates a condition tree against a binding. Logical
operators short-circuit.
*/
func evalCondition(b Binding, c *ast.Condition) (bool, error) {
	switch c.Kind {

	case ast.ConditionComparison:
		return evalComparison(b, c)

	case ast.ConditionLogical:
		return evalLogical(b, c)

	case ast.ConditionPropertyExists:
		bound, ok := b[c.Variable]
		if !ok {
			return false, nil
		}
		return hasProperty(bound, c.Key), nil
	}

	return false, &util.GraphError{Type: util.ErrUnsupportedPattern, Detail: "unknown condition kind"}
}

func evalComparison(b Binding, c *ast.Condition) (bool, error) {
	left := resolveOperand(b, c.Left)
	right := resolveOperand(b, c.Right)

	switch c.Op {
	case ast.Eq:
		return data.Equal(left, right), nil
	case ast.Neq:
		return !data.Equal(left, right), nil
	case ast.Lt:
		return data.Less(left, right), nil
	case ast.Lte:
		return data.Less(left, right) || data.Equal(left, right), nil
	case ast.Gt:
		return data.Less(right, left), nil
	case ast.Gte:
		return data.Less(right, left) || data.Equal(left, right), nil
	case ast.In:
		list, ok := right.([]interface{})
		if !ok {
			return false, nil
		}
		for _, item := range list {
			if data.Equal(left, item) {
				return true, nil
			}
		}
		return false, nil
	case ast.Contains:
		return data.Contains(left, right), nil
	}

	return false, &util.GraphError{Type: util.ErrUnsupportedPattern, Detail: "unknown comparison operator"}
}

func evalLogical(b Binding, c *ast.Condition) (bool, error) {
	switch c.LogicalOp {
	case ast.Not:
		res, err := evalCondition(b, c.Children[0])
		return !res, err

	case ast.And:
		for _, child := range c.Children {
			res, err := evalCondition(b, child)
			if err != nil {
				return false, err
			}
			if !res {
				return false, nil
			}
		}
		return true, nil

	case ast.Or:
		for _, child := range c.Children {
			res, err := evalCondition(b, child)
			if err != nil {
				return false, err
			}
			if res {
				return true, nil
			}
		}
		return false, nil
	}

	return false, &util.GraphError{Type: util.ErrUnsupportedPattern, Detail: "unknown logical operator"}
}
