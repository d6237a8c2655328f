/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package ast holds the data shapes produced by query/parser and consumed
by query/executor: patterns, conditions and return items for the
Cypher-inspired subset this module implements. Condition and ReturnItem
are modeled as discriminated unions (a Kind field selecting which other
fields are meaningful), not as an inheritance hierarchy.
*/
package ast

/*
Query is a parsed query: a path-shaped match pattern, an optional where
condition tree, the items to project, and optional ordering/paging.
*/
type Query struct {
	MatchPatterns []MatchPattern
	Where         *Condition
	ReturnItems   []ReturnItem
	OrderBy       []OrderTerm
	Skip          *int
	Limit         *int
}

/*
MatchPattern is path-shaped: Nodes and Edges alternate, with Edges[i]
connecting Nodes[i] and Nodes[i+1]. A pattern with one node and no
edges is a single-node match.
*/
type MatchPattern struct {
	Nodes []NodePat
	Edges []EdgePat
}

/*
NodePat matches a node that carries every listed label and whose
properties equal every listed (key, value) pair. Var is empty for an
anonymous, unbound node.
*/
type NodePat struct {
	Var        string
	Labels     []string
	Properties map[string]interface{}
}

/*
Direction constrains how an EdgePat's step must relate to the
pattern's current "from" node.
*/
type Direction int

const (
	Outgoing Direction = iota
	Incoming
	Undirected
)

/*
EdgePat matches an edge whose relationship type equals RelType (if
set) and whose properties equal every listed pair. MinHops/MaxHops are
carried for variable-length-hop syntax but, per the implemented
subset, are only ever set through the builder API - the parser does
not produce a pattern with either field non-nil.
*/
type EdgePat struct {
	Var        string
	RelType    string
	Properties map[string]interface{}
	Direction  Direction
	MinHops    *int
	MaxHops    *int
}

/*
ComparisonOp is the operator of a Condition in comparison form.
*/
type ComparisonOp int

const (
	Eq ComparisonOp = iota
	Neq
	Gt
	Gte
	Lt
	Lte
	In
	Contains
)

/*
LogicalOp is the operator of a Condition in logical form.
*/
type LogicalOp int

const (
	And LogicalOp = iota
	Or
	Not
)

/*
ConditionKind selects which of Condition's other fields are populated.
*/
type ConditionKind int

const (
	ConditionComparison ConditionKind = iota
	ConditionLogical
	ConditionPropertyExists
)

/*
Operand is either a literal value or a {variable, property?} reference
resolved against the current binding at evaluation time. A reference
with an empty Property resolves to the bound Node/Edge itself.
*/
type Operand struct {
	IsLiteral bool
	Literal   interface{}

	Variable string
	Property string
}

/*
Condition is a discriminated union over comparison, logical and
property-existence forms. Exactly the fields matching Kind are
meaningful:

  - ConditionComparison: Op, Left, Right
  - ConditionLogical: LogicalOp, Children (one child for Not, two or
    more for And/Or)
  - ConditionPropertyExists: Variable, Key
*/
type Condition struct {
	Kind ConditionKind

	Op    ComparisonOp
	Left  Operand
	Right Operand

	LogicalOp LogicalOp
	Children  []*Condition

	Variable string
	Key      string
}

/*
ReturnItemKind selects which of ReturnItem's other fields are
populated.
*/
type ReturnItemKind int

const (
	ReturnVariable ReturnItemKind = iota
	ReturnProperty
	ReturnAggregation
)

/*
ReturnItem is one projected column. Aggregation is parsed (fn, variable,
key?) but the executor runs it as a single implicit group over the
whole surviving result set - there is no GROUP BY in the grammar.
*/
type ReturnItem struct {
	Kind ReturnItemKind

	Variable string
	Property string

	AggFunc string // "count", "sum", "avg", "min", "max"
}

/*
ColumnName returns the canonical projection column name for a return
item: `v`, `v.k`, `fn(v)` or `fn(v.k)`.
*/
func (r ReturnItem) ColumnName() string {
	switch r.Kind {
	case ReturnProperty:
		return r.Variable + "." + r.Property
	case ReturnAggregation:
		if r.Property != "" {
			return r.AggFunc + "(" + r.Variable + "." + r.Property + ")"
		}
		return r.AggFunc + "(" + r.Variable + ")"
	default:
		return r.Variable
	}
}

/*
OrderTerm is one ORDER BY sort key, referencing a return item's
canonical column name.
*/
type OrderTerm struct {
	Column     string
	Descending bool
}
