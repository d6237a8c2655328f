/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import (
	"errors"
	"testing"

	"github.com/krotik/graphlite/graph/util"
	"github.com/krotik/graphlite/query/ast"
)

func TestParseSimpleMatchReturn(t *testing.T) {
	q, err := Parse("MATCH (n:Person) RETURN n")
	if err != nil {
		t.Fatal(err)
	}

	if len(q.MatchPatterns) != 1 {
		t.Fatalf("expected one match pattern, got %v", len(q.MatchPatterns))
	}

	pattern := q.MatchPatterns[0]
	if len(pattern.Nodes) != 1 || len(pattern.Edges) != 0 {
		t.Fatalf("expected a single-node pattern, got %+v", pattern)
	}

	node := pattern.Nodes[0]
	if node.Var != "n" || len(node.Labels) != 1 || node.Labels[0] != "Person" {
		t.Fatalf("unexpected node pattern: %+v", node)
	}

	if q.Where != nil {
		t.Fatalf("expected no where condition, got %+v", q.Where)
	}

	if len(q.ReturnItems) != 1 || q.ReturnItems[0].Kind != ast.ReturnVariable || q.ReturnItems[0].Variable != "n" {
		t.Fatalf("unexpected return items: %+v", q.ReturnItems)
	}
}

func TestParseWhereComparisonAndPropertyReturn(t *testing.T) {
	q, err := Parse("MATCH (n:Person) WHERE n.age = 25 RETURN n.name")
	if err != nil {
		t.Fatal(err)
	}

	if len(q.MatchPatterns) != 1 {
		t.Fatalf("expected one match pattern, got %v", len(q.MatchPatterns))
	}

	pattern := q.MatchPatterns[0]
	if len(pattern.Nodes) != 1 || len(pattern.Edges) != 0 {
		t.Fatalf("expected a single-node pattern, got %+v", pattern)
	}

	if q.Where == nil {
		t.Fatal("expected a where condition")
	}
	if q.Where.Kind != ast.ConditionComparison {
		t.Fatalf("expected a comparison condition, got kind %v", q.Where.Kind)
	}
	if q.Where.Op != ast.Eq {
		t.Fatalf("expected eq, got %v", q.Where.Op)
	}
	if q.Where.Left.Variable != "n" || q.Where.Left.Property != "age" {
		t.Fatalf("unexpected left operand: %+v", q.Where.Left)
	}
	if !q.Where.Right.IsLiteral || q.Where.Right.Literal != int64(25) {
		t.Fatalf("unexpected right operand: %+v", q.Where.Right)
	}

	if len(q.ReturnItems) != 1 {
		t.Fatalf("expected one return item, got %v", q.ReturnItems)
	}
	item := q.ReturnItems[0]
	if item.Kind != ast.ReturnProperty || item.Variable != "n" || item.Property != "name" {
		t.Fatalf("unexpected return item: %+v", item)
	}
}

func TestParseEdgePatternDirections(t *testing.T) {
	cases := []struct {
		query string
		dir   ast.Direction
	}{
		{"MATCH (a)-[r:KNOWS]->(b) RETURN a", ast.Outgoing},
		{"MATCH (a)<-[r:KNOWS]-(b) RETURN a", ast.Incoming},
		{"MATCH (a)-[r:KNOWS]-(b) RETURN a", ast.Undirected},
	}

	for _, c := range cases {
		q, err := Parse(c.query)
		if err != nil {
			t.Errorf("%q: %v", c.query, err)
			continue
		}

		pattern := q.MatchPatterns[0]
		if len(pattern.Edges) != 1 {
			t.Errorf("%q: expected one edge pattern, got %v", c.query, len(pattern.Edges))
			continue
		}
		if pattern.Edges[0].Direction != c.dir {
			t.Errorf("%q: expected direction %v, got %v", c.query, c.dir, pattern.Edges[0].Direction)
		}
		if pattern.Edges[0].RelType != "KNOWS" {
			t.Errorf("%q: expected rel type KNOWS, got %q", c.query, pattern.Edges[0].RelType)
		}
		if len(pattern.Nodes) != 2 {
			t.Errorf("%q: expected two nodes, got %v", c.query, len(pattern.Nodes))
		}
	}
}

func TestParseLogicalOperatorsAndParens(t *testing.T) {
	q, err := Parse("MATCH (n:Person) WHERE n.age > 18 AND (n.name = 'Alice' OR NOT n.active = true) RETURN n")
	if err != nil {
		t.Fatal(err)
	}

	if q.Where.Kind != ast.ConditionLogical || q.Where.LogicalOp != ast.And {
		t.Fatalf("expected a top-level AND, got %+v", q.Where)
	}
	if len(q.Where.Children) != 2 {
		t.Fatalf("expected two children, got %v", len(q.Where.Children))
	}

	right := q.Where.Children[1]
	if right.Kind != ast.ConditionLogical || right.LogicalOp != ast.Or {
		t.Fatalf("expected the parenthesized clause to be an OR, got %+v", right)
	}
}

func TestParseOrderSkipLimit(t *testing.T) {
	q, err := Parse("MATCH (n:Person) RETURN n.name ORDER BY n.name SKIP 1 LIMIT 10")
	if err != nil {
		t.Fatal(err)
	}

	if len(q.OrderBy) != 1 || q.OrderBy[0].Column != "n.name" {
		t.Fatalf("unexpected order by: %+v", q.OrderBy)
	}
	if q.Skip == nil || *q.Skip != 1 {
		t.Fatalf("unexpected skip: %+v", q.Skip)
	}
	if q.Limit == nil || *q.Limit != 10 {
		t.Fatalf("unexpected limit: %+v", q.Limit)
	}
}

func TestParseAggregationReturnItem(t *testing.T) {
	q, err := Parse("MATCH (n:Person) RETURN count(n)")
	if err != nil {
		t.Fatal(err)
	}

	item := q.ReturnItems[0]
	if item.Kind != ast.ReturnAggregation || item.AggFunc != "count" || item.Variable != "n" {
		t.Fatalf("unexpected return item: %+v", item)
	}
	if item.ColumnName() != "count(n)" {
		t.Fatalf("unexpected column name: %v", item.ColumnName())
	}
}

func TestParseComparisonOperators(t *testing.T) {
	cases := map[string]ast.ComparisonOp{
		"=":  ast.Eq,
		"!=": ast.Neq,
		"<>": ast.Neq,
		">":  ast.Gt,
		">=": ast.Gte,
		"<":  ast.Lt,
		"<=": ast.Lte,
	}

	for op, want := range cases {
		q, err := Parse("MATCH (n:Person) WHERE n.age " + op + " 1 RETURN n")
		if err != nil {
			t.Errorf("%q: %v", op, err)
			continue
		}
		if q.Where.Op != want {
			t.Errorf("%q: expected %v, got %v", op, want, q.Where.Op)
		}
	}
}

func TestParseInAndContains(t *testing.T) {
	q, err := Parse("MATCH (n:Person) WHERE n.name IN ['Alice', 'Bob'] RETURN n")
	if err != nil {
		t.Fatal(err)
	}
	if q.Where.Op != ast.In {
		t.Fatalf("expected in, got %v", q.Where.Op)
	}
	list, ok := q.Where.Right.Literal.([]interface{})
	if !ok || len(list) != 2 {
		t.Fatalf("unexpected right operand: %+v", q.Where.Right)
	}

	q2, err := Parse("MATCH (n:Person) WHERE n.tags CONTAINS 'admin' RETURN n")
	if err != nil {
		t.Fatal(err)
	}
	if q2.Where.Op != ast.Contains {
		t.Fatalf("expected contains, got %v", q2.Where.Op)
	}
}

func TestParseOutsideSubsetFails(t *testing.T) {
	queries := []string{
		"SELECT * FROM n",
		"MATCH (n:Person) RETURN",
		"MATCH (n:Person RETURN n",
		"MATCH (n:Person) WHERE RETURN n",
		"",
	}

	for _, query := range queries {
		if _, err := Parse(query); err == nil {
			t.Errorf("%q: expected a parse error", query)
		}
	}
}

func TestParseErrorIsGraphError(t *testing.T) {
	_, err := Parse("MATCH (n:Person RETURN n")
	if err == nil {
		t.Fatal("expected an error")
	}

	var ge *util.GraphError
	if !errors.As(err, &ge) {
		t.Fatalf("expected a *util.GraphError, got %T", err)
	}
	if !errors.Is(err, util.ErrParsing) {
		t.Fatalf("expected util.ErrParsing, got %v", ge.Type)
	}
}

func TestParseTrailingTokensFail(t *testing.T) {
	if _, err := Parse("MATCH (n:Person) RETURN n EXTRA"); err == nil {
		t.Error("expected an error for trailing input")
	}
}
