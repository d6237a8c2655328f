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
Package query is the top-level entry point tying query/parser and
query/executor together, plus a fluent builder for callers that want to
assemble an AST without going through the query string surface.
Mirrors the teacher's eql package boundary: eql.util.go exposes
top-level helpers over eql/parser and eql/interpreter the same way this
package sits over query/parser and query/executor.
*/
package query

import (
	"github.com/krotik/graphlite/graph"
	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/query/ast"
	"github.com/krotik/graphlite/query/executor"
	"github.com/krotik/graphlite/query/parser"
	"github.com/krotik/graphlite/traversal"
)

/*
Execute parses queryString and runs it against g.
*/
func Execute(g *graph.Graph, queryString string) (*executor.Result, error) {
	q, err := parser.Parse(queryString)
	if err != nil {
		return nil, err
	}
	return executor.Execute(g, q)
}

/*
ExecuteAST runs an already-parsed query against g - the counterpart to
Execute for callers that built q with the Builder or by hand.
*/
func ExecuteAST(g *graph.Graph, q *ast.Query) (*executor.Result, error) {
	return executor.Execute(g, q)
}

/*
Traverse wraps traversal.Neighborhood: every node reachable from start
within maxDepth hops, inclusive, following dir.
*/
func Traverse(g *graph.Graph, start data.NodeId, maxDepth int, dir traversal.Direction) ([]data.Node, error) {
	return traversal.Neighborhood(g, start, maxDepth, dir)
}

/*
ShortestPath wraps traversal.ShortestPath: an unweighted shortest path
between from and to over undirected adjacency.
*/
func ShortestPath(g *graph.Graph, from, to data.NodeId) ([]data.NodeId, error) {
	return traversal.ShortestPath(g, from, to)
}

/*
Builder assembles an ast.Query one clause at a time:
Match(g, pattern).Where(cond).Return(items...).OrderBy(terms...).Skip(n).Limit(n).Execute().
*/
type Builder struct {
	g     *graph.Graph
	query *ast.Query
}

/*
Match starts a Builder seeded with the given match patterns.
*/
func Match(g *graph.Graph, patterns ...ast.MatchPattern) *Builder {
	return &Builder{g: g, query: &ast.Query{MatchPatterns: patterns}}
}

/*
Where sets the query's where condition.
*/
func (b *Builder) Where(cond *ast.Condition) *Builder {
	b.query.Where = cond
	return b
}

/*
Return sets the query's projected items.
*/
func (b *Builder) Return(items ...ast.ReturnItem) *Builder {
	b.query.ReturnItems = items
	return b
}

/*
OrderBy sets the query's sort terms.
*/
func (b *Builder) OrderBy(terms ...ast.OrderTerm) *Builder {
	b.query.OrderBy = terms
	return b
}

/*
Skip sets the number of leading rows to drop.
*/
func (b *Builder) Skip(n int) *Builder {
	b.query.Skip = &n
	return b
}

/*
Limit caps the number of rows returned.
*/
func (b *Builder) Limit(n int) *Builder {
	b.query.Limit = &n
	return b
}

/*
Query returns the ast.Query assembled so far, for callers that want to
inspect or re-run it without going through Execute.
*/
func (b *Builder) Query() *ast.Query {
	return b.query
}

/*
Execute runs the assembled query against the Builder's graph.
*/
func (b *Builder) Execute() (*executor.Result, error) {
	return executor.Execute(b.g, b.query)
}
