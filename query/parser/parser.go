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
	"fmt"
	"strconv"
	"strings"

	"github.com/krotik/graphlite/graph/util"
	"github.com/krotik/graphlite/query/ast"
)

/*
Parse tokenizes and parses input, producing a query/ast.Query. Anything
outside the implemented subset - including a syntax error anywhere in
the supported grammar - fails with a *util.GraphError of type
util.ErrParsing rather than silently accepting a partial parse.
*/
func Parse(input string) (*ast.Query, error) {
	toks := Lex(input)
	if len(toks) > 0 && toks[len(toks)-1].Kind == ERROR {
		return nil, parseError(toks[len(toks)-1].Pos, toks[len(toks)-1].Val)
	}

	p := &parser{toks: toks}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}

	if p.cur().Kind != EOF {
		return nil, p.errorf("unexpected trailing input %q", p.cur().Val)
	}

	return q, nil
}

func parseError(pos int, msg string) error {
	return &util.GraphError{Type: util.ErrParsing, Detail: "position " + strconv.Itoa(pos) + ": " + msg}
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) cur() Token {
	if p.pos >= len(p.toks) {
		return Token{Kind: EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) advance() Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return parseError(p.cur().Pos, fmt.Sprintf(format, args...))
}

func (p *parser) expect(kind TokenKind, what string) (Token, error) {
	if p.cur().Kind != kind {
		return Token{}, p.errorf("expected %s, found %q", what, p.cur().Val)
	}
	return p.advance(), nil
}

func (p *parser) parseQuery() (*ast.Query, error) {
	if _, err := p.expect(MATCH, "MATCH"); err != nil {
		return nil, err
	}

	pattern, err := p.parseMatchPattern()
	if err != nil {
		return nil, err
	}

	q := &ast.Query{MatchPatterns: []ast.MatchPattern{pattern}}

	if p.cur().Kind == WHERE {
		p.advance()
		cond, err := p.parseOrExpr()
		if err != nil {
			return nil, err
		}
		q.Where = cond
	}

	if _, err := p.expect(RETURN, "RETURN"); err != nil {
		return nil, err
	}

	items, err := p.parseReturnItems()
	if err != nil {
		return nil, err
	}
	q.ReturnItems = items

	if p.cur().Kind == ORDER {
		p.advance()
		if _, err := p.expect(BY, "BY"); err != nil {
			return nil, err
		}
		terms, err := p.parseOrderTerms()
		if err != nil {
			return nil, err
		}
		q.OrderBy = terms
	}

	if p.cur().Kind == SKIP {
		p.advance()
		n, err := p.parseIntLiteral()
		if err != nil {
			return nil, err
		}
		q.Skip = &n
	}

	if p.cur().Kind == LIMIT {
		p.advance()
		n, err := p.parseIntLiteral()
		if err != nil {
			return nil, err
		}
		q.Limit = &n
	}

	return q, nil
}

func (p *parser) parseIntLiteral() (int, error) {
	tok, err := p.expect(NUMBER, "a number")
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(tok.Val)
	if convErr != nil {
		return 0, parseError(tok.Pos, "expected an integer, found "+tok.Val)
	}
	return n, nil
}

// Match pattern
// =============

func (p *parser) parseMatchPattern() (ast.MatchPattern, error) {
	n1, err := p.parseNodePat()
	if err != nil {
		return ast.MatchPattern{}, err
	}

	pattern := ast.MatchPattern{Nodes: []ast.NodePat{n1}}

	if p.cur().Kind == MINUS || p.cur().Kind == LT {
		edge, err := p.parseEdgePat()
		if err != nil {
			return ast.MatchPattern{}, err
		}

		n2, err := p.parseNodePat()
		if err != nil {
			return ast.MatchPattern{}, err
		}

		pattern.Edges = []ast.EdgePat{edge}
		pattern.Nodes = append(pattern.Nodes, n2)
	}

	return pattern, nil
}

func (p *parser) parseNodePat() (ast.NodePat, error) {
	if _, err := p.expect(LPAREN, "("); err != nil {
		return ast.NodePat{}, err
	}

	pat := ast.NodePat{}

	if p.cur().Kind == IDENT {
		pat.Var = p.advance().Val
	}

	for p.cur().Kind == COLON {
		p.advance()
		label, err := p.expect(IDENT, "a label")
		if err != nil {
			return ast.NodePat{}, err
		}
		pat.Labels = append(pat.Labels, label.Val)
	}

	if p.cur().Kind == LBRACE {
		props, err := p.parsePropertyMap()
		if err != nil {
			return ast.NodePat{}, err
		}
		pat.Properties = props
	}

	if _, err := p.expect(RPAREN, ")"); err != nil {
		return ast.NodePat{}, err
	}

	return pat, nil
}

func (p *parser) parseEdgePat() (ast.EdgePat, error) {
	incoming := false
	if p.cur().Kind == LT {
		incoming = true
		p.advance()
	}

	if _, err := p.expect(MINUS, "-"); err != nil {
		return ast.EdgePat{}, err
	}

	pat := ast.EdgePat{Direction: ast.Undirected}

	if p.cur().Kind == LBRACK {
		p.advance()

		if p.cur().Kind == IDENT {
			pat.Var = p.advance().Val
		}

		if p.cur().Kind == COLON {
			p.advance()
			relType, err := p.expect(IDENT, "a relationship type")
			if err != nil {
				return ast.EdgePat{}, err
			}
			pat.RelType = relType.Val
		}

		if p.cur().Kind == LBRACE {
			props, err := p.parsePropertyMap()
			if err != nil {
				return ast.EdgePat{}, err
			}
			pat.Properties = props
		}

		if _, err := p.expect(RBRACK, "]"); err != nil {
			return ast.EdgePat{}, err
		}
	}

	if _, err := p.expect(MINUS, "-"); err != nil {
		return ast.EdgePat{}, err
	}

	outgoing := false
	if p.cur().Kind == GT {
		outgoing = true
		p.advance()
	}

	switch {
	case outgoing && !incoming:
		pat.Direction = ast.Outgoing
	case incoming && !outgoing:
		pat.Direction = ast.Incoming
	default:
		pat.Direction = ast.Undirected
	}

	return pat, nil
}

func (p *parser) parsePropertyMap() (map[string]interface{}, error) {
	if _, err := p.expect(LBRACE, "{"); err != nil {
		return nil, err
	}

	props := map[string]interface{}{}

	if p.cur().Kind != RBRACE {
		for {
			key, err := p.expect(IDENT, "a property key")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(COLON, ":"); err != nil {
				return nil, err
			}
			val, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			props[key.Val] = val

			if p.cur().Kind != COMMA {
				break
			}
			p.advance()
		}
	}

	if _, err := p.expect(RBRACE, "}"); err != nil {
		return nil, err
	}

	return props, nil
}

// Where condition
// ================

func (p *parser) parseOrExpr() (*ast.Condition, error) {
	left, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}

	for p.cur().Kind == OR {
		p.advance()
		right, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.Condition{Kind: ast.ConditionLogical, LogicalOp: ast.Or, Children: []*ast.Condition{left, right}}
	}

	return left, nil
}

func (p *parser) parseAndExpr() (*ast.Condition, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.cur().Kind == AND {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Condition{Kind: ast.ConditionLogical, LogicalOp: ast.And, Children: []*ast.Condition{left, right}}
	}

	return left, nil
}

func (p *parser) parseUnary() (*ast.Condition, error) {
	if p.cur().Kind == NOT {
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Condition{Kind: ast.ConditionLogical, LogicalOp: ast.Not, Children: []*ast.Condition{child}}, nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*ast.Condition, error) {
	if p.cur().Kind == LPAREN {
		p.advance()
		cond, err := p.parseOrExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN, ")"); err != nil {
			return nil, err
		}
		return cond, nil
	}

	return p.parseComparison()
}

var comparisonOps = map[TokenKind]ast.ComparisonOp{
	EQ:       ast.Eq,
	NEQ:      ast.Neq,
	GT:       ast.Gt,
	GTE:      ast.Gte,
	LT:       ast.Lt,
	LTE:      ast.Lte,
	IN:       ast.In,
	CONTAINS: ast.Contains,
}

func (p *parser) parseComparison() (*ast.Condition, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	op, ok := comparisonOps[p.cur().Kind]
	if !ok {
		return nil, p.errorf("expected a comparison operator, found %q", p.cur().Val)
	}
	p.advance()

	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	return &ast.Condition{Kind: ast.ConditionComparison, Op: op, Left: left, Right: right}, nil
}

func (p *parser) parseOperand() (ast.Operand, error) {
	switch p.cur().Kind {
	case NUMBER, STRING:
		lit, err := p.parseLiteral()
		if err != nil {
			return ast.Operand{}, err
		}
		return ast.Operand{IsLiteral: true, Literal: lit}, nil

	case LBRACK:
		lit, err := p.parseListLiteral()
		if err != nil {
			return ast.Operand{}, err
		}
		return ast.Operand{IsLiteral: true, Literal: lit}, nil

	case IDENT:
		variable := p.advance().Val
		if p.cur().Kind == DOT {
			p.advance()
			key, err := p.expect(IDENT, "a property name")
			if err != nil {
				return ast.Operand{}, err
			}
			return ast.Operand{Variable: variable, Property: key.Val}, nil
		}
		return ast.Operand{Variable: variable}, nil
	}

	return ast.Operand{}, p.errorf("expected a value or variable reference, found %q", p.cur().Val)
}

func (p *parser) parseLiteral() (interface{}, error) {
	switch p.cur().Kind {
	case NUMBER:
		tok := p.advance()
		if strings.Contains(tok.Val, ".") {
			f, convErr := strconv.ParseFloat(tok.Val, 64)
			if convErr != nil {
				return nil, parseError(tok.Pos, "invalid number "+tok.Val)
			}
			return f, nil
		}
		n, convErr := strconv.ParseInt(tok.Val, 10, 64)
		if convErr != nil {
			return nil, parseError(tok.Pos, "invalid number "+tok.Val)
		}
		return n, nil

	case STRING:
		return p.advance().Val, nil

	case LBRACK:
		return p.parseListLiteral()
	}

	return nil, p.errorf("expected a literal, found %q", p.cur().Val)
}

func (p *parser) parseListLiteral() ([]interface{}, error) {
	if _, err := p.expect(LBRACK, "["); err != nil {
		return nil, err
	}

	var items []interface{}

	if p.cur().Kind != RBRACK {
		for {
			item, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			items = append(items, item)

			if p.cur().Kind != COMMA {
				break
			}
			p.advance()
		}
	}

	if _, err := p.expect(RBRACK, "]"); err != nil {
		return nil, err
	}

	return items, nil
}

// Return items
// =============

var aggFuncs = map[string]bool{"count": true, "sum": true, "avg": true, "min": true, "max": true}

func (p *parser) parseReturnItems() ([]ast.ReturnItem, error) {
	item, err := p.parseReturnItem()
	if err != nil {
		return nil, err
	}
	items := []ast.ReturnItem{item}

	for p.cur().Kind == COMMA {
		p.advance()
		item, err := p.parseReturnItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (p *parser) parseReturnItem() (ast.ReturnItem, error) {
	tok, err := p.expect(IDENT, "a return item")
	if err != nil {
		return ast.ReturnItem{}, err
	}

	if aggFuncs[strings.ToLower(tok.Val)] && p.cur().Kind == LPAREN {
		p.advance()

		variable, err := p.expect(IDENT, "a variable")
		if err != nil {
			return ast.ReturnItem{}, err
		}

		item := ast.ReturnItem{Kind: ast.ReturnAggregation, AggFunc: strings.ToLower(tok.Val), Variable: variable.Val}

		if p.cur().Kind == DOT {
			p.advance()
			key, err := p.expect(IDENT, "a property name")
			if err != nil {
				return ast.ReturnItem{}, err
			}
			item.Property = key.Val
		}

		if _, err := p.expect(RPAREN, ")"); err != nil {
			return ast.ReturnItem{}, err
		}

		return item, nil
	}

	item := ast.ReturnItem{Kind: ast.ReturnVariable, Variable: tok.Val}

	if p.cur().Kind == DOT {
		p.advance()
		key, err := p.expect(IDENT, "a property name")
		if err != nil {
			return ast.ReturnItem{}, err
		}
		item.Kind = ast.ReturnProperty
		item.Property = key.Val
	}

	return item, nil
}

func (p *parser) parseOrderTerms() ([]ast.OrderTerm, error) {
	term, err := p.parseOrderTerm()
	if err != nil {
		return nil, err
	}
	terms := []ast.OrderTerm{term}

	for p.cur().Kind == COMMA {
		p.advance()
		term, err := p.parseOrderTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}

	return terms, nil
}

func (p *parser) parseOrderTerm() (ast.OrderTerm, error) {
	variable, err := p.expect(IDENT, "a variable")
	if err != nil {
		return ast.OrderTerm{}, err
	}

	column := variable.Val

	if p.cur().Kind == DOT {
		p.advance()
		key, err := p.expect(IDENT, "a property name")
		if err != nil {
			return ast.OrderTerm{}, err
		}
		column += "." + key.Val
	}

	return ast.OrderTerm{Column: column}, nil
}
