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
Package parser tokenizes and parses the Cypher-inspired query subset
into a query/ast.Query. Tokenization splits on whitespace and then on
the single-character punctuation `( ) [ ] { } - < > : . ,`, except that
the two-character comparison operators (`!=`, `<>`, `>=`, `<=`) are
recognized as a unit before that split is applied; keywords are
uppercased and matched against a fixed table; bare words become
identifiers. Parsing is recursive-descent.
*/
package parser

/*
TokenKind identifies the lexical category of a Token.
*/
type TokenKind int

const (
	EOF TokenKind = iota
	ERROR

	IDENT
	NUMBER
	STRING

	// Keywords

	MATCH
	WHERE
	RETURN
	ORDER
	BY
	SKIP
	LIMIT
	AND
	OR
	NOT
	AS
	IN
	CONTAINS

	// Comparison operators

	EQ
	NEQ
	LT
	LTE
	GT
	GTE

	// Punctuation

	LPAREN
	RPAREN
	LBRACK
	RBRACK
	LBRACE
	RBRACE
	COLON
	DOT
	COMMA
	MINUS
)

var keywords = map[string]TokenKind{
	"MATCH":    MATCH,
	"WHERE":    WHERE,
	"RETURN":   RETURN,
	"ORDER":    ORDER,
	"BY":       BY,
	"SKIP":     SKIP,
	"LIMIT":    LIMIT,
	"AND":      AND,
	"OR":       OR,
	"NOT":      NOT,
	"AS":       AS,
	"IN":       IN,
	"CONTAINS": CONTAINS,
}

/*
Token is one lexical unit, tagged with its position (the token's
index in the stream) for error reporting.
*/
type Token struct {
	Kind TokenKind
	Val  string
	Pos  int
}
