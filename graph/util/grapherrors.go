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
Package util contains the error taxonomy shared by storage, graph,
traversal, matrix and query.

GraphError

Models a graph related error. Low-level errors should be wrapped in a
GraphError before they are returned to a client. The Type field is a
sentinel which callers can compare with errors.Is; Detail carries a
human-readable explanation.
*/
package util

import (
	"errors"
	"fmt"
)

/*
GraphError is a graph related error.
*/
type GraphError struct {
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (ge *GraphError) Error() string {
	if ge.Detail != "" {
		return fmt.Sprintf("GraphError: %v (%v)", ge.Type, ge.Detail)
	}

	return fmt.Sprintf("GraphError: %v", ge.Type)
}

/*
Unwrap exposes the sentinel Type so callers can use errors.Is(err, util.ErrNotFound).
*/
func (ge *GraphError) Unwrap() error {
	return ge.Type
}

/*
Error kinds used throughout storage, graph, traversal, matrix and query.
*/
var (
	ErrNotFound               = errors.New("Not found")
	ErrAlreadyExists          = errors.New("Already exists")
	ErrNodeNotFound           = errors.New("Node not found")
	ErrIncompatibleMapping    = errors.New("Incompatible node mapping")
	ErrIncompatibleDimensions = errors.New("Incompatible matrix dimensions")
	ErrParsing                = errors.New("Could not parse query")
	ErrUnsupportedPattern     = errors.New("Unsupported query pattern")
	ErrStorageFailure         = errors.New("Storage failure")
	ErrInvalidData            = errors.New("Invalid data")
	ErrRule                   = errors.New("Graph rule error")
	ErrNoPath                 = errors.New("No path found")
)
