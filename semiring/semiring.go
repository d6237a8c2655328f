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
Package semiring parameterizes matrix multiplication with an algebraic
(⊕, ⊗, 0, 1) structure. Four named semirings are provided as
ready-made values (Boolean, Tropical, Counting, Probability); a Custom
semiring can be built from arbitrary closures for values the built-ins
don't cover.

Values flow through gonum's float64-backed matrices, so a semiring's
carrier is float64 throughout - Boolean uses 0/1, and Tropical's zero
is a real math.Inf(1) rather than a finite sentinel, since the float64
backend makes a true infinity available (see DESIGN.md's Open
Question resolution on this point).

Associativity of ⊕ and ⊗, distributivity of ⊗ over ⊕, and the
zero/one identity laws are documented invariants that the algorithms
in this package rely on; they are not checked at runtime.
*/
package semiring

/*
Semiring is an algebraic structure (name, zero, one, ⊕, ⊗) used to
generalize matrix multiplication.
*/
type Semiring struct {
	Name string

	Zero float64
	One  float64

	Oplus  func(a, b float64) float64
	Otimes func(a, b float64) float64
}
