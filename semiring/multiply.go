/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package semiring

import (
	"github.com/krotik/graphlite/matrix"
	"gonum.org/v1/gonum/mat"
)

/*
Multiply computes `(A ⊗ B)[i,j] = ⊕_k (A[i,k] ⊗ B[k,j])` for the given
semiring - the same shape as matrix.Multiply, but generalized past the
classical (+,·) field. Both operands must share a node mapping, or
ErrIncompatibleMapping is returned; the empty sentinel propagates.

Every semiring goes through the same foldMultiply loop. The four named
semirings (Boolean, Tropical, Counting, Probability), recognized by
Name, pass their raw operations to it directly; any other semiring,
including a Custom one, passes its own Oplus/Otimes closures. There is
no bitwise or vectorized kernel for any of them.
*/
func Multiply(a, b *matrix.Matrix, sr Semiring) (*matrix.Matrix, error) {
	if err := matrix.RequireSameMapping(a, b); err != nil {
		return nil, err
	}

	if a.IsEmpty() || b.IsEmpty() {
		return matrix.Empty(matrix.Dense), nil
	}

	ad, bd := a.ToDense(), b.ToDense()
	inner := a.Cols

	var result *mat.Dense

	switch sr.Name {
	case Boolean.Name:
		result = foldMultiply(ad, bd, a.Rows, b.Cols, inner, boolAnd, boolOr, Boolean.Zero)
	case Tropical.Name:
		result = foldMultiply(ad, bd, a.Rows, b.Cols, inner, tropicalAdd, tropicalMin, Tropical.Zero)
	case Counting.Name:
		result = foldMultiply(ad, bd, a.Rows, b.Cols, inner,
			func(x, y float64) float64 { return x * y },
			func(x, y float64) float64 { return x + y },
			Counting.Zero)
	case Probability.Name:
		result = foldMultiply(ad, bd, a.Rows, b.Cols, inner,
			func(x, y float64) float64 { return x * y },
			probOr,
			Probability.Zero)
	default:
		result = foldMultiply(ad, bd, a.Rows, b.Cols, inner, sr.Otimes, sr.Oplus, sr.Zero)
	}

	return &matrix.Matrix{
		Kind:        matrix.Dense,
		NodeMapping: a.NodeMapping,
		Index:       a.Index,
		Rows:        a.Rows,
		Cols:        b.Cols,
		Dense:       result,
	}, nil
}

/*
foldMultiply is the generic (⊕,⊗) matrix-multiply kernel that every
named semiring's fast path and the custom fallback route through; what
distinguishes a "specialized" call from the fallback is only which
closures are passed in - boolAnd/boolOr etc. avoid the one extra
indirection of going through a Semiring value's own fields.
*/
func foldMultiply(a, b *mat.Dense, rows, cols, inner int, otimes, oplus func(x, y float64) float64, zero float64) *mat.Dense {
	out := mat.NewDense(rows, cols, nil)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			acc := zero
			for k := 0; k < inner; k++ {
				acc = oplus(acc, otimes(a.At(i, k), b.At(k, j)))
			}
			out.Set(i, j, acc)
		}
	}

	return out
}
