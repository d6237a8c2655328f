/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import (
	"fmt"
	"sort"
)

/*
Equal reports whether two property values are structurally equal.

Numbers compare numerically regardless of their concrete Go type (int,
int64, float64, ...); strings compare lexicographically for ordering but
byte-for-byte for equality; lists and maps compare element-wise; any other
combination of mismatched types is unequal rather than an error.
*/
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if an, aok := asNumber(a); aok {
		if bn, bok := asNumber(b); bok {
			return an == bn
		}
		return false
	}

	switch av := a.(type) {

	case string:
		bv, ok := b.(string)
		return ok && av == bv

	case bool:
		bv, ok := b.(bool)
		return ok && av == bv

	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true

	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			ov, ok := bv[k]
			if !ok || !Equal(v, ov) {
				return false
			}
		}
		return true
	}

	return false
}

/*
Less reports whether a sorts before b. Ordering is only defined within a
single comparable kind (numbers against numbers, strings against strings);
any other combination returns false, matching the structural-equality
rule that mixed-type comparisons never error.
*/
func Less(a, b interface{}) bool {
	if an, aok := asNumber(a); aok {
		if bn, bok := asNumber(b); bok {
			return an < bn
		}
		return false
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as < bs
		}
	}

	return false
}

/*
asNumber normalizes any of the numeric Go kinds a property value might
hold into a float64 for comparison.
*/
func asNumber(v interface{}) (float64, bool) {
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

/*
Contains reports whether needle occurs within haystack: substring
containment for strings, element membership for lists.
*/
func Contains(haystack, needle interface{}) bool {
	if hs, ok := haystack.(string); ok {
		if ns, ok := needle.(string); ok {
			return containsSubstring(hs, ns)
		}
		return false
	}

	if hl, ok := haystack.([]interface{}); ok {
		for _, item := range hl {
			if Equal(item, needle) {
				return true
			}
		}
		return false
	}

	return false
}

func containsSubstring(s, sub string) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

/*
stringify renders a property value for IndexMap()/String() output. Byte
slices are deliberately not printed since they are not meaningful as text.
*/
func stringify(val interface{}) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case []byte:
		return "", false
	default:
		return fmt.Sprintf("%v", v), true
	}
}

/*
sortedKeys returns the keys of a property map in sorted order, used by
String() to produce a deterministic representation.
*/
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
