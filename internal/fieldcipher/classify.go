// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package fieldcipher

// isNestedRecord reports whether v is a nested record to recurse into, as
// opposed to a leaf to encrypt atomically. Only plain string-keyed objects
// qualify; arrays, date-like values, nil, primitives, and typed maps are all
// leaves.
//
// The same classification runs on both the encode and decode paths, which is
// what keeps the two recursions in lockstep.
func isNestedRecord(v any) bool {
	rec, ok := v.(map[string]any)
	return ok && rec != nil
}
