// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package models

// Record is an arbitrary JSON-like object: a mapping from field names to
// values, where a value is either a nested Record or a leaf (string, number,
// boolean, nil, array, or date-like value). Record is an alias rather than a
// defined type so that values produced by encoding/json ([map[string]any])
// can be used directly without conversion.
type Record = map[string]any

// AbsentValue marks a field as explicitly carrying no value, as opposed to
// carrying null. Fields holding [Absent] are dropped entirely during field
// encryption and therefore do not round-trip. Go has no native "undefined";
// this sentinel stands in for it.
type AbsentValue struct{}

// Absent is the canonical [AbsentValue] sentinel.
var Absent = AbsentValue{}

// IsAbsent reports whether v is the explicit no-value sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(AbsentValue)
	return ok
}
