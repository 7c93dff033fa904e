// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package models

import (
	"encoding/json"
	"errors"
)

// ErrInvalidMappingEntry is returned when a serialized mapping entry is
// neither a bare alias string nor an {alias, nested} pair.
var ErrInvalidMappingEntry = errors.New("invalid mapping entry")

// Mapping records which alias replaced which original field name during one
// field-encryption pass. Its shape mirrors the original record's shape
// exactly: it is keyed by original field names, so it leaks them, and must
// itself be encrypted before transmission. It holds no key material and no
// plaintext values.
type Mapping map[string]MappingEntry

// MappingEntry is a tagged variant: either a bare alias (a leaf field) or an
// alias paired with a sub-mapping (a nested record). Nested == nil means the
// leaf variant.
type MappingEntry struct {
	Alias  string
	Nested Mapping
}

// IsNested reports whether the entry describes a nested record.
func (e MappingEntry) IsNested() bool {
	return e.Nested != nil
}

// mappingPair is the wire form of the nested variant.
type mappingPair struct {
	Alias  string  `json:"alias"`
	Nested Mapping `json:"nested"`
}

// MarshalJSON serializes the leaf variant as a bare JSON string and the
// nested variant as an {"alias": ..., "nested": ...} object, so the two are
// distinguishable by JSON token type alone.
func (e MappingEntry) MarshalJSON() ([]byte, error) {
	if e.Nested == nil {
		return json.Marshal(e.Alias)
	}
	return json.Marshal(mappingPair{Alias: e.Alias, Nested: e.Nested})
}

// UnmarshalJSON restores the variant chosen by [MappingEntry.MarshalJSON].
func (e *MappingEntry) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &e.Alias)
	}

	var pair mappingPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if pair.Alias == "" || pair.Nested == nil {
		return ErrInvalidMappingEntry
	}

	e.Alias = pair.Alias
	e.Nested = pair.Nested
	return nil
}
