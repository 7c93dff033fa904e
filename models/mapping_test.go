package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingEntry_LeafWireForm(t *testing.T) {
	m := Mapping{"name": {Alias: "AbCdEf"}}

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"AbCdEf"}`, string(raw))

	var back Mapping
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, m, back)
	assert.False(t, back["name"].IsNested())
}

func TestMappingEntry_NestedWireForm(t *testing.T) {
	m := Mapping{
		"user": {
			Alias:  "XyZabc",
			Nested: Mapping{"name": {Alias: "QwErTy"}},
		},
	}

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":{"alias":"XyZabc","nested":{"name":"QwErTy"}}}`, string(raw))

	var back Mapping
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, m, back)
	assert.True(t, back["user"].IsNested())
}

func TestMappingEntry_RejectsMalformedPair(t *testing.T) {
	for name, raw := range map[string]string{
		"missing alias":  `{"x":{"nested":{"a":"b"}}}`,
		"missing nested": `{"x":{"alias":"AbCdEf"}}`,
		"wrong type":     `{"x":42}`,
	} {
		var m Mapping
		assert.Error(t, json.Unmarshal([]byte(raw), &m), name)
	}
}

func TestDetectEnvelope(t *testing.T) {
	cases := map[string]struct {
		body Record
		want EnvelopeKind
	}{
		"nil":                 {nil, EnvelopePlain},
		"plain object":        {Record{"name": "Ann"}, EnvelopePlain},
		"marker only":         {Record{EnvelopeKeyEncrypted: true}, EnvelopePlain},
		"field envelope":      {Record{EnvelopeKeyEncrypted: true, EnvelopeKeyMapping: "tok"}, EnvelopeField},
		"whole payload":       {Record{EnvelopeKeyEncrypted: "tok"}, EnvelopeWhole},
		"empty token":         {Record{EnvelopeKeyEncrypted: ""}, EnvelopePlain},
		"mapping wrong type":  {Record{EnvelopeKeyEncrypted: true, EnvelopeKeyMapping: 7}, EnvelopePlain},
		"marker false":        {Record{EnvelopeKeyEncrypted: false, EnvelopeKeyMapping: "tok"}, EnvelopePlain},
		"numeric marker type": {Record{EnvelopeKeyEncrypted: 1.0}, EnvelopePlain},
	}

	for name, tc := range cases {
		assert.Equal(t, tc.want, DetectEnvelope(tc.body), name)
	}
}

func TestIsAbsent(t *testing.T) {
	assert.True(t, IsAbsent(Absent))
	assert.False(t, IsAbsent(nil))
	assert.False(t, IsAbsent(""))
	assert.False(t, IsAbsent([]any{}))
}
