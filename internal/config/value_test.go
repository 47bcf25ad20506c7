// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToValue_Kinds(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want kind
	}{
		{name: "null", raw: nil, want: kindNull},
		{name: "string", raw: "x", want: kindString},
		{name: "bool", raw: false, want: kindBool},
		{name: "integer literal", raw: json.Number("42"), want: kindInt},
		{name: "negative zero", raw: json.Number("-0"), want: kindInt},
		{name: "fraction literal", raw: json.Number("4.2"), want: kindFloat},
		{name: "exponent literal", raw: json.Number("4e2"), want: kindFloat},
		{name: "go int", raw: 7, want: kindInt},
		{name: "go float", raw: 7.0, want: kindFloat},
		{name: "list", raw: []any{"a", 1}, want: kindList},
		{name: "object", raw: map[string]any{}, want: kindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toValue(tt.raw).kind)
		})
	}
}

func TestToValue_ListElementsAreTagged(t *testing.T) {
	v := toValue([]any{"mp4", json.Number("3"), true})

	assert.Equal(t, kindList, v.kind)
	assert.Equal(t, []kind{kindString, kindInt, kindBool},
		[]kind{v.list[0].kind, v.list[1].kind, v.list[2].kind})
}

func TestNumberValue_Saturates(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), numberValue(json.Number("99999999999999999999")).i)
	assert.Equal(t, int64(math.MinInt64), numberValue(json.Number("-99999999999999999999")).i)
}

func TestLookup_Absent(t *testing.T) {
	assert.Equal(t, kindAbsent, lookup(map[string]any{"a": 1}, "b").kind)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		lo, v, hi int64
		want      int64
	}{
		{name: "below", lo: 0, v: -1, hi: 100, want: 0},
		{name: "above", lo: 0, v: 101, hi: 100, want: 100},
		{name: "inside", lo: 0, v: 50, hi: 100, want: 50},
		{name: "at min", lo: 0, v: 0, hi: 100, want: 0},
		{name: "at max", lo: 0, v: 100, hi: 100, want: 100},
		{name: "extreme", lo: 0, v: math.MinInt64, hi: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clamp(tt.lo, tt.v, tt.hi))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "integer", kindInt.String())
	assert.Equal(t, "object", kindObject.String())
	assert.Equal(t, "unknown", kind(99).String())
}
