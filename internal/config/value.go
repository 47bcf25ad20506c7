// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// kind is the closed set of shapes a raw JSON value can take once it crosses
// into the resolver. Field rules compare kinds, never Go types.
type kind int

const (
	kindAbsent kind = iota
	kindNull
	kindString
	kindBool
	kindInt
	kindFloat
	kindList
	kindObject
)

func (k kind) String() string {
	switch k {
	case kindAbsent:
		return "absent"
	case kindNull:
		return "null"
	case kindString:
		return "string"
	case kindBool:
		return "boolean"
	case kindInt:
		return "integer"
	case kindFloat:
		return "float"
	case kindList:
		return "list"
	case kindObject:
		return "object"
	default:
		return "unknown"
	}
}

// value is a raw JSON value tagged with its kind. Only the payload field
// matching kind is meaningful.
type value struct {
	kind kind
	str  string
	b    bool
	// i saturates at the int64 bounds for integer literals outside its range,
	// which still clamps to the right end of every configured range.
	i    int64
	list []value
}

// lookup tags the value stored under key, reporting kindAbsent when the key
// is missing.
func lookup(doc map[string]any, key string) value {
	raw, ok := doc[key]
	if !ok {
		return value{kind: kindAbsent}
	}
	return toValue(raw)
}

// toValue tags a value produced by a JSON decoder. json.Number keeps the
// literal text, which is what separates 10 from 10.0.
func toValue(raw any) value {
	switch v := raw.(type) {
	case nil:
		return value{kind: kindNull}
	case string:
		return value{kind: kindString, str: v}
	case bool:
		return value{kind: kindBool, b: v}
	case json.Number:
		return numberValue(v)
	case int:
		return value{kind: kindInt, i: int64(v)}
	case int64:
		return value{kind: kindInt, i: v}
	case float64:
		return value{kind: kindFloat}
	case []any:
		list := make([]value, 0, len(v))
		for _, elem := range v {
			list = append(list, toValue(elem))
		}
		return value{kind: kindList, list: list}
	case []string:
		list := make([]value, 0, len(v))
		for _, elem := range v {
			list = append(list, value{kind: kindString, str: elem})
		}
		return value{kind: kindList, list: list}
	case map[string]any:
		return value{kind: kindObject}
	default:
		return value{kind: kindObject}
	}
}

func numberValue(n json.Number) value {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return value{kind: kindFloat}
	}

	// on ErrRange ParseInt still returns the saturated bound
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return value{kind: kindFloat}
	}
	return value{kind: kindInt, i: i}
}
