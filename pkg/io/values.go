package io

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// normalize converts decoder-specific containers into map[string]any and
// []any so one walker handles every format.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[keyString(k)] = normalize(val)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}

func keyString(k any) string {
	if t, ok := k.(time.Time); ok {
		return civil.DateOf(t).String()
	}
	return fmt.Sprint(k)
}

func asDate(v any) (civil.Date, bool) {
	switch t := v.(type) {
	case civil.Date:
		return t, t.IsValid()
	case time.Time:
		return civil.DateOf(t), !t.IsZero()
	case string:
		s := strings.TrimSpace(t)
		if d, err := civil.ParseDate(s); err == nil {
			return d, true
		}
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			return civil.DateOf(ts), true
		}
	}
	return civil.Date{}, false
}

func asFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// asCount accepts whole positive numbers only.
func asCount(v any) (int, bool) {
	f, ok := asFloat(v)
	if !ok || f < 1 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
