package grading

import (
	"strconv"
	"strings"
)

// Answers arrive as freshly json.Unmarshal-ed values (float64 numbers,
// []interface{} arrays, map[string]interface{} objects). The helpers below
// coerce those loose shapes into what the graders need; every failure path
// returns ok=false so graders can treat the answer as incorrect.

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// optionIndex accepts a bare number, a numeric string, or an object carrying
// an "index" field.
func optionIndex(v interface{}) (int, bool) {
	if m, ok := v.(map[string]interface{}); ok {
		inner, ok := m["index"]
		if !ok {
			return 0, false
		}
		return optionIndex(inner)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// indexSet accepts an array of indices in any of the shapes optionIndex
// handles, deduplicated.
func indexSet(v interface{}) (map[int]bool, bool) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	set := make(map[int]bool, len(arr))
	for _, e := range arr {
		i, ok := optionIndex(e)
		if !ok {
			return nil, false
		}
		set[i] = true
	}
	return set, true
}

// coerceBool maps true, "true" and 1 to true; anything else is false.
func coerceBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.TrimSpace(t)
		return strings.EqualFold(s, "true") || s == "1"
	default:
		f, ok := toFloat(v)
		return ok && f == 1
	}
}

type clickPoint struct {
	X, Y float64
}

// clickPoints extracts the ordered {x, y} pairs of a hotspot answer.
// Entries that do not carry numeric coordinates are dropped.
func clickPoints(v interface{}) []clickPoint {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]clickPoint, 0, len(arr))
	for _, e := range arr {
		m, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		x, okX := toFloat(m["x"])
		y, okY := toFloat(m["y"])
		if !okX || !okY {
			continue
		}
		out = append(out, clickPoint{X: x, Y: y})
	}
	return out
}

// idString canonicalizes an option identifier; numbers render without a
// trailing ".0" so "3" and 3 select the same option.
func idString(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	default:
		return "", false
	}
}

// selections decodes a questionnaire answer: subquestion index (stringified
// in JSON object keys) -> set of selected option ids.
func selections(v interface{}) (map[int]map[string]bool, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, false
	}
	out := make(map[int]map[string]bool, len(m))
	for k, raw := range m {
		idx, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, false
		}
		ids := map[string]bool{}
		switch t := raw.(type) {
		case []interface{}:
			for _, e := range t {
				if id, ok := idString(e); ok {
					ids[id] = true
				}
			}
		default:
			if id, ok := idString(raw); ok {
				ids[id] = true
			}
		}
		out[idx] = ids
	}
	return out, true
}

// isEmptyAnswer reports whether the learner answered at all. Empty answers
// short-circuit grading: the only valid claim for them is incorrect/zero.
func isEmptyAnswer(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	default:
		return false
	}
}
