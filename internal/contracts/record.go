package contracts

import (
	"math"
	"strconv"
	"strings"
)

// Record is a single loosely-typed row returned by an external data
// source. Schema varies across entries and across API versions, so
// fields are read by probing an ordered list of candidate keys rather
// than assuming a fixed shape. Keys may be dotted paths ("usage.overall")
// that descend into nested objects.
type Record map[string]any

// Float probes keys in order and returns the first value that coerces
// to a finite float. Accepts JSON numbers and numeric strings.
func (r Record) Float(keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := r.lookup(key)
		if !ok {
			continue
		}
		f, ok := coerceFloat(v)
		if !ok {
			continue
		}
		return f, true
	}
	return 0, false
}

// Str probes keys in order and returns the first non-empty string value.
func (r Record) Str(keys ...string) (string, bool) {
	for _, key := range keys {
		v, ok := r.lookup(key)
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		return strings.TrimSpace(s), true
	}
	return "", false
}

// lookup resolves a possibly dotted key path against nested objects.
func (r Record) lookup(key string) (any, bool) {
	if v, ok := r[key]; ok {
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}

	parts := strings.Split(key, ".")
	var cur any = map[string]any(r)
	for _, part := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// coerceFloat converts loosely-typed source values to float64.
// NaN and infinities are rejected so malformed inputs degrade to
// "absent" instead of poisoning downstream math.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return coerceFloat(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return coerceFloat(f)
	default:
		return 0, false
	}
}
