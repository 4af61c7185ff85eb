package content

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// RawItem is one record as returned by the Webflow items endpoints.
type RawItem struct {
	ID        string         `json:"id"`
	FieldData map[string]any `json:"fieldData"`
}

// Fields wraps a raw field map with defaulting accessors. A nil map is valid.
type Fields map[string]any

func (f Fields) String(key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
	}
	return ""
}

// StringOr returns the field or def when the field is empty.
func (f Fields) StringOr(key, def string) string {
	if s := f.String(key); s != "" {
		return s
	}
	return def
}

// OptString returns nil for a missing or empty field.
func (f Fields) OptString(key string) *string {
	if s := f.String(key); s != "" {
		return &s
	}
	return nil
}

// Int reads ordering integers. Numbers arrive as float64 from encoding/json,
// numeric strings are accepted too. Anything else, including values outside
// the int range, is 0.
func (f Fields) Int(key string) int {
	switch v := f[key].(type) {
	case float64:
		return floatToInt(v)
	case int:
		return v
	case int64:
		return int64ToInt(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int64ToInt(n)
		}
		if n, err := v.Float64(); err == nil {
			return floatToInt(n)
		}
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return floatToInt(n)
		}
	}
	return 0
}

// float64(math.MaxInt) rounds up to a power of two, so the upper bound is
// exclusive.
func floatToInt(v float64) int {
	if math.IsNaN(v) || v < math.MinInt || v >= math.MaxInt {
		return 0
	}
	return int(v)
}

func int64ToInt(v int64) int {
	if v < math.MinInt || v > math.MaxInt {
		return 0
	}
	return int(v)
}

// AssetURL reads the url of an image field ({"url": "..."}), nil when absent.
func (f Fields) AssetURL(key string) *string {
	asset, ok := f[key].(map[string]any)
	if !ok {
		return nil
	}
	return Fields(asset).OptString("url")
}

// Date formats an ISO timestamp field with layout in UTC. Values that do not
// parse are returned unchanged, missing values are "".
func (f Fields) Date(key, layout string) string {
	raw := strings.TrimSpace(f.String(key))
	if raw == "" {
		return ""
	}
	for _, in := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(in, raw); err == nil {
			return t.UTC().Format(layout)
		}
	}
	return raw
}

func (it RawItem) fields() Fields {
	return Fields(it.FieldData)
}
