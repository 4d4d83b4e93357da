package restapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record is a raw upstream JSON object decoded with json.Number for numbers.
// Accessors are lenient: missing keys, nulls and unparsable values read as the zero value.
type Record map[string]any

func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (r Record) StringPtr(key string) *string {
	if !r.Has(key) {
		return nil
	}
	s := r.String(key)
	return &s
}

// Int reads an integer id. Nested objects resolve to their "id" field.
func (r Record) Int(key string) int64 {
	if p := r.IntPtr(key); p != nil {
		return *p
	}
	return 0
}

func (r Record) IntPtr(key string) *int64 {
	n, ok := toInt(r[key])
	if !ok {
		return nil
	}
	return &n
}

func (r Record) Float(key string) float64 {
	if p := r.FloatPtr(key); p != nil {
		return *p
	}
	return 0
}

// FloatPtr accepts numbers and decimal strings such as DRF DecimalField output
func (r Record) FloatPtr(key string) *float64 {
	d, ok := toDecimal(r[key])
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return &f
}

func (r Record) Decimal(key string) decimal.Decimal {
	d, _ := toDecimal(r[key])
	return d
}

func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

// Time parses date and datetime strings. Unparsable values yield nil.
func (r Record) Time(key string) *time.Time {
	s := strings.TrimSpace(r.String(key))
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// Record returns a nested object, or nil
func (r Record) Record(key string) Record {
	switch v := r[key].(type) {
	case map[string]any:
		return Record(v)
	case Record:
		return v
	default:
		return nil
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	case map[string]any:
		return toInt(n["id"])
	default:
		return 0, false
	}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	default:
		return decimal.Zero, false
	}
}
