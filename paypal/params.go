package paypal

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// isoMillis is the ISO-8601 UTC layout PayPal accepts for profile dates.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Params is an ordered set of NVP request fields. A key keeps the position of
// its first Set; later Sets replace the value only.
type Params struct {
	keys   []string
	values map[string]interface{}
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]interface{})}
}

// Set stores value under key and returns p for chaining. Supported values are
// strings, integers, floats, bools, time.Time and fmt.Stringer.
func (p *Params) Set(key string, value interface{}) *Params {
	if p.values == nil {
		p.values = make(map[string]interface{})
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the raw value stored under key.
func (p *Params) Get(key string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the field names in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Len returns the number of fields.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Merge copies every field of other into p in other's order, overwriting
// existing values. A nil other is a no-op.
func (p *Params) Merge(other *Params) *Params {
	if other == nil {
		return p
	}
	for _, k := range other.keys {
		p.Set(k, other.values[k])
	}
	return p
}

// Clone returns an independent copy of p.
func (p *Params) Clone() *Params {
	return NewParams().Merge(p)
}

// layer builds a new set from the given layers, lowest precedence first.
func layer(layers ...*Params) *Params {
	out := NewParams()
	for _, l := range layers {
		out.Merge(l)
	}
	return out
}

// blank reports whether key is unset or holds a zero-ish value.
func (p *Params) blank(key string) bool {
	v, ok := p.Get(key)
	if !ok || v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case int:
		return t == 0
	case int8:
		return t == 0
	case int16:
		return t == 0
	case int32:
		return t == 0
	case int64:
		return t == 0
	case uint:
		return t == 0
	case uint8:
		return t == 0
	case uint16:
		return t == 0
	case uint32:
		return t == 0
	case uint64:
		return t == 0
	case float64:
		return t == 0
	case float32:
		return t == 0
	case time.Time:
		return t.IsZero()
	case *time.Time:
		return t == nil || t.IsZero()
	}
	return false
}

// require returns a ValidationError for the first blank key.
func (p *Params) require(keys ...string) error {
	for _, k := range keys {
		if p.blank(k) {
			return &ValidationError{Field: k}
		}
	}
	return nil
}

// Values returns the encoded fields as url.Values.
func (p *Params) Values() url.Values {
	out := url.Values{}
	if p == nil {
		return out
	}
	for _, k := range p.keys {
		out.Set(k, formatValue(p.values[k]))
	}
	return out
}

// Encode renders p as an application/x-www-form-urlencoded body, keeping
// insertion order.
func (p *Params) Encode() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(formatValue(p.values[k])))
	}
	return b.String()
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "1"
		}
		return "0"
	case time.Time:
		return formatDate(t)
	case *time.Time:
		if t == nil {
			return ""
		}
		return formatDate(*t)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

func formatDate(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

// toDate accepts the value types that represent a usable date.
func toDate(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		if !t.IsZero() {
			return t, nil
		}
	case *time.Time:
		if t != nil && !t.IsZero() {
			return *t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: got %T", ErrInvalidDate, v)
}
