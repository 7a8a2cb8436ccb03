package domain

import (
	"math"
	"strconv"
)

// Row is one parsed CSV record. Values are dynamically typed during
// parsing: string, float64 or bool. Within one dataset every row shares
// the header's column set.
type Row map[string]any

// NumberOf coerces the value at field to a finite float64.
// Booleans and unparseable strings do not count as numeric.
func (r Row) NumberOf(field string) (float64, bool) {
	v, ok := r[field]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// StringOf returns the value at field stringified the way the filter
// comparison expects: floats without a trailing fraction when integral,
// booleans as "true"/"false", missing values as "".
func (r Row) StringOf(field string) string {
	return Stringify(r[field])
}

// FlagSet reports whether the value at field is one of the accepted
// truthy tokens: numeric 1, "1", true or "true". Everything else
// (0, "", "yes", missing) is unset.
func (r Row) FlagSet(field string) bool {
	switch v := r[field].(type) {
	case float64:
		return v == 1
	case string:
		return v == "1" || v == "true"
	case bool:
		return v
	default:
		return false
	}
}

// Stringify converts a dynamically typed cell value to its canonical
// string form.
func Stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
