package props

import (
	"reflect"

	"github.com/spf13/cast"
)

// As converts a raw JSON-derived value into T. Numeric targets accept any
// JSON number representation; string targets are strict, since coercing
// numbers into strings would mask schema errors rather than surface them.
// Slice targets convert element-wise and fail as a whole when any element
// fails.
func As[T any](raw any) (T, bool) {
	if v, ok := raw.(T); ok {
		return v, true
	}
	var out T
	switch p := any(&out).(type) {
	case *any:
		*p = raw
		return out, true
	case *float64:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return out, false
		}
		*p = f
		return out, true
	case *int:
		n, err := cast.ToIntE(raw)
		if err != nil {
			return out, false
		}
		*p = n
		return out, true
	case *bool:
		b, ok := raw.(bool)
		if !ok {
			return out, false
		}
		*p = b
		return out, true
	case *[]any:
		s, ok := anySlice(raw)
		if !ok {
			return out, false
		}
		*p = s
		return out, true
	case *[]float64:
		s, ok := floatSlice(raw)
		if !ok {
			return out, false
		}
		*p = s
		return out, true
	case *[]int:
		s, ok := intSlice(raw)
		if !ok {
			return out, false
		}
		*p = s
		return out, true
	case *[]string:
		s, ok := stringSlice(raw)
		if !ok {
			return out, false
		}
		*p = s
		return out, true
	case *[]*float64:
		s, ok := nullableFloatSlice(raw)
		if !ok {
			return out, false
		}
		*p = s
		return out, true
	case *[]*string:
		s, ok := nullableStringSlice(raw)
		if !ok {
			return out, false
		}
		*p = s
		return out, true
	case *map[string]any:
		m, ok := raw.(map[string]any)
		if !ok {
			return out, false
		}
		*p = m
		return out, true
	default:
		return out, false
	}
}

func anySlice(raw any) ([]any, bool) {
	s, ok := raw.([]any)
	return s, ok
}

func floatSlice(raw any) ([]float64, bool) {
	if s, ok := raw.([]float64); ok {
		return s, true
	}
	src, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(src))
	for i, e := range src {
		f, err := cast.ToFloat64E(e)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func intSlice(raw any) ([]int, bool) {
	if s, ok := raw.([]int); ok {
		return s, true
	}
	src, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]int, len(src))
	for i, e := range src {
		n, err := cast.ToIntE(e)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func stringSlice(raw any) ([]string, bool) {
	if s, ok := raw.([]string); ok {
		return s, true
	}
	src, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, len(src))
	for i, e := range src {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// nullableFloatSlice keeps element-level nulls, which extents use for
// open-ended intervals.
func nullableFloatSlice(raw any) ([]*float64, bool) {
	if s, ok := raw.([]*float64); ok {
		return s, true
	}
	src, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]*float64, len(src))
	for i, e := range src {
		if e == nil {
			continue
		}
		f, err := cast.ToFloat64E(e)
		if err != nil {
			return nil, false
		}
		out[i] = &f
	}
	return out, true
}

func nullableStringSlice(raw any) ([]*string, bool) {
	if s, ok := raw.([]*string); ok {
		return s, true
	}
	src, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]*string, len(src))
	for i, e := range src {
		if e == nil {
			continue
		}
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out[i] = &s
	}
	return out, true
}

// isNil reports whether v is nil in any of the forms a setter may receive.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// deref unwraps a non-nil pointer so bags store plain values.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return rv.Elem().Interface()
	}
	return v
}
