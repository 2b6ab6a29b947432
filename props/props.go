// Package props implements typed access to JSON-derived property bags.
//
// STAC documents decode into map[string]any trees. The helpers here read and
// write those maps with the distinctions JSON forces on callers: a key can be
// absent, explicitly null, or carry a value, and numbers arrive as float64
// regardless of the schema's declared type. Accessors coerce raw values into
// the requested Go type but never validate nested shapes; schema validation
// is a separate, later concern.
package props

import "fmt"

// Presence reports how a key occurs in a property bag.
type Presence uint8

const (
	// Absent means the key does not occur in the bag.
	Absent Presence = iota
	// Null means the key occurs with an explicit JSON null.
	Null
	// Present means the key occurs with a non-null value.
	Present
)

// String returns a short label for diagnostics.
func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case Null:
		return "null"
	case Present:
		return "present"
	default:
		return fmt.Sprintf("Presence(%d)", uint8(p))
	}
}

// RequiredPropertyError reports a required key that is absent or null.
type RequiredPropertyError struct {
	// Context names the owning object, e.g. "cube:dimension".
	Context string
	// Property is the missing key.
	Property string
}

func (e *RequiredPropertyError) Error() string {
	return fmt.Sprintf("props: required property %q of %s is missing or null", e.Property, e.Context)
}

// InvalidTypeError reports a value that cannot be represented as the
// requested Go type.
type InvalidTypeError struct {
	Context  string
	Property string
	// Value is the raw value found in the bag.
	Value any
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("props: property %q of %s has unusable type %T", e.Property, e.Context, e.Value)
}

// Lookup reads key from m and reports its presence. The value is the
// best-effort coercion of the raw entry; when the entry exists but cannot be
// represented as T, Lookup still reports Present with T's zero value, since
// presence describes the document, not the caller's type.
func Lookup[T any](m map[string]any, key string) (T, Presence) {
	var zero T
	raw, ok := m[key]
	if !ok {
		return zero, Absent
	}
	if raw == nil {
		return zero, Null
	}
	v, _ := As[T](raw)
	return v, Present
}

// Optional reads key from m, reporting ok only when the key holds a value
// representable as T. Absent, null and uncoercible entries all read as not ok.
func Optional[T any](m map[string]any, key string) (T, bool) {
	raw, ok := m[key]
	if !ok || raw == nil {
		var zero T
		return zero, false
	}
	return As[T](raw)
}

// Required reads key from m, failing with *RequiredPropertyError when the key
// is absent or null and with *InvalidTypeError when its value cannot be
// represented as T. context names the owning object in error messages.
func Required[T any](m map[string]any, context, key string) (T, error) {
	var zero T
	raw, ok := m[key]
	if !ok || raw == nil {
		return zero, &RequiredPropertyError{Context: context, Property: key}
	}
	v, ok := As[T](raw)
	if !ok {
		return zero, &InvalidTypeError{Context: context, Property: key, Value: raw}
	}
	return v, nil
}

// Set stores v under key, removing the key entirely when v is nil. Nil-ness
// covers untyped nil, nil pointers, nil slices and nil maps; non-nil pointers
// are dereferenced before storing so bags never hold pointer values.
func Set(m map[string]any, key string, v any) {
	if isNil(v) {
		delete(m, key)
		return
	}
	m[key] = deref(v)
}

// SetNullable stores v under key, storing an explicit null when v is nil.
// The key stays present either way. This is the write path for required
// fields, where dropping the key would silently change the document shape,
// and for fields whose null carries meaning of its own.
func SetNullable(m map[string]any, key string, v any) {
	if isNil(v) {
		m[key] = nil
		return
	}
	m[key] = deref(v)
}

// Clear removes key from m.
func Clear(m map[string]any, key string) {
	delete(m, key)
}

// Ptr returns a pointer to v, for passing literals to pointer-taking setters.
func Ptr[T any](v T) *T { return &v }
