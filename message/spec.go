package message

import "strings"

/* Spec is a configured message before resolution
 * Uses value semantics as it represents data, not behavior
 */
type Spec struct {
	kind   SpecKind
	text   string
	object map[string]any
}

// SpecKind is the concrete shape of a Spec
type SpecKind int

const (
	None SpecKind = iota
	Text
	Object
)

// String returns the string representation of the kind
func (k SpecKind) String() string {
	switch k {
	case Text:
		return "text"
	case Object:
		return "object"
	default:
		return "none"
	}
}

// NewText builds a text spec. The text may name a file.
func NewText(s string) Spec {
	if strings.TrimSpace(s) == "" {
		return Spec{}
	}
	return Spec{kind: Text, text: s}
}

// NewObject builds a structured spec holding a pre-built payload.
func NewObject(m map[string]any) Spec {
	if m == nil {
		return Spec{}
	}
	return Spec{kind: Object, object: m}
}

// FromValue converts a loosely-typed configuration value into a Spec.
// Strings and string-keyed maps are recognized; anything else is None.
func FromValue(v any) Spec {
	switch val := v.(type) {
	case Spec:
		return val
	case string:
		return NewText(val)
	case map[string]any:
		return NewObject(val)
	case Payload:
		return NewObject(map[string]any(val))
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				return Spec{}
			}
			m[key] = item
		}
		return NewObject(m)
	default:
		return Spec{}
	}
}

// Kind returns the shape of the spec
func (s Spec) Kind() SpecKind {
	return s.kind
}

// IsNone reports whether the spec is absent
func (s Spec) IsNone() bool {
	return s.kind == None
}

// Text returns the raw text of a Text spec
func (s Spec) Text() string {
	return s.text
}

// Object returns the structured value of an Object spec
func (s Spec) Object() map[string]any {
	return s.object
}
