// Package props implements the reactive property engine: declarative
// descriptors, the per-instance slot table that backs them, and the upgrade
// step that turns one into the other.
//
// A component class declares its properties once as a Map of Descriptors.
// At connect time the shell upgrades each declared property into a live
// slot. From then on every write runs the same pipeline: equality gate,
// type validation (diagnostic only, never blocking), optional HTML
// sanitization, optional attribute reflection, change notification, render
// request. Author-defined accessors always win: a name with a registered
// Accessor is skipped by the upgrade and receives none of the automatic
// behavior.
package props

import (
	"fmt"
	"reflect"

	"github.com/loom-ui/loom/pkg/errors"
	"github.com/loom-ui/loom/pkg/strutil"
)

// Type is a declared property type tag.
type Type string

// The fixed property type enumeration. An empty Type leaves the property
// unchecked.
const (
	String   Type = "string"
	Number   Type = "number"
	Symbol   Type = "symbol"
	Object   Type = "object"
	Array    Type = "array"
	Function Type = "function"
	Boolean  Type = "boolean"
	BigInt   Type = "bigint"
)

// Descriptor declares one property. Descriptors belong to the component
// class and are read once at instance construction; they are never mutated
// afterwards.
type Descriptor struct {
	// Default is the initial value, or a func(owner any) any invoked with
	// the component instance to produce it.
	Default any
	// Type is the expected type tag. Mismatches warn; they never block a
	// write.
	Type Type
	// Reflected mirrors the value onto a kebab-cased host attribute.
	Reflected bool
	// Safe HTML-escapes string values before they are ever observable.
	Safe bool
}

// Map declares a component class's properties, keyed by property name.
type Map map[string]Descriptor

// Accessor is an author-defined get/set pair for one property name.
// Registering one opts that property out of the automatic upgrade.
type Accessor struct {
	Get func() any
	Set func(value any)
}

// ReflectedAttributes returns the kebab-cased attribute names of the
// reflected properties in m. The host needs this list before the instance
// connects, to decide which attribute mutations to observe.
func ReflectedAttributes(m Map) []string {
	var names []string
	for name, desc := range m {
		if desc.Reflected {
			names = append(names, strutil.KebabCase(name))
		}
	}
	return names
}

// Validate compares value's runtime type tag against declared and reports
// a warning on mismatch. It returns false for a mismatch but the caller is
// expected to proceed regardless: validation is purely diagnostic. Nil
// values and an empty declared type always pass.
func Validate(name string, value any, declared Type, class string) bool {
	if declared == "" || value == nil {
		return true
	}
	actual := strutil.TypeTag(value)
	if Type(actual) == declared {
		return true
	}
	errors.Warn("props.Validate", class, fmt.Sprintf(
		"Property '%s' is invalid type of '%s'. Expected '%s'. Check %s.",
		name, actual, declared, class))
	return false
}

// equal reports value equality for the pipeline's no-op gate. It is a
// simple identity check: non-comparable values (slices, maps, funcs) never
// compare equal, so object/array typed properties re-notify on every
// assignment and in-place mutation is not observed.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !isComparable(a) || !isComparable(b) {
		return false
	}
	return a == b
}

// isComparable reports whether v can be compared with == without panicking.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
