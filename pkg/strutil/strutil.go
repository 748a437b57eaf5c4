// Package strutil provides the string and type-tag utilities used by the
// component core: kebab-case conversion for attribute reflection, HTML
// escaping for safe properties, and runtime type classification for
// property validation.
package strutil

import (
	"math/big"
	"reflect"
	"strings"
	"unicode"
)

// Symbol is an opaque token value. It classifies as the "symbol" type tag,
// giving authors a distinct identifier type that cannot collide with
// ordinary strings.
type Symbol string

// htmlEscaper covers the five characters that must not reach markup
// unescaped. The stdlib html.EscapeString emits &#39;/&#34; instead of
// the entities attribute inspectors expect, so the replacer is explicit.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// EscapeHTML escapes s for safe inclusion in markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// KebabCase converts a camelCase or PascalCase identifier to kebab-case,
// the form property names take when reflected onto attributes.
// "maxItems" becomes "max-items".
func KebabCase(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	var prevLower bool
	for _, r := range name {
		if unicode.IsUpper(r) {
			if prevLower {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			prevLower = false
			continue
		}
		sb.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return sb.String()
}

// TypeTag reports the runtime type tag of v using the fixed property type
// enumeration: string, number, symbol, object, array, function, boolean,
// bigint. A nil value reports "undefined".
func TypeTag(v any) string {
	if v == nil {
		return "undefined"
	}
	switch v.(type) {
	case Symbol:
		return "symbol"
	case string:
		return "string"
	case bool:
		return "boolean"
	case *big.Int, big.Int:
		return "bigint"
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return "number"
	}

	switch t := reflect.TypeOf(v); t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Func:
		return "function"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
