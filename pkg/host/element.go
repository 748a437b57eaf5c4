package host

import (
	"fmt"
	"strings"
)

// Callbacks receives host lifecycle events for one element. The component
// shell implements this; the host invokes every method synchronously from
// whatever mutation triggered it.
type Callbacks interface {
	// Connected fires after the element joins a document.
	Connected()
	// Disconnected fires after the element leaves its document.
	Disconnected()
	// AttributeChanged fires when an observed attribute's value changes.
	// A removed attribute reports newValue == "" with the attribute absent.
	AttributeChanged(name, oldValue, newValue string)
}

// Element is a host element: a tag, an ordered attribute map, a connection
// state, and at most one shadow root.
type Element struct {
	tag       string
	attrs     map[string]string
	order     []string
	observed  map[string]struct{}
	callbacks Callbacks
	shadow    *ShadowRoot
	doc       *Document
	connected bool
}

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	return &Element{
		tag:   strings.ToLower(tag),
		attrs: make(map[string]string),
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Connected reports whether the element is attached to a document.
func (e *Element) Connected() bool {
	return e.connected
}

// Document returns the owning document, or nil while detached.
func (e *Element) Document() *Document {
	return e.doc
}

// SetCallbacks registers the lifecycle callback receiver.
func (e *Element) SetCallbacks(cb Callbacks) {
	e.callbacks = cb
}

// Observe sets the attribute names whose mutations fire AttributeChanged.
// The host needs this list before the element connects; mutations to
// unobserved attributes are silent.
func (e *Element) Observe(names []string) {
	e.observed = make(map[string]struct{}, len(names))
	for _, name := range names {
		e.observed[strings.ToLower(name)] = struct{}{}
	}
}

// Attribute returns the value of the named attribute and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

// HasAttribute reports whether the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[strings.ToLower(name)]
	return ok
}

// AttributeNames returns the attribute names in insertion order.
func (e *Element) AttributeNames() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// SetAttribute sets name to value. Setting an attribute to its current
// value is a no-op: no callback fires.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	old, had := e.attrs[name]
	if had && old == value {
		return
	}
	if !had {
		e.order = append(e.order, name)
	}
	e.attrs[name] = value
	e.notifyAttribute(name, old, value)
}

// RemoveAttribute deletes the named attribute. Removing an absent
// attribute is a no-op.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	old, had := e.attrs[name]
	if !had {
		return
	}
	delete(e.attrs, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	e.notifyAttribute(name, old, "")
}

func (e *Element) notifyAttribute(name, old, next string) {
	if e.callbacks == nil {
		return
	}
	if _, ok := e.observed[name]; !ok {
		return
	}
	e.callbacks.AttributeChanged(name, old, next)
}

// AttachShadow returns the element's shadow root, creating it on first use.
// The root is the element's isolated rendering context; it survives
// disconnects the way a browser shadow root does.
func (e *Element) AttachShadow() *ShadowRoot {
	if e.shadow == nil {
		e.shadow = &ShadowRoot{host: e}
	}
	return e.shadow
}

// Shadow returns the shadow root, or nil if none was attached.
func (e *Element) Shadow() *ShadowRoot {
	return e.shadow
}

// OuterHTML renders the element's open tag with its attributes, in
// insertion order, followed by the shadow content. Boolean attributes
// (empty value) render without an equals sign.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.tag)
	for _, name := range e.order {
		value := e.attrs[name]
		if value == "" {
			fmt.Fprintf(&sb, " %s", name)
			continue
		}
		fmt.Fprintf(&sb, " %s=%q", name, value)
	}
	sb.WriteByte('>')
	if e.shadow != nil {
		sb.WriteString(e.shadow.InnerHTML())
	}
	fmt.Fprintf(&sb, "</%s>", e.tag)
	return sb.String()
}
