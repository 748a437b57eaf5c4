package props

import (
	"fmt"
	"sort"

	"github.com/loom-ui/loom/pkg/strutil"
)

// Owner is what a slot table needs from its component shell: a class name
// for diagnostics, attribute access for reflection, and the notification
// and render-request surface. Reflection happens before notification so a
// reflected write observes attribute-changed ahead of property-changed.
type Owner interface {
	ClassName() string
	SetAttr(name, value string)
	RemoveAttr(name string)
	NotifyChange(name string, old, next any)
	RequestRender()
}

// Slots is the per-instance table backing declared properties. Get and Set
// are table-driven dispatch over the installed entries; there is no runtime
// code generation.
type Slots struct {
	owner     Owner
	target    any
	values    map[string]any
	descs     map[string]Descriptor
	accessors map[string]Accessor
}

// NewSlots creates an empty table for the given owner. target is the
// component value passed to Default functions.
func NewSlots(owner Owner, target any) *Slots {
	return &Slots{
		owner:     owner,
		target:    target,
		values:    make(map[string]any),
		descs:     make(map[string]Descriptor),
		accessors: make(map[string]Accessor),
	}
}

// DefineAccessor registers an author accessor for name. Must happen before
// the upgrade pass for the shadowing check to see it.
func (s *Slots) DefineAccessor(name string, acc Accessor) {
	s.accessors[name] = acc
}

// Shadowed reports whether name has an author accessor.
func (s *Slots) Shadowed(name string) bool {
	_, ok := s.accessors[name]
	return ok
}

// Upgrade installs the live slot for one declared property. It runs once
// per property at connect time, before the first render, and is idempotent:
// a slot that already exists is left alone, which is what makes reconnect
// cycles repeatable.
func (s *Slots) Upgrade(name string, desc Descriptor) {
	if s.Shadowed(name) {
		return
	}
	if _, exists := s.descs[name]; exists {
		return
	}

	value := desc.Default
	if fn, ok := value.(func(owner any) any); ok {
		value = fn(s.target)
	}
	value = s.sanitize(value, desc)
	Validate(name, value, desc.Type, s.owner.ClassName())

	s.descs[name] = desc
	s.values[name] = value

	// Seed the attribute during the upgrade pass itself, so the reflected
	// state is visible immediately after mount.
	if desc.Reflected {
		s.reflect(name, value)
	}
}

// Get returns the current value of name. Author accessors win; undeclared
// names read as nil until written.
func (s *Slots) Get(name string) any {
	if acc, ok := s.accessors[name]; ok {
		if acc.Get != nil {
			return acc.Get()
		}
		return nil
	}
	return s.values[name]
}

// Set writes value to name through the full pipeline. Assigning nil clears
// the slot and removes the reflected attribute. Equal values (by
// identity/primitive equality) are a no-op: no notification, no render.
func (s *Slots) Set(name string, value any) {
	if acc, ok := s.accessors[name]; ok {
		if acc.Set != nil {
			acc.Set(value)
		}
		return
	}

	desc, declared := s.descs[name]
	if !declared {
		// Undeclared names are plain storage: no validation, no
		// reflection, no notification.
		s.values[name] = value
		return
	}

	old := s.values[name]

	if value == nil {
		delete(s.values, name)
		if desc.Reflected {
			s.owner.RemoveAttr(strutil.KebabCase(name))
		}
		return
	}

	value = s.sanitize(value, desc)
	Validate(name, value, desc.Type, s.owner.ClassName())

	if equal(old, value) {
		return
	}
	s.values[name] = value

	if desc.Reflected {
		s.reflect(name, value)
	}
	s.owner.NotifyChange(name, old, value)
	s.owner.RequestRender()
}

// Descriptor returns the installed descriptor for name.
func (s *Slots) Descriptor(name string) (Descriptor, bool) {
	desc, ok := s.descs[name]
	return desc, ok
}

// Names returns the installed property names, sorted.
func (s *Slots) Names() []string {
	names := make([]string, 0, len(s.descs))
	for name := range s.descs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Slots) sanitize(value any, desc Descriptor) any {
	if !desc.Safe {
		return value
	}
	if str, ok := value.(string); ok {
		return strutil.EscapeHTML(str)
	}
	return value
}

// reflect mirrors value onto the kebab-cased attribute. Boolean true
// reflects as a valueless attribute; false removes it, matching host
// boolean attribute semantics.
func (s *Slots) reflect(name string, value any) {
	attr := strutil.KebabCase(name)
	switch v := value.(type) {
	case nil:
		s.owner.RemoveAttr(attr)
	case bool:
		if v {
			s.owner.SetAttr(attr, "")
		} else {
			s.owner.RemoveAttr(attr)
		}
	case string:
		s.owner.SetAttr(attr, v)
	default:
		s.owner.SetAttr(attr, fmt.Sprint(v))
	}
}
