package component

import (
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/props"
)

// Component is the minimal authoring contract: a render function returning
// markup. Everything else about a component is optional capability
// interfaces.
type Component interface {
	Render() string
}

// PropertyProvider declares the component class's reactive properties.
// Read once, at instance construction.
type PropertyProvider interface {
	Properties() props.Map
}

// Styler supplies the stylesheet rendered into the shadow root once per
// mount cycle.
type Styler interface {
	Styles() string
}

// AccessorProvider supplies author-defined accessors. A property name with
// an accessor is skipped by the automatic upgrade entirely.
type AccessorProvider interface {
	Accessors() map[string]props.Accessor
}

// binder receives the owning instance. Core implements it; New asserts for
// it so embedding Core is all an author needs to do.
type binder interface {
	bindInstance(inst *Instance)
}

// Core gives a component access to its shell. Embed it in the component
// struct; the runtime binds it at construction. All methods are safe to
// call on an unbound Core and act as no-ops returning zero values.
type Core struct {
	inst *Instance
}

func (c *Core) bindInstance(inst *Instance) {
	c.inst = inst
}

// Instance returns the owning shell instance, or nil before construction.
func (c *Core) Instance() *Instance {
	return c.inst
}

// ID returns the stable per-instance identifier.
func (c *Core) ID() string {
	if c.inst == nil {
		return ""
	}
	return c.inst.ID()
}

// Host returns the component's host element.
func (c *Core) Host() *host.Element {
	if c.inst == nil {
		return nil
	}
	return c.inst.Host()
}

// Get reads a declared property.
func (c *Core) Get(name string) any {
	if c.inst == nil {
		return nil
	}
	return c.inst.Get(name)
}

// Set writes a declared property through the reactive pipeline.
func (c *Core) Set(name string, value any) {
	if c.inst != nil {
		c.inst.Set(name, value)
	}
}

// RequestRender asks for a coalesced render on the next frame.
func (c *Core) RequestRender() {
	if c.inst != nil {
		c.inst.RequestRender()
	}
}
