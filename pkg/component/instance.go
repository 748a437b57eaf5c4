package component

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/loom-ui/loom/pkg/direction"
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/lifecycle"
	"github.com/loom-ui/loom/pkg/props"
	"github.com/loom-ui/loom/pkg/scheduler"
)

// Instance is the shell for one mounted component: it owns the scheduler,
// the slot table, the dispatcher, and the shadow root, and it is the
// surface the host platform and the renderer talk to. Exactly one of each
// collaborator exists per instance; none is shared.
type Instance struct {
	comp       Component
	class      string
	id         string
	el         *host.Element
	shadow     *host.ShadowRoot
	frames     scheduler.FrameSource
	sched      *scheduler.Scheduler
	slots      *props.Slots
	disp       *lifecycle.Dispatcher
	renderer   Renderer
	properties props.Map
	dircast    *direction.Broadcaster
	last       string
	patch      func()
}

// Option configures an Instance at construction.
type Option func(*Instance)

// WithRenderer injects the patch/destroy collaborator. Defaults to
// MarkupRenderer.
func WithRenderer(r Renderer) Option {
	return func(inst *Instance) { inst.renderer = r }
}

// WithFrameSource injects the frame source backing the instance's
// scheduler. Defaults to a timer loop at the display interval.
func WithFrameSource(src scheduler.FrameSource) Option {
	return func(inst *Instance) { inst.frames = src }
}

// New builds the shell for comp on el and registers for host callbacks.
// The reflected property set is computed here, before the element can
// connect, so the host knows which attribute mutations to observe.
func New(el *host.Element, comp Component, opts ...Option) *Instance {
	inst := &Instance{
		comp:  comp,
		class: className(comp),
		id:    newID(),
		el:    el,
	}
	for _, opt := range opts {
		opt(inst)
	}
	if inst.renderer == nil {
		inst.renderer = MarkupRenderer{}
	}
	if inst.frames == nil {
		inst.frames = scheduler.NewLoop(0)
	}
	inst.sched = scheduler.New(inst.frames)
	inst.shadow = el.AttachShadow()

	inst.slots = props.NewSlots(&slotOwner{inst}, comp)
	if provider, ok := comp.(AccessorProvider); ok {
		for name, acc := range provider.Accessors() {
			inst.slots.DefineAccessor(name, acc)
		}
	}
	if provider, ok := comp.(PropertyProvider); ok {
		inst.properties = provider.Properties()
	}
	el.Observe(props.ReflectedAttributes(inst.properties))

	// Bound once so repeated scheduling always targets the same closure.
	inst.patch = func() {
		inst.renderer.Patch(inst)
		inst.disp.RenderCompleted()
	}

	inst.disp = &lifecycle.Dispatcher{
		Target:          comp,
		OnUpgrade:       inst.upgrade,
		OnHostMarks:     inst.markHost,
		OnStyles:        inst.renderStyles,
		OnRequestRender: inst.RequestRender,
		OnTeardown:      inst.teardown,
	}

	el.SetCallbacks(&hostHooks{inst})
	if b, ok := comp.(binder); ok {
		b.bindInstance(inst)
	}
	return inst
}

// ID returns the stable random identifier generated at construction.
func (inst *Instance) ID() string {
	return inst.id
}

// Class returns the component's class name, used in diagnostics.
func (inst *Instance) Class() string {
	return inst.class
}

// Component returns the authored component value.
func (inst *Instance) Component() Component {
	return inst.comp
}

// Host returns the host element.
func (inst *Instance) Host() *host.Element {
	return inst.el
}

// Shadow returns the instance's isolated rendering context.
func (inst *Instance) Shadow() *host.ShadowRoot {
	return inst.shadow
}

// State returns the current lifecycle state.
func (inst *Instance) State() lifecycle.State {
	return inst.disp.State()
}

// Mounted reports whether the first render of the current mount cycle has
// completed.
func (inst *Instance) Mounted() bool {
	return inst.disp.Mounted()
}

// Get reads a property through the slot table.
func (inst *Instance) Get(name string) any {
	return inst.slots.Get(name)
}

// Set writes a property through the reactive pipeline: equality gate,
// validation, sanitization, reflection, notification, render request.
func (inst *Instance) Set(name string, value any) {
	inst.slots.Set(name, value)
}

// RequestRender schedules a coalesced patch on the next frame. Repeated
// calls within one turn collapse into a single patch.
func (inst *Instance) RequestRender() {
	inst.sched.Schedule(inst.patch)
}

// Validate checks value against a declared type tag, for ad hoc use
// outside declared properties. Mismatches warn through the global handler
// and return false; they are never fatal.
func (inst *Instance) Validate(name string, value any, declared props.Type) bool {
	return props.Validate(name, value, declared, inst.class)
}

// RenderMarkup invokes the component's render function. Called by the
// renderer during patch, not by the core directly.
func (inst *Instance) RenderMarkup() string {
	return inst.comp.Render()
}

// LastOutput returns the markup committed by the most recent patch.
func (inst *Instance) LastOutput() string {
	return inst.last
}

// SetLastOutput records the renderer's committed output. Owned exclusively
// by this instance's renderer.
func (inst *Instance) SetLastOutput(markup string) {
	inst.last = markup
}

// upgrade installs every declared property, in sorted order for
// deterministic warnings. Idempotent across reconnects.
func (inst *Instance) upgrade() {
	for _, name := range sortedNames(inst.properties) {
		inst.slots.Upgrade(name, inst.properties[name])
	}
}

// markHost stamps the identifier attribute and joins the document's
// direction broadcast, which stamps dir.
func (inst *Instance) markHost() {
	inst.el.SetAttribute("data-uid", inst.id)
	if doc := inst.el.Document(); doc != nil {
		inst.dircast = direction.For(doc)
		inst.dircast.Register(inst.el)
	}
}

func (inst *Instance) renderStyles() {
	if styler, ok := inst.comp.(Styler); ok {
		inst.shadow.SetStyles(styler.Styles())
	}
}

// teardown cancels the pending render before the frame can fire, then
// hands the rendering context to the renderer for destruction.
func (inst *Instance) teardown() {
	inst.sched.Cancel()
	if inst.dircast != nil {
		inst.dircast.Unregister(inst.el)
		inst.dircast = nil
	}
	inst.renderer.Destroy(inst)
}

// hostHooks adapts the instance to host.Callbacks without widening the
// instance's public surface.
type hostHooks struct {
	inst *Instance
}

func (h *hostHooks) Connected() {
	h.inst.disp.HandleConnect(h.inst.el.Connected())
}

func (h *hostHooks) Disconnected() {
	h.inst.disp.HandleDisconnect()
}

func (h *hostHooks) AttributeChanged(name, oldValue, newValue string) {
	h.inst.disp.NotifyAttributeChanged(name, oldValue, newValue)
}

// slotOwner adapts the instance to props.Owner.
type slotOwner struct {
	inst *Instance
}

func (o *slotOwner) ClassName() string {
	return o.inst.class
}

func (o *slotOwner) SetAttr(name, value string) {
	o.inst.el.SetAttribute(name, value)
}

func (o *slotOwner) RemoveAttr(name string) {
	o.inst.el.RemoveAttribute(name)
}

func (o *slotOwner) NotifyChange(name string, old, next any) {
	o.inst.disp.NotifyPropertyChanged(name, old, next)
}

func (o *slotOwner) RequestRender() {
	o.inst.RequestRender()
}

func sortedNames(m props.Map) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newID generates the stable random identifier: eight hex characters,
// fixed for the instance's lifetime.
func newID() string {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Sprintf("%08x", uint32(time.Now().UnixNano()))
	}
	return hex.EncodeToString(buf[:])
}

func className(comp Component) string {
	t := reflect.TypeOf(comp)
	if t == nil {
		return "Component"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
