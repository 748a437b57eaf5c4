// Package lifecycle maps host platform events onto the richer named hooks a
// component author sees, guarding against premature or duplicate firing.
//
// Hooks are optional: the dispatcher discovers them on its target by type
// assertion and skips the ones the author did not implement. All hook
// dispatch is synchronous within whatever event turn triggered it; the only
// asynchronous boundary in the system is the render itself.
package lifecycle

// State is an instance's connection state.
type State int

const (
	// Unconnected means the instance has never joined a document.
	Unconnected State = iota
	// Connected means the instance is attached to a document.
	Connected
	// Disconnected means the instance left its document.
	Disconnected
)

func (s State) String() string {
	switch s {
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	default:
		return "unconnected"
	}
}

// The optional hook surface, discovered on the dispatcher target.
type (
	// DidConnectHook fires after upgrade and host marks, before styles and
	// the first render request.
	DidConnectHook interface{ DidConnect() }
	// DidMountHook fires after the first render of each mount cycle.
	DidMountHook interface{ DidMount() }
	// DidUpdateHook fires after every render, including the first.
	DidUpdateHook interface{ DidUpdate() }
	// WillUnmountHook fires synchronously on disconnect, before teardown.
	WillUnmountHook interface{ WillUnmount() }
	// PropertyObserver fires on every effective property change.
	PropertyObserver interface {
		PropertyChanged(name string, old, next any)
	}
	// AttributeObserver fires on every observed attribute change.
	AttributeObserver interface {
		AttributeChanged(name, oldValue, newValue string)
	}
)

// Dispatcher sequences one instance's lifecycle. The shell wires the
// callback fields once at construction; Target is the component whose
// optional hooks get invoked.
type Dispatcher struct {
	// Target is the component checked for hook implementations.
	Target any
	// OnUpgrade installs the property slots. Runs on every connect; the
	// slot table's shadowing check makes repeats harmless.
	OnUpgrade func()
	// OnHostMarks stamps the identifier and direction attributes.
	OnHostMarks func()
	// OnStyles renders the stylesheet into the rendering context.
	OnStyles func()
	// OnRequestRender asks the scheduler for a coalesced render.
	OnRequestRender func()
	// OnTeardown cancels any pending render and destroys the rendering
	// context. Runs after WillUnmount.
	OnTeardown func()

	state   State
	mounted bool
}

// State returns the current connection state.
func (d *Dispatcher) State() State {
	return d.state
}

// Mounted reports whether the first render of the current cycle completed.
func (d *Dispatcher) Mounted() bool {
	return d.mounted
}

// HandleConnect runs the connect sequence. hostConnected is the connection
// flag as the platform reports it at event time: a queued connect that
// resolves after an intervening disconnect arrives with false and is
// ignored entirely. A duplicate connect while already connected is also
// ignored.
func (d *Dispatcher) HandleConnect(hostConnected bool) {
	if !hostConnected || d.state == Connected {
		return
	}
	d.state = Connected
	d.mounted = false

	if d.OnUpgrade != nil {
		d.OnUpgrade()
	}
	if d.OnHostMarks != nil {
		d.OnHostMarks()
	}
	if hook, ok := d.Target.(DidConnectHook); ok {
		hook.DidConnect()
	}
	if d.OnStyles != nil {
		d.OnStyles()
	}
	if d.OnRequestRender != nil {
		d.OnRequestRender()
	}
}

// HandleDisconnect fires WillUnmount synchronously, then tears down.
// Ignored unless currently connected.
func (d *Dispatcher) HandleDisconnect() {
	if d.state != Connected {
		return
	}
	if hook, ok := d.Target.(WillUnmountHook); ok {
		hook.WillUnmount()
	}
	d.state = Disconnected
	d.mounted = false
	if d.OnTeardown != nil {
		d.OnTeardown()
	}
}

// RenderCompleted fires DidMount exactly once per mount cycle, then
// DidUpdate for every completion including the first. A patch that lands
// after disconnect (which teardown should have cancelled) fires nothing.
func (d *Dispatcher) RenderCompleted() {
	if d.state != Connected {
		return
	}
	if !d.mounted {
		d.mounted = true
		if hook, ok := d.Target.(DidMountHook); ok {
			hook.DidMount()
		}
	}
	if hook, ok := d.Target.(DidUpdateHook); ok {
		hook.DidUpdate()
	}
}

// NotifyPropertyChanged dispatches the property-changed hook. The caller
// (the slot table) has already applied the equality gate.
func (d *Dispatcher) NotifyPropertyChanged(name string, old, next any) {
	if hook, ok := d.Target.(PropertyObserver); ok {
		hook.PropertyChanged(name, old, next)
	}
}

// NotifyAttributeChanged dispatches the attribute-changed hook. The host
// has already suppressed no-op mutations.
func (d *Dispatcher) NotifyAttributeChanged(name, oldValue, newValue string) {
	if hook, ok := d.Target.(AttributeObserver); ok {
		hook.AttributeChanged(name, oldValue, newValue)
	}
}
