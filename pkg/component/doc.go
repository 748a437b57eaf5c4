// Package component is the shell that composes the Loom runtime: one
// scheduler, one slot table, one lifecycle dispatcher, and one isolated
// rendering context per instance.
//
// # Authoring
//
// A component is any type with a Render method returning markup. Embed
// Core to reach the shell from hook bodies, and declare reactive
// properties with an optional Properties method:
//
//	type counter struct {
//	    component.Core
//	}
//
//	func (c *counter) Properties() props.Map {
//	    return props.Map{
//	        "count": {Type: props.Number, Default: 0},
//	    }
//	}
//
//	func (c *counter) Render() string {
//	    return fmt.Sprintf("<span>%v</span>", c.Get("count"))
//	}
//
// Optional methods are discovered by the runtime when present: Styles,
// Accessors, DidConnect, DidMount, DidUpdate, WillUnmount,
// PropertyChanged, AttributeChanged.
//
// # Wiring
//
// The host platform drives everything. Construct an instance against a
// host element, then let the document connect it:
//
//	el := host.NewElement("x-counter")
//	inst := component.New(el, &counter{})
//	doc.Append(el)
//
// Connecting upgrades the declared properties, stamps the host marks,
// renders styles, and requests the first render. Property writes after
// that coalesce into single frame patches through the instance's
// scheduler.
//
// # Rendering
//
// The diff/patch engine is a collaborator, not part of the core: anything
// implementing Renderer can be injected with WithRenderer. The default
// MarkupRenderer commits Render output to the shadow root verbatim.
package component
