// Package host is the in-memory stand-in for the platform component model.
//
// In a browser the host platform owns elements, attributes, connection
// state, and shadow roots, and it invokes the component's lifecycle
// callbacks. This package plays that role for server-side rendering and for
// tests: a Document holds Elements, appending an Element connects it and
// fires Connected on its registered Callbacks, removing it fires
// Disconnected, and mutations to observed attributes fire AttributeChanged
// synchronously when the old and new values differ.
//
// The core never reaches around this surface; everything it knows about the
// outside world arrives through Callbacks and leaves through Element and
// ShadowRoot methods.
package host
