package host

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recordingCallbacks captures lifecycle events as strings.
type recordingCallbacks struct {
	events []string
}

func (r *recordingCallbacks) Connected()    { r.events = append(r.events, "connected") }
func (r *recordingCallbacks) Disconnected() { r.events = append(r.events, "disconnected") }

func (r *recordingCallbacks) AttributeChanged(name, old, next string) {
	r.events = append(r.events, "attr:"+name+":"+old+"->"+next)
}

func TestDocument_AppendRemove_FiresCallbacks(t *testing.T) {
	doc := NewDocument()
	el := NewElement("x-widget")
	cb := &recordingCallbacks{}
	el.SetCallbacks(cb)

	doc.Append(el)
	if !el.Connected() {
		t.Fatal("expected element to be connected after Append")
	}
	doc.Remove(el)
	if el.Connected() {
		t.Fatal("expected element to be disconnected after Remove")
	}

	want := []string{"connected", "disconnected"}
	if diff := cmp.Diff(want, cb.events); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_Reconnect(t *testing.T) {
	doc := NewDocument()
	el := NewElement("x-widget")
	cb := &recordingCallbacks{}
	el.SetCallbacks(cb)

	doc.Append(el)
	doc.Remove(el)
	doc.Append(el)

	want := []string{"connected", "disconnected", "connected"}
	if diff := cmp.Diff(want, cb.events); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_AppendTwice_NoOp(t *testing.T) {
	doc := NewDocument()
	el := NewElement("x-widget")
	cb := &recordingCallbacks{}
	el.SetCallbacks(cb)

	doc.Append(el)
	doc.Append(el)

	if len(cb.events) != 1 {
		t.Fatalf("expected 1 connect event, got %v", cb.events)
	}
	if len(doc.Elements()) != 1 {
		t.Fatalf("expected 1 element in document, got %d", len(doc.Elements()))
	}
}

func TestSetAttribute_ObservedFiresOnChangeOnly(t *testing.T) {
	el := NewElement("x-widget")
	cb := &recordingCallbacks{}
	el.SetCallbacks(cb)
	el.Observe([]string{"label"})

	el.SetAttribute("label", "x")
	el.SetAttribute("label", "x") // same value, no event
	el.SetAttribute("label", "y")
	el.SetAttribute("title", "ignored") // unobserved

	want := []string{"attr:label:->x", "attr:label:x->y"}
	if diff := cmp.Diff(want, cb.events); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveAttribute(t *testing.T) {
	el := NewElement("x-widget")
	cb := &recordingCallbacks{}
	el.SetCallbacks(cb)
	el.Observe([]string{"label"})

	el.SetAttribute("label", "x")
	el.RemoveAttribute("label")
	el.RemoveAttribute("label") // absent, no event

	if el.HasAttribute("label") {
		t.Fatal("expected label attribute to be removed")
	}
	want := []string{"attr:label:->x", "attr:label:x->"}
	if diff := cmp.Diff(want, cb.events); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributeNames_InsertionOrder(t *testing.T) {
	el := NewElement("x-widget")
	el.SetAttribute("b", "2")
	el.SetAttribute("a", "1")
	el.SetAttribute("c", "3")
	el.RemoveAttribute("a")

	want := []string{"b", "c"}
	if diff := cmp.Diff(want, el.AttributeNames()); diff != "" {
		t.Errorf("name order mismatch (-want +got):\n%s", diff)
	}
}

func TestAttachShadow_Idempotent(t *testing.T) {
	el := NewElement("x-widget")
	first := el.AttachShadow()
	second := el.AttachShadow()
	if first != second {
		t.Fatal("expected AttachShadow to return the same root")
	}
	if el.Shadow() != first {
		t.Fatal("expected Shadow to return the attached root")
	}
}

func TestShadowRoot_InnerHTML(t *testing.T) {
	el := NewElement("x-widget")
	root := el.AttachShadow()

	root.Commit("<p>hi</p>")
	if got := root.InnerHTML(); got != "<p>hi</p>" {
		t.Errorf("InnerHTML without styles = %q", got)
	}

	root.SetStyles(":host{color:red}")
	want := "<style>:host{color:red}</style><p>hi</p>"
	if got := root.InnerHTML(); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}

	root.Release()
	if root.InnerHTML() != "" {
		t.Error("expected empty content after Release")
	}
}

func TestOuterHTML(t *testing.T) {
	el := NewElement("x-widget")
	el.SetAttribute("label", "hi")
	el.SetAttribute("disabled", "")
	el.AttachShadow().Commit("<span>hi</span>")

	want := `<x-widget label="hi" disabled><span>hi</span></x-widget>`
	if got := el.OuterHTML(); got != want {
		t.Errorf("OuterHTML = %q, want %q", got, want)
	}
}

func TestDocument_SetDir_NotifiesSubscribers(t *testing.T) {
	doc := NewDocument()

	var seen []string
	unsub := doc.OnDirChange(func(dir string) { seen = append(seen, dir) })

	doc.SetDir("rtl")
	doc.SetDir("rtl") // unchanged, no event
	unsub()
	doc.SetDir("ltr")

	want := []string{"rtl"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("dir events mismatch (-want +got):\n%s", diff)
	}
	if doc.Dir() != "ltr" {
		t.Errorf("expected final dir ltr, got %q", doc.Dir())
	}
}
