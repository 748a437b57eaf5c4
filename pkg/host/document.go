package host

// Document owns connected elements and the document-level text direction.
type Document struct {
	dir      string
	elements []*Element
	dirSubs  map[int]func(string)
	nextSub  int
}

// NewDocument creates an empty document with left-to-right direction.
func NewDocument() *Document {
	return &Document{dir: "ltr"}
}

// Dir returns the document text direction ("ltr" or "rtl").
func (d *Document) Dir() string {
	return d.dir
}

// SetDir updates the document text direction and notifies subscribers.
// Setting the current direction again is a no-op.
func (d *Document) SetDir(dir string) {
	if dir == d.dir {
		return
	}
	d.dir = dir
	for _, fn := range d.dirSubs {
		fn(dir)
	}
}

// OnDirChange subscribes to direction mutations. The returned function
// removes the subscription.
func (d *Document) OnDirChange(fn func(dir string)) (unsubscribe func()) {
	if d.dirSubs == nil {
		d.dirSubs = make(map[int]func(string))
	}
	id := d.nextSub
	d.nextSub++
	d.dirSubs[id] = fn
	return func() { delete(d.dirSubs, id) }
}

// Append connects el to the document and fires its Connected callback.
// Appending an already connected element is a no-op.
func (d *Document) Append(el *Element) {
	if el == nil || el.connected {
		return
	}
	el.doc = d
	el.connected = true
	d.elements = append(d.elements, el)
	if el.callbacks != nil {
		el.callbacks.Connected()
	}
}

// Remove disconnects el from the document and fires its Disconnected
// callback. Removing a detached element is a no-op.
func (d *Document) Remove(el *Element) {
	if el == nil || !el.connected || el.doc != d {
		return
	}
	el.connected = false
	el.doc = nil
	for i, e := range d.elements {
		if e == el {
			d.elements = append(d.elements[:i], d.elements[i+1:]...)
			break
		}
	}
	if el.callbacks != nil {
		el.callbacks.Disconnected()
	}
}

// Elements returns the connected elements in document order.
func (d *Document) Elements() []*Element {
	out := make([]*Element, len(d.elements))
	copy(out, d.elements)
	return out
}
