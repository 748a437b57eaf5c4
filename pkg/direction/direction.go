// Package direction propagates the document-level text direction to
// component host elements. One broadcaster per document watches the global
// direction and re-stamps the dir attribute on every registered element
// when it changes. Elements unregister on unmount so the registry does not
// retain unmounted instances.
package direction

import (
	"sync"

	"github.com/loom-ui/loom/pkg/host"
)

// Broadcaster mirrors one document's direction onto registered elements.
type Broadcaster struct {
	doc *host.Document

	mu       sync.Mutex
	elements map[*host.Element]struct{}
	unsub    func()
}

var (
	registryMu sync.Mutex
	registry   = make(map[*host.Document]*Broadcaster)
)

// For returns the broadcaster for doc, creating and subscribing it on
// first use.
func For(doc *host.Document) *Broadcaster {
	registryMu.Lock()
	defer registryMu.Unlock()
	if b, ok := registry[doc]; ok {
		return b
	}
	b := &Broadcaster{
		doc:      doc,
		elements: make(map[*host.Element]struct{}),
	}
	b.unsub = doc.OnDirChange(b.broadcast)
	registry[doc] = b
	return b
}

// Register adds el to the broadcast set and stamps the current direction
// immediately.
func (b *Broadcaster) Register(el *host.Element) {
	if el == nil {
		return
	}
	b.mu.Lock()
	b.elements[el] = struct{}{}
	b.mu.Unlock()
	el.SetAttribute("dir", b.doc.Dir())
}

// Unregister removes el from the broadcast set.
func (b *Broadcaster) Unregister(el *host.Element) {
	b.mu.Lock()
	delete(b.elements, el)
	b.mu.Unlock()
}

// Len reports the number of registered elements.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.elements)
}

func (b *Broadcaster) broadcast(dir string) {
	b.mu.Lock()
	elements := make([]*host.Element, 0, len(b.elements))
	for el := range b.elements {
		elements = append(elements, el)
	}
	b.mu.Unlock()
	for _, el := range elements {
		el.SetAttribute("dir", dir)
	}
}

// Close unsubscribes the broadcaster and forgets its document. Further For
// calls for the same document create a fresh broadcaster.
func (b *Broadcaster) Close() {
	registryMu.Lock()
	delete(registry, b.doc)
	registryMu.Unlock()
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
	b.mu.Lock()
	b.elements = make(map[*host.Element]struct{})
	b.mu.Unlock()
}
