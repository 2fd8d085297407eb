// Package document models the raw page surface that both boot phases write:
// root classes, root attributes, root inline style, head style elements and
// meta tags.
//
// The document starts owned by the priming writer (the head script). Claiming
// it for the interactive phase is one-way; afterwards priming writes fail with
// ErrNotOwner.
package document

import (
	"errors"
	"slices"
	"sort"
	"sync"
)

// Phase identifies a writer of the document.
type Phase int

const (
	// PhasePriming is the head script, before the interactive runtime attaches.
	PhasePriming Phase = iota
	// PhaseInteractive is the theme controller.
	PhaseInteractive
)

func (p Phase) String() string {
	switch p {
	case PhasePriming:
		return "priming"
	case PhaseInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// ErrNotOwner is returned for writes by a phase that does not own the document.
var ErrNotOwner = errors.New("document: writer does not own the document")

// Inline style property names written by the scheme sink.
const (
	StyleBackgroundColor = "background-color"
	StyleColor           = "color"
)

// Element is a head element (style or meta).
type Element struct {
	Tag     string
	ID      string
	Name    string
	Content string
	Text    string
}

// Document is a concurrency-safe in-memory page.
type Document struct {
	mu         sync.RWMutex
	owner      Phase
	classes    []string
	attrs      map[string]string
	style      map[string]string
	styleOrder []string
	head       []*Element
}

// New creates an empty document owned by the priming phase.
func New() *Document {
	return &Document{
		owner: PhasePriming,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

// Owner returns the phase currently allowed to write.
func (d *Document) Owner() Phase {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.owner
}

// handOff moves ownership to the interactive phase. It cannot move back.
func (d *Document) handOff() {
	d.mu.Lock()
	d.owner = PhaseInteractive
	d.mu.Unlock()
}

// Writer returns a writer acting as phase p.
func (d *Document) Writer(p Phase) *Writer {
	return &Writer{doc: d, phase: p}
}

// HasClass reports whether the root class list contains name.
func (d *Document) HasClass(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Contains(d.classes, name)
}

// Classes returns a copy of the root class list.
func (d *Document) Classes() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.classes)
}

// Attribute returns a root attribute.
func (d *Document) Attribute(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.attrs[name]
	return v, ok
}

// StyleProperty returns a root inline style property, "" when unset.
func (d *Document) StyleProperty(name string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.style[name]
}

// ElementByID returns a copy of the head element with id.
func (d *Document) ElementByID(id string) (Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if el := d.findByID(id); el != nil {
		return *el, true
	}
	return Element{}, false
}

// Meta returns the content of the named meta tag.
func (d *Document) Meta(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if el := d.findMeta(name); el != nil {
		return el.Content, true
	}
	return "", false
}

// AddMeta inserts a meta tag as the page shell would render it. Markup
// authored by the host page is not subject to ownership.
func (d *Document) AddMeta(name, content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if el := d.findMeta(name); el != nil {
		el.Content = content
		return
	}
	d.head = append(d.head, &Element{Tag: "meta", Name: name, Content: content})
}

func (d *Document) findByID(id string) *Element {
	for _, el := range d.head {
		if el.ID == id && id != "" {
			return el
		}
	}
	return nil
}

func (d *Document) findMeta(name string) *Element {
	for _, el := range d.head {
		if el.Tag == "meta" && el.Name == name {
			return el
		}
	}
	return nil
}

// Snapshot is an immutable view of the document.
type Snapshot struct {
	Owner   Phase
	Classes []string
	Attrs   map[string]string
	Style   []StyleEntry
	Head    []Element
}

// StyleEntry is one inline style declaration in insertion order.
type StyleEntry struct {
	Name  string
	Value string
}

// Snapshot copies the current document state.
func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s := Snapshot{
		Owner:   d.owner,
		Classes: slices.Clone(d.classes),
		Attrs:   make(map[string]string, len(d.attrs)),
	}
	for k, v := range d.attrs {
		s.Attrs[k] = v
	}
	for _, name := range d.styleOrder {
		s.Style = append(s.Style, StyleEntry{Name: name, Value: d.style[name]})
	}
	for _, el := range d.head {
		s.Head = append(s.Head, *el)
	}
	return s
}

// AttrNames returns the snapshot's attribute names sorted.
func (s Snapshot) AttrNames() []string {
	names := make([]string, 0, len(s.Attrs))
	for k := range s.Attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
