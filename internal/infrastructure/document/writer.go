package document

import (
	"fmt"
	"slices"
)

// Writer mutates the document on behalf of one phase.
// Every mutation checks ownership first.
type Writer struct {
	doc   *Document
	phase Phase
}

// Phase returns the phase this writer acts as.
func (w *Writer) Phase() Phase {
	return w.phase
}

// Document returns the underlying document.
func (w *Writer) Document() *Document {
	return w.doc
}

// lock acquires the write lock when w owns the document.
func (w *Writer) lock() error {
	w.doc.mu.Lock()
	if w.doc.owner != w.phase {
		owner := w.doc.owner
		w.doc.mu.Unlock()
		return fmt.Errorf("%w: %s write while %s owns it", ErrNotOwner, w.phase, owner)
	}
	return nil
}

func (w *Writer) unlock() {
	w.doc.mu.Unlock()
}

// AddClass adds name to the root class list once.
func (w *Writer) AddClass(name string) error {
	if err := w.lock(); err != nil {
		return err
	}
	defer w.unlock()
	if name != "" && !slices.Contains(w.doc.classes, name) {
		w.doc.classes = append(w.doc.classes, name)
	}
	return nil
}

// RemoveClass removes names from the root class list.
func (w *Writer) RemoveClass(names ...string) error {
	if err := w.lock(); err != nil {
		return err
	}
	defer w.unlock()
	w.doc.classes = slices.DeleteFunc(w.doc.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
	return nil
}

// SetAttribute sets a root attribute.
func (w *Writer) SetAttribute(name, value string) error {
	if err := w.lock(); err != nil {
		return err
	}
	defer w.unlock()
	w.doc.attrs[name] = value
	return nil
}

// SetStyleProperty sets a root inline style property. An empty value
// removes the property.
func (w *Writer) SetStyleProperty(name, value string) error {
	if err := w.lock(); err != nil {
		return err
	}
	defer w.unlock()
	if value == "" {
		if _, ok := w.doc.style[name]; ok {
			delete(w.doc.style, name)
			w.doc.styleOrder = slices.DeleteFunc(w.doc.styleOrder, func(n string) bool { return n == name })
		}
		return nil
	}
	if _, ok := w.doc.style[name]; !ok {
		w.doc.styleOrder = append(w.doc.styleOrder, name)
	}
	w.doc.style[name] = value
	return nil
}

// AppendStyleElement appends a <style> element to the head.
func (w *Writer) AppendStyleElement(id, css string) error {
	if err := w.lock(); err != nil {
		return err
	}
	defer w.unlock()
	w.doc.head = append(w.doc.head, &Element{Tag: "style", ID: id, Text: css})
	return nil
}

// RemoveElement removes the head element with id. Returns false when absent.
func (w *Writer) RemoveElement(id string) (bool, error) {
	if err := w.lock(); err != nil {
		return false, err
	}
	defer w.unlock()
	for i, el := range w.doc.head {
		if el.ID == id && id != "" {
			w.doc.head = slices.Delete(w.doc.head, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

// SetMetaContent updates an existing meta tag. Returns false when the page
// has no such tag; missing tags are not created.
func (w *Writer) SetMetaContent(name, content string) (bool, error) {
	if err := w.lock(); err != nil {
		return false, err
	}
	defer w.unlock()
	el := w.doc.findMeta(name)
	if el == nil {
		return false, nil
	}
	el.Content = content
	return true, nil
}
