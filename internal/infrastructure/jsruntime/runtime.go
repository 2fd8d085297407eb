// Package jsruntime executes the head and attach scripts against a
// document.Document inside a sobek VM, providing the small slice of browser
// globals the scripts touch.
package jsruntime

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/grafana/sobek"
	"github.com/rs/zerolog"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/infrastructure/document"
	"github.com/bnema/themesync/internal/logging"
)

// ErrStorageDenied is thrown into the script when no storage is attached,
// the way browsers deny storage in restricted contexts.
var ErrStorageDenied = errors.New("storage access denied")

// Environment is what the page looks like to the script.
type Environment struct {
	// Document receives the script's writes through the priming writer.
	Document *document.Document
	// Storage backs window.localStorage. Nil makes every access throw.
	Storage port.PreferenceStore
	// Cookies is the value of document.cookie.
	Cookies string
	// System backs window.matchMedia. Nil leaves matchMedia undefined.
	System port.SystemPreferenceReader
	// Phase is the phase the script writes as. The zero value is the head
	// script; the attach script runs as document.PhaseInteractive.
	Phase document.Phase
}

var metaSelector = regexp.MustCompile(`^meta\[name=["']?([^"'\]]+)["']?\]$`)

// Run executes script once. It returns an error only for exceptions that
// escape the script or for cancellation.
func Run(ctx context.Context, script string, env Environment) error {
	if env.Document == nil {
		return fmt.Errorf("jsruntime: environment has no document")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("jsruntime: %w", err)
	}
	log := logging.FromContext(logging.WithComponent(ctx, "jsruntime"))

	vm := sobek.New()
	b := &bindings{ctx: ctx, vm: vm, env: env, w: env.Document.Writer(env.Phase), log: log}
	if err := b.install(); err != nil {
		return fmt.Errorf("jsruntime: install globals: %w", err)
	}

	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	if _, err := vm.RunString(script); err != nil {
		var interrupted *sobek.InterruptedError
		if errors.As(err, &interrupted) {
			return fmt.Errorf("jsruntime: interrupted: %w", ctx.Err())
		}
		return fmt.Errorf("jsruntime: run script: %w", err)
	}
	log.Debug().
		Str("phase", env.Phase.String()).
		Strs("classes", env.Document.Classes()).
		Msg("script executed")
	return nil
}

type bindings struct {
	ctx context.Context
	vm  *sobek.Runtime
	env Environment
	w   *document.Writer
	log *zerolog.Logger
}

// throw raises err as a JavaScript exception.
func (b *bindings) throw(op string, err error) {
	b.log.Debug().Err(err).Str("op", op).Msg("binding threw")
	panic(b.vm.NewGoError(fmt.Errorf("%s: %w", op, err)))
}

func (b *bindings) fn(f func(call sobek.FunctionCall) sobek.Value) sobek.Value {
	return b.vm.ToValue(f)
}

func (b *bindings) install() error {
	global := b.vm.GlobalObject()
	if err := global.Set("window", global); err != nil {
		return err
	}
	if err := b.installStorage(global); err != nil {
		return err
	}
	if b.env.System != nil {
		if err := global.Set("matchMedia", b.fn(b.matchMedia)); err != nil {
			return err
		}
	}
	doc, err := b.documentObject()
	if err != nil {
		return err
	}
	return global.Set("document", doc)
}

func (b *bindings) installStorage(global *sobek.Object) error {
	getter := b.fn(func(sobek.FunctionCall) sobek.Value {
		if b.env.Storage == nil {
			b.throw("localStorage", ErrStorageDenied)
		}
		return b.storageObject()
	})
	return global.DefineAccessorProperty("localStorage", getter, nil, sobek.FLAG_FALSE, sobek.FLAG_TRUE)
}

func (b *bindings) storageObject() sobek.Value {
	obj := b.vm.NewObject()
	_ = obj.Set("getItem", b.fn(func(call sobek.FunctionCall) sobek.Value {
		v, ok, err := b.env.Storage.Get(b.ctx, call.Argument(0).String())
		if err != nil {
			b.throw("localStorage.getItem", err)
		}
		if !ok {
			return sobek.Null()
		}
		return b.vm.ToValue(v)
	}))
	_ = obj.Set("setItem", b.fn(func(call sobek.FunctionCall) sobek.Value {
		if err := b.env.Storage.Set(b.ctx, call.Argument(0).String(), call.Argument(1).String()); err != nil {
			b.throw("localStorage.setItem", err)
		}
		return sobek.Undefined()
	}))
	return obj
}

func (b *bindings) matchMedia(call sobek.FunctionCall) sobek.Value {
	query := call.Argument(0).String()
	normalized := strings.ToLower(strings.Join(strings.Fields(query), ""))

	prefersDark := b.env.System.Resolve().PrefersDark
	matches := false
	switch {
	case strings.Contains(normalized, "prefers-color-scheme:dark"):
		matches = prefersDark
	case strings.Contains(normalized, "prefers-color-scheme:light"):
		matches = !prefersDark
	}

	obj := b.vm.NewObject()
	_ = obj.Set("matches", matches)
	_ = obj.Set("media", query)
	return obj
}

func (b *bindings) documentObject() (*sobek.Object, error) {
	doc := b.vm.NewObject()

	if err := doc.Set("documentElement", b.rootObject()); err != nil {
		return nil, err
	}

	head := b.vm.NewObject()
	_ = head.Set("appendChild", b.fn(b.appendChild))
	_ = head.Set("removeChild", b.fn(b.removeChild))
	if err := doc.Set("head", head); err != nil {
		return nil, err
	}

	_ = doc.Set("createElement", b.fn(func(call sobek.FunctionCall) sobek.Value {
		el := b.vm.NewObject()
		_ = el.Set("tagName", strings.ToUpper(call.Argument(0).String()))
		_ = el.Set("id", "")
		_ = el.Set("textContent", "")
		return el
	}))

	_ = doc.Set("querySelector", b.fn(b.querySelector))

	_ = doc.Set("getElementById", b.fn(func(call sobek.FunctionCall) sobek.Value {
		el, ok := b.env.Document.ElementByID(call.Argument(0).String())
		if !ok {
			return sobek.Null()
		}
		obj := b.vm.NewObject()
		_ = obj.Set("id", el.ID)
		_ = obj.Set("tagName", strings.ToUpper(el.Tag))
		_ = obj.Set("textContent", el.Text)
		_ = obj.Set("parentNode", head)
		return obj
	}))

	cookie := b.fn(func(sobek.FunctionCall) sobek.Value {
		return b.vm.ToValue(b.env.Cookies)
	})
	if err := doc.DefineAccessorProperty("cookie", cookie, nil, sobek.FLAG_FALSE, sobek.FLAG_TRUE); err != nil {
		return nil, err
	}
	return doc, nil
}

func (b *bindings) appendChild(call sobek.FunctionCall) sobek.Value {
	el := call.Argument(0).ToObject(b.vm)
	if tag := el.Get("tagName"); tag == nil || tag.String() != "STYLE" {
		b.throw("head.appendChild", fmt.Errorf("unsupported element"))
	}
	if err := b.w.AppendStyleElement(el.Get("id").String(), el.Get("textContent").String()); err != nil {
		b.throw("head.appendChild", err)
	}
	return el
}

func (b *bindings) removeChild(call sobek.FunctionCall) sobek.Value {
	el := call.Argument(0).ToObject(b.vm)
	id := el.Get("id")
	if id == nil {
		b.throw("head.removeChild", fmt.Errorf("element has no id"))
	}
	ok, err := b.w.RemoveElement(id.String())
	if err != nil {
		b.throw("head.removeChild", err)
	}
	if !ok {
		b.throw("head.removeChild", fmt.Errorf("element %q is not a child", id.String()))
	}
	return el
}

func (b *bindings) querySelector(call sobek.FunctionCall) sobek.Value {
	m := metaSelector.FindStringSubmatch(strings.TrimSpace(call.Argument(0).String()))
	if m == nil {
		return sobek.Null()
	}
	name := m[1]
	content, ok := b.env.Document.Meta(name)
	if !ok {
		return sobek.Null()
	}

	meta := b.vm.NewObject()
	_ = meta.Set("getAttribute", b.fn(func(call sobek.FunctionCall) sobek.Value {
		if call.Argument(0).String() == "content" {
			current, _ := b.env.Document.Meta(name)
			return b.vm.ToValue(current)
		}
		if call.Argument(0).String() == "name" {
			return b.vm.ToValue(name)
		}
		return sobek.Null()
	}))
	_ = meta.Set("setAttribute", b.fn(func(call sobek.FunctionCall) sobek.Value {
		if call.Argument(0).String() != "content" {
			return sobek.Undefined()
		}
		if _, err := b.w.SetMetaContent(name, call.Argument(1).String()); err != nil {
			b.throw("meta.setAttribute", err)
		}
		return sobek.Undefined()
	}))
	_ = meta.Set("content", content)
	return meta
}

func (b *bindings) rootObject() *sobek.Object {
	root := b.vm.NewObject()
	d := b.env.Document

	classList := b.vm.NewObject()
	_ = classList.Set("add", b.fn(func(call sobek.FunctionCall) sobek.Value {
		for _, arg := range call.Arguments {
			if err := b.w.AddClass(arg.String()); err != nil {
				b.throw("classList.add", err)
			}
		}
		return sobek.Undefined()
	}))
	_ = classList.Set("remove", b.fn(func(call sobek.FunctionCall) sobek.Value {
		names := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			names = append(names, arg.String())
		}
		if err := b.w.RemoveClass(names...); err != nil {
			b.throw("classList.remove", err)
		}
		return sobek.Undefined()
	}))
	_ = classList.Set("contains", b.fn(func(call sobek.FunctionCall) sobek.Value {
		return b.vm.ToValue(d.HasClass(call.Argument(0).String()))
	}))
	_ = root.Set("classList", classList)

	_ = root.Set("setAttribute", b.fn(func(call sobek.FunctionCall) sobek.Value {
		if err := b.w.SetAttribute(call.Argument(0).String(), call.Argument(1).String()); err != nil {
			b.throw("setAttribute", err)
		}
		return sobek.Undefined()
	}))
	_ = root.Set("getAttribute", b.fn(func(call sobek.FunctionCall) sobek.Value {
		v, ok := d.Attribute(call.Argument(0).String())
		if !ok {
			return sobek.Null()
		}
		return b.vm.ToValue(v)
	}))

	_ = root.Set("style", b.styleObject())
	return root
}

func (b *bindings) styleObject() *sobek.Object {
	style := b.vm.NewObject()
	d := b.env.Document

	set := func(op, name, value string) {
		if err := b.w.SetStyleProperty(name, value); err != nil {
			b.throw(op, err)
		}
	}

	_ = style.Set("setProperty", b.fn(func(call sobek.FunctionCall) sobek.Value {
		set("style.setProperty", call.Argument(0).String(), call.Argument(1).String())
		return sobek.Undefined()
	}))
	_ = style.Set("getPropertyValue", b.fn(func(call sobek.FunctionCall) sobek.Value {
		return b.vm.ToValue(d.StyleProperty(call.Argument(0).String()))
	}))

	accessors := map[string]string{
		"backgroundColor": document.StyleBackgroundColor,
		"color":           document.StyleColor,
	}
	for jsName, cssName := range accessors {
		getter := b.fn(func(sobek.FunctionCall) sobek.Value {
			return b.vm.ToValue(d.StyleProperty(cssName))
		})
		setter := b.fn(func(call sobek.FunctionCall) sobek.Value {
			set("style."+jsName, cssName, call.Argument(0).String())
			return sobek.Undefined()
		})
		_ = style.DefineAccessorProperty(jsName, getter, setter, sobek.FLAG_FALSE, sobek.FLAG_TRUE)
	}
	return style
}
