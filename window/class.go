/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package window

import (
	"fmt"
	"log/slog"

	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/fault"
	"dirpx.dev/facet/ref"
	"dirpx.dev/facet/text"
)

var (
	// ClassConfigFacet identifies window-class configurations.
	ClassConfigFacet = facet.MustRegister[*ClassConfig](apis.NewFacet("window.class_config"))
	// ClassFacet identifies registered window classes.
	ClassFacet = facet.MustRegister[*Class](apis.NewFacet("window.class"))

	classConfigImpl = apis.NewFacet("window.class_config.impl", apis.Hidden())
	classImpl       = apis.NewFacet("window.class.impl", apis.Hidden())

	classConfigChain = ref.CopyChain(ClassConfigFacet, classConfigImpl)
	classChain       = ref.Chain(ClassFacet, classImpl)
)

// implOf fetches the concrete object behind src through its hidden facet. The
// returned object carries one extra count; the caller decrements it. A
// foreign object yields an invalid-object fault named after what.
func implOf[T apis.Ref](src apis.Ref, impl *apis.Facet, what string) (T, error) {
	var zero T
	var slot apis.Ref
	if src == nil || !src.Query(&slot, impl, apis.MatchPointer) {
		return zero, fault.Invalid(what + " : incompatible")
	}
	t, ok := slot.(T)
	if !ok {
		slot.Dec()
		return zero, fault.Invalid(what + " : incompatible")
	}
	return t, nil
}

// ClassConfig describes a window class before registration.
type ClassConfig struct {
	ref.Copyable

	name     *text.WString
	menuName *text.WString
	proc     Proc
	style    uint32
	clsExtra int32
	wndExtra int32
	icon     Handle
	cursor   Handle
	bg       Handle
	iconSm   Handle
}

// NewClassConfig returns a configuration for a class called name, with
// redraw-on-resize style, the arrow cursor and the window color background.
func NewClassConfig(name string, proc Proc) *ClassConfig {
	c := &ClassConfig{
		name:     text.NewWString(name),
		menuName: text.NewWString(""),
		proc:     proc,
		style:    ClassHRedraw | ClassVRedraw,
		cursor:   ArrowCursor,
		bg:       WindowColor,
	}
	c.init()
	return c
}

func (c *ClassConfig) init() {
	c.InitCopyable(c, classConfigChain, c.dup, ref.WithDestroy(func() {
		c.name.Dec()
		c.menuName.Dec()
	}))
}

// dup shares the immutable name holders.
func (c *ClassConfig) dup() (apis.Ref, error) {
	c.name.Inc()
	c.menuName.Inc()
	d := &ClassConfig{
		name:     c.name,
		menuName: c.menuName,
		proc:     c.proc,
		style:    c.style,
		clsExtra: c.clsExtra,
		wndExtra: c.wndExtra,
		icon:     c.icon,
		cursor:   c.cursor,
		bg:       c.bg,
		iconSm:   c.iconSm,
	}
	d.init()
	return d, nil
}

func (c *ClassConfig) SetName(name string) *ClassConfig {
	c.name.Dec()
	c.name = text.NewWString(name)
	return c
}

func (c *ClassConfig) SetProc(p Proc) *ClassConfig {
	c.proc = p
	return c
}

// SetStyle copies the bits of a ClassStyle. Anything else is rejected with
// an invalid-object fault and leaves c unchanged.
func (c *ClassConfig) SetStyle(s apis.Ref) (*ClassConfig, error) {
	impl, err := implOf[*ClassStyle](s, classStyleImpl, "ClassStyle")
	if err != nil {
		return c, err
	}
	c.style = impl.Value()
	impl.Dec()
	return c, nil
}

func (c *ClassConfig) SetClsExtraBytes(n int32) *ClassConfig {
	c.clsExtra = n
	return c
}

func (c *ClassConfig) SetWndExtraBytes(n int32) *ClassConfig {
	c.wndExtra = n
	return c
}

func (c *ClassConfig) SetIcon(h Handle) *ClassConfig {
	c.icon = h
	return c
}

func (c *ClassConfig) SetCursor(h Handle) *ClassConfig {
	c.cursor = h
	return c
}

func (c *ClassConfig) SetBackground(h Handle) *ClassConfig {
	c.bg = h
	return c
}

func (c *ClassConfig) SetIconSm(h Handle) *ClassConfig {
	c.iconSm = h
	return c
}

func (c *ClassConfig) SetMenuName(name string) *ClassConfig {
	c.menuName.Dec()
	c.menuName = text.NewWString(name)
	return c
}

func (c *ClassConfig) Name() string     { return c.name.String() }
func (c *ClassConfig) Proc() Proc       { return c.proc }
func (c *ClassConfig) Style() uint32    { return c.style }
func (c *ClassConfig) MenuName() string { return c.menuName.String() }

// Spec flattens c into the form the platform registers.
func (c *ClassConfig) Spec() ClassSpec {
	return ClassSpec{
		Name:       c.name.String(),
		Proc:       c.proc,
		Style:      c.style,
		ClsExtra:   c.clsExtra,
		WndExtra:   c.wndExtra,
		Icon:       c.icon,
		Cursor:     c.cursor,
		Background: c.bg,
		IconSm:     c.iconSm,
		MenuName:   c.menuName.String(),
	}
}

// Class is a registered window class. The platform registration is undone
// when the last reference goes away.
type Class struct {
	ref.Object
	name *text.WString
}

// NewClass registers the class described by cfg, which must be a
// ClassConfig. cfg keeps its own count.
func NewClass(cfg apis.Ref) (*Class, error) {
	p, err := Current()
	if err != nil {
		return nil, err
	}
	impl, err := implOf[*ClassConfig](cfg, classConfigImpl, "ClassConfig")
	if err != nil {
		return nil, err
	}
	defer impl.Dec()

	spec := impl.Spec()
	if err := validateSpec("class", spec); err != nil {
		return nil, err
	}
	if err := p.RegisterClass(spec); err != nil {
		slog.Warn("facet(window): class registration failed", "class", spec.Name, "error", err)
		return nil, fmt.Errorf("facet(window): register class %q: %w", spec.Name, err)
	}

	impl.name.Inc()
	c := &Class{name: impl.name}
	c.Init(c, classChain, ref.WithDestroy(func() {
		if err := p.UnregisterClass(c.name.String()); err != nil {
			slog.Warn("facet(window): class unregistration failed", "class", c.name.String(), "error", err)
		}
		c.name.Dec()
	}))
	return c, nil
}

// Name returns the registered class name.
func (c *Class) Name() string {
	return c.name.String()
}
