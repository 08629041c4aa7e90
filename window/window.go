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
	"dirpx.dev/facet/ref"
	"dirpx.dev/facet/text"
)

var (
	// ConfigFacet identifies window configurations.
	ConfigFacet = facet.MustRegister[*Config](apis.NewFacet("window.config"))
	// WindowFacet identifies live windows.
	WindowFacet = facet.MustRegister[*Window](apis.NewFacet("window"))

	configImpl = apis.NewFacet("window.config.impl", apis.Hidden())

	configChain = ref.CopyChain(ConfigFacet, configImpl)
	windowChain = ref.Chain(WindowFacet)
)

// DefaultStyle is the style a new Config starts with.
const DefaultStyle = StyleSysMenu | StyleMinimizeBox | StyleCaption

// Config describes a window before creation. It holds a count on its class.
type Config struct {
	ref.Copyable

	class   *Class
	title   *text.WString
	style   uint32
	exStyle uint32
	x, y    int32
	width   int32
	height  int32
	parent  Handle
	menu    Handle
	param   uintptr
}

// NewConfig returns a configuration for a width x height window of class,
// which must be a Class. The position defaults to UseDefault.
func NewConfig(class apis.Ref, width, height int32) (*Config, error) {
	impl, err := implOf[*Class](class, classImpl, "Class")
	if err != nil {
		return nil, err
	}
	c := &Config{
		class:  impl,
		title:  text.NewWString(""),
		style:  DefaultStyle,
		x:      UseDefault,
		y:      UseDefault,
		width:  width,
		height: height,
	}
	c.init()
	return c, nil
}

func (c *Config) init() {
	c.InitCopyable(c, configChain, c.dup, ref.WithDestroy(func() {
		c.class.Dec()
		c.title.Dec()
	}))
}

func (c *Config) dup() (apis.Ref, error) {
	c.class.Inc()
	c.title.Inc()
	d := &Config{
		class:   c.class,
		title:   c.title,
		style:   c.style,
		exStyle: c.exStyle,
		x:       c.x,
		y:       c.y,
		width:   c.width,
		height:  c.height,
		parent:  c.parent,
		menu:    c.menu,
		param:   c.param,
	}
	d.init()
	return d, nil
}

// SetClass swaps the class. On error c keeps its current class.
func (c *Config) SetClass(class apis.Ref) (*Config, error) {
	impl, err := implOf[*Class](class, classImpl, "Class")
	if err != nil {
		return c, err
	}
	c.class.Dec()
	c.class = impl
	return c, nil
}

func (c *Config) SetStyle(s apis.Ref) (*Config, error) {
	impl, err := implOf[*Style](s, styleImpl, "Style")
	if err != nil {
		return c, err
	}
	c.style = impl.Value()
	impl.Dec()
	return c, nil
}

func (c *Config) SetExStyle(s apis.Ref) (*Config, error) {
	impl, err := implOf[*ExStyle](s, exStyleImpl, "ExStyle")
	if err != nil {
		return c, err
	}
	c.exStyle = impl.Value()
	impl.Dec()
	return c, nil
}

func (c *Config) SetX(x int32) *Config       { c.x = x; return c }
func (c *Config) SetY(y int32) *Config       { c.y = y; return c }
func (c *Config) SetWidth(w int32) *Config   { c.width = w; return c }
func (c *Config) SetHeight(h int32) *Config  { c.height = h; return c }
func (c *Config) SetParent(h Handle) *Config { c.parent = h; return c }
func (c *Config) SetMenu(h Handle) *Config   { c.menu = h; return c }
func (c *Config) SetParam(p uintptr) *Config { c.param = p; return c }
func (c *Config) X() int32                   { return c.x }
func (c *Config) Y() int32                   { return c.y }
func (c *Config) Width() int32               { return c.width }
func (c *Config) Height() int32              { return c.height }
func (c *Config) Style() uint32              { return c.style }
func (c *Config) ExStyle() uint32            { return c.exStyle }
func (c *Config) Parent() Handle             { return c.parent }
func (c *Config) Menu() Handle               { return c.menu }
func (c *Config) Param() uintptr             { return c.param }
func (c *Config) Title() string              { return c.title.String() }
func (c *Config) ClassName() string          { return c.class.Name() }

func (c *Config) SetTitle(title string) *Config {
	c.title.Dec()
	c.title = text.NewWString(title)
	return c
}

// Spec flattens c into the form the platform creates.
func (c *Config) Spec() WindowSpec {
	return WindowSpec{
		ExStyle: c.exStyle,
		Class:   c.class.Name(),
		Title:   c.title.String(),
		Style:   c.style,
		X:       c.x,
		Y:       c.y,
		Width:   c.width,
		Height:  c.height,
		Parent:  c.parent,
		Menu:    c.menu,
		Param:   c.param,
	}
}

// Window is a live platform window. It holds a count on its class; the
// platform window is destroyed with the last reference.
type Window struct {
	ref.Object
	h     Handle
	class *Class
	p     Platform
}

// NewWindow creates the window described by cfg, which must be a Config.
// With clientSize the configured size is taken as the client area and grown
// to the outer window size; a UseDefault size is passed through unchanged.
func NewWindow(cfg apis.Ref, clientSize bool) (*Window, error) {
	p, err := Current()
	if err != nil {
		return nil, err
	}
	impl, err := implOf[*Config](cfg, configImpl, "Config")
	if err != nil {
		return nil, err
	}
	defer impl.Dec()

	spec := impl.Spec()
	if clientSize && spec.Width != UseDefault && spec.Height != UseDefault {
		r, err := p.AdjustRect(Rect{Right: spec.Width, Bottom: spec.Height}, spec.Style, spec.Menu != 0, spec.ExStyle)
		if err != nil {
			return nil, fmt.Errorf("facet(window): adjust rect: %w", err)
		}
		spec.Width, spec.Height = r.Width(), r.Height()
	}
	if err := validateSpec("window", spec); err != nil {
		return nil, err
	}
	h, err := p.CreateWindow(spec)
	if err != nil {
		slog.Warn("facet(window): create failed", "class", spec.Class, "error", err)
		return nil, fmt.Errorf("facet(window): create %q: %w", spec.Class, err)
	}

	impl.class.Inc()
	w := &Window{h: h, class: impl.class, p: p}
	w.Init(w, windowChain, ref.WithDestroy(func() {
		if err := p.DestroyWindow(w.h); err != nil {
			slog.Warn("facet(window): destroy failed", "handle", uintptr(w.h), "error", err)
		}
		w.class.Dec()
	}))
	return w, nil
}

// Handle returns the platform handle.
func (w *Window) Handle() Handle { return w.h }

// Class returns the window's class without adding a count.
func (w *Window) Class() *Class { return w.class }

func (w *Window) SetTitle(title string) error { return w.p.SetTitle(w.h, title) }
func (w *Window) Show() error                 { return w.p.Show(w.h, ShowVisible) }
func (w *Window) Hide() error                 { return w.p.Show(w.h, ShowHide) }
func (w *Window) Minimize() error             { return w.p.Show(w.h, ShowMinimize) }
func (w *Window) Update() error               { return w.p.Update(w.h) }

// SetPos moves the window without resizing it.
func (w *Window) SetPos(x, y int32) error { return w.p.SetPos(w.h, x, y) }

// SetSize resizes the outer window without moving it.
func (w *Window) SetSize(width, height int32) error { return w.p.SetSize(w.h, width, height) }

// SetClientSize resizes the window so its client area is width x height,
// using the window's live styles.
func (w *Window) SetClientSize(width, height int32) error {
	style, exStyle, menu, err := w.p.WindowStyle(w.h)
	if err != nil {
		return err
	}
	r, err := w.p.AdjustRect(Rect{Right: width, Bottom: height}, style, menu, exStyle)
	if err != nil {
		return err
	}
	return w.p.SetSize(w.h, r.Width(), r.Height())
}

// Size returns the outer rectangle in screen coordinates.
func (w *Window) Size() (Rect, error) { return w.p.WindowRect(w.h) }

// ClientSize returns the client rectangle; Left and Top are zero.
func (w *Window) ClientSize() (Rect, error) { return w.p.ClientRect(w.h) }
