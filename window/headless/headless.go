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

// Package headless is an in-memory window.Platform. It keeps classes,
// windows, keyboard state and a message queue in process, and doubles as the
// frame.Source that drains the queue into window procedures. It backs the
// tests and the facetctl loop command on machines without a display.
package headless

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"dirpx.dev/facet/frame"
	"dirpx.dev/facet/window"
)

var (
	ErrClassExists     = errors.New("facet(headless): class already registered")
	ErrUnknownClass    = errors.New("facet(headless): unknown class")
	ErrClassHasWindows = errors.New("facet(headless): class still has windows")
	ErrUnknownWindow   = errors.New("facet(headless): unknown window")
	ErrNoRawInput      = errors.New("facet(headless): no raw input for handle")
)

const (
	defaultBorder  = 3
	defaultCaption = 20
	defaultMenu    = 20
	defaultWidth   = 640
	defaultHeight  = 480
	defaultX       = 100
	defaultY       = 100
)

// Info is a snapshot of one window.
type Info struct {
	Spec      window.WindowSpec
	Rect      window.Rect
	Title     string
	Visible   bool
	Minimized bool
	Updates   int
}

type win struct {
	Info
	class string
}

// Option configures a Platform.
type Option func(*Platform)

// WithFrame sets the non-client metrics used by AdjustRect: the border
// thickness on each side and the caption and menu bar heights.
func WithFrame(border, caption, menu int32) Option {
	return func(p *Platform) {
		p.border, p.caption, p.menu = border, caption, menu
	}
}

// Platform implements window.Platform and frame.Source. It is safe for
// concurrent use; procedures run without the lock held.
type Platform struct {
	mu      sync.Mutex
	classes map[string]window.ClassSpec
	windows map[window.Handle]*win
	next    window.Handle
	queue   []frame.Event
	keys    [256]byte
	cursor  window.Point
	raw     window.Handle
	rawSeq  uintptr
	rawData map[uintptr][]byte

	border  int32
	caption int32
	menu    int32
}

var (
	_ window.Platform = (*Platform)(nil)
	_ frame.Source    = (*Platform)(nil)
)

// New returns an empty platform.
func New(opts ...Option) *Platform {
	p := &Platform{
		classes: make(map[string]window.ClassSpec),
		windows: make(map[window.Handle]*win),
		rawData: make(map[uintptr][]byte),
		next:    0x10000,
		border:  defaultBorder,
		caption: defaultCaption,
		menu:    defaultMenu,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Platform) RegisterClass(spec window.ClassSpec) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.classes[spec.Name]; ok {
		return fmt.Errorf("%w: %q", ErrClassExists, spec.Name)
	}
	p.classes[spec.Name] = spec
	return nil
}

func (p *Platform) UnregisterClass(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.classes[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	for _, w := range p.windows {
		if w.class == name {
			return fmt.Errorf("%w: %q", ErrClassHasWindows, name)
		}
	}
	delete(p.classes, name)
	return nil
}

// Classes returns the number of registered classes.
func (p *Platform) Classes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.classes)
}

func (p *Platform) AdjustRect(r window.Rect, style uint32, menu bool, exStyle uint32) (window.Rect, error) {
	return p.adjust(r, style, menu, exStyle), nil
}

func (p *Platform) adjust(r window.Rect, style uint32, menu bool, exStyle uint32) window.Rect {
	grow := int32(0)
	if style&(window.StyleBorder|window.StyleDLGFrame|window.StyleThickFrame) != 0 {
		grow += p.border
	}
	if exStyle&window.ExStyleClientEdge != 0 {
		grow += 2
	}
	r.Left -= grow
	r.Top -= grow
	r.Right += grow
	r.Bottom += grow
	if style&window.StyleCaption == window.StyleCaption {
		r.Top -= p.caption
	}
	if menu {
		r.Top -= p.menu
	}
	return r
}

func (p *Platform) CreateWindow(spec window.WindowSpec) (window.Handle, error) {
	p.mu.Lock()
	class, ok := p.classes[spec.Class]
	if !ok {
		p.mu.Unlock()
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, spec.Class)
	}
	x, y := orDefault(spec.X, defaultX), orDefault(spec.Y, defaultY)
	w, h := orDefault(spec.Width, defaultWidth), orDefault(spec.Height, defaultHeight)
	p.next++
	hwnd := p.next
	p.windows[hwnd] = &win{
		Info: Info{
			Spec:      spec,
			Rect:      window.Rect{Left: x, Top: y, Right: x + w, Bottom: y + h},
			Title:     spec.Title,
			Visible:   spec.Style&window.StyleVisible != 0,
			Minimized: spec.Style&window.StyleMinimize != 0,
		},
		class: spec.Class,
	}
	p.mu.Unlock()

	slog.Debug("facet(headless): window created", "handle", uintptr(hwnd), "class", spec.Class)
	call(class.Proc, hwnd, window.MsgCreate, 0, spec.Param)
	return hwnd, nil
}

func (p *Platform) DestroyWindow(h window.Handle) error {
	p.mu.Lock()
	w, ok := p.windows[h]
	if !ok {
		p.mu.Unlock()
		return fmt.Errorf("%w: %#x", ErrUnknownWindow, uintptr(h))
	}
	proc := p.classes[w.class].Proc
	delete(p.windows, h)
	if p.raw == h {
		p.raw = 0
	}
	p.mu.Unlock()

	call(proc, h, window.MsgDestroy, 0, 0)
	return nil
}

// Window returns a snapshot of h.
func (p *Platform) Window(h window.Handle) (Info, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, ok := p.windows[h]
	if !ok {
		return Info{}, false
	}
	return w.Info, true
}

// Windows returns the number of live windows.
func (p *Platform) Windows() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.windows)
}

func (p *Platform) WindowStyle(h window.Handle) (uint32, uint32, bool, error) {
	var style, ex uint32
	var menu bool
	err := p.with(h, func(w *win) {
		style, ex, menu = w.Spec.Style, w.Spec.ExStyle, w.Spec.Menu != 0
	})
	return style, ex, menu, err
}

func (p *Platform) SetTitle(h window.Handle, title string) error {
	return p.with(h, func(w *win) { w.Title = title })
}

func (p *Platform) Show(h window.Handle, cmd window.ShowCmd) error {
	return p.with(h, func(w *win) {
		switch cmd {
		case window.ShowHide:
			w.Visible = false
		case window.ShowMinimize:
			w.Visible, w.Minimized = true, true
		default:
			w.Visible, w.Minimized = true, false
		}
	})
}

func (p *Platform) Update(h window.Handle) error {
	return p.with(h, func(w *win) { w.Updates++ })
}

func (p *Platform) SetPos(h window.Handle, x, y int32) error {
	return p.with(h, func(w *win) {
		w.Rect = window.Rect{Left: x, Top: y, Right: x + w.Rect.Width(), Bottom: y + w.Rect.Height()}
	})
}

func (p *Platform) SetSize(h window.Handle, width, height int32) error {
	return p.with(h, func(w *win) {
		w.Rect.Right = w.Rect.Left + width
		w.Rect.Bottom = w.Rect.Top + height
	})
}

func (p *Platform) WindowRect(h window.Handle) (window.Rect, error) {
	var r window.Rect
	err := p.with(h, func(w *win) { r = w.Rect })
	return r, err
}

// ClientRect removes the non-client area AdjustRect would add.
func (p *Platform) ClientRect(h window.Handle) (window.Rect, error) {
	var r window.Rect
	err := p.with(h, func(w *win) {
		nc := p.adjust(window.Rect{}, w.Spec.Style, w.Spec.Menu != 0, w.Spec.ExStyle)
		r = window.Rect{
			Right:  max(0, w.Rect.Width()-nc.Width()),
			Bottom: max(0, w.Rect.Height()-nc.Height()),
		}
	})
	return r, err
}

func (p *Platform) KeyboardState(dst *[256]byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	*dst = p.keys
	return nil
}

// SetKey marks virtual key vk as down or up.
func (p *Platform) SetKey(vk uint8, down bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if down {
		p.keys[vk] = 0x80
	} else {
		p.keys[vk] = 0
	}
}

func (p *Platform) CursorPos() (window.Point, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor, nil
}

// SetCursor moves the cursor.
func (p *Platform) SetCursor(pt window.Point) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = pt
}

func (p *Platform) RegisterRawMouse(target window.Handle, remove bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if remove {
		p.raw = 0
		return nil
	}
	if _, ok := p.windows[target]; !ok && target != 0 {
		return fmt.Errorf("%w: %#x", ErrUnknownWindow, uintptr(target))
	}
	p.raw = target
	return nil
}

// RawTarget returns the window receiving raw mouse input, or 0.
func (p *Platform) RawTarget() window.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.raw
}

// Post queues e for the next Drain.
func (p *Platform) Post(e frame.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, e)
}

// PostRawMouse queues a raw input message carrying payload for the window
// registered with RegisterRawMouse. It reports false when none is.
func (p *Platform) PostRawMouse(payload []byte) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.raw == 0 {
		return false
	}
	p.rawSeq++
	p.rawData[p.rawSeq] = payload
	p.queue = append(p.queue, frame.Event{Window: uintptr(p.raw), Msg: window.MsgInput, LParam: p.rawSeq, Payload: payload})
	return true
}

func (p *Platform) RawInput(lParam uintptr) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.rawData[lParam]
	if !ok {
		return nil, fmt.Errorf("%w: %#x", ErrNoRawInput, lParam)
	}
	return b, nil
}

// Pending returns the number of queued events.
func (p *Platform) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Drain dispatches every queued event matching f, in posting order, to the
// procedure of the event's window class. Events for unknown windows are
// consumed without dispatch.
func (p *Platform) Drain(f frame.Filter) (last frame.Event, n int) {
	type pending struct {
		e    frame.Event
		proc window.Proc
	}

	p.mu.Lock()
	var batch []pending
	keep := p.queue[:0]
	for _, e := range p.queue {
		if !f.Match(e) {
			keep = append(keep, e)
			continue
		}
		var proc window.Proc
		if w, ok := p.windows[window.Handle(e.Window)]; ok {
			proc = p.classes[w.class].Proc
		}
		batch = append(batch, pending{e: e, proc: proc})
		if f.Keep {
			keep = append(keep, e)
		}
	}
	clear(p.queue[len(keep):])
	p.queue = keep
	p.mu.Unlock()

	for _, b := range batch {
		call(b.proc, window.Handle(b.e.Window), b.e.Msg, b.e.WParam, b.e.LParam)
		if b.e.Msg == window.MsgInput && !f.Keep {
			p.mu.Lock()
			delete(p.rawData, b.e.LParam)
			p.mu.Unlock()
		}
		last = b.e
	}
	return last, len(batch)
}

func (p *Platform) with(h window.Handle, fn func(*win)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, ok := p.windows[h]
	if !ok {
		return fmt.Errorf("%w: %#x", ErrUnknownWindow, uintptr(h))
	}
	fn(w)
	return nil
}

func call(proc window.Proc, h window.Handle, msg uint32, wParam, lParam uintptr) {
	if proc != nil {
		proc(h, msg, wParam, lParam)
	}
}

func orDefault(v, def int32) int32 {
	if v == window.UseDefault {
		return def
	}
	return v
}
