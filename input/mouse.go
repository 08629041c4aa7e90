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

package input

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/ref"
	"dirpx.dev/facet/window"
)

var (
	ErrRawInputTooLarge = errors.New("facet(input): raw input record too large")
	ErrRawInputShort    = errors.New("facet(input): raw input record truncated")
)

var (
	// MouseFacet identifies mouse trackers.
	MouseFacet = facet.MustRegister[*Mouse](apis.NewFacet("input.mouse"))
	mouseChain = ref.Chain(MouseFacet)
)

// Raw input record layout: a 24 byte header (type, size, device, wParam)
// followed by the device data. For a mouse the relative motion sits at
// offsets 12 and 16 of the data.
const (
	RawHeaderSize = 24
	RawMouseSize  = RawHeaderSize + 24
	RawTypeMouse  = 0

	offLastX = RawHeaderSize + 12
	offLastY = RawHeaderSize + 16
)

// Mouse tracks the cursor position and the relative motion reported by raw
// input. It is not safe for concurrent use.
type Mouse struct {
	ref.Object
	pos    window.Point
	mov    window.Point
	target window.Handle
}

// NewMouse returns a tracker at the origin.
func NewMouse() *Mouse {
	m := &Mouse{}
	m.Init(m, mouseChain)
	return m
}

// UpdatePos samples the cursor position.
func (m *Mouse) UpdatePos() error {
	p, err := window.Current()
	if err != nil {
		return err
	}
	pt, err := p.CursorPos()
	if err != nil {
		return fmt.Errorf("facet(input): cursor position: %w", err)
	}
	m.pos = pt
	return nil
}

func (m *Mouse) Pos() window.Point { return m.pos }
func (m *Mouse) X() int32          { return m.pos.X }
func (m *Mouse) Y() int32          { return m.pos.Y }

// UpdateRawMove decodes one raw input record and adds its motion to the
// pending move. Records from other device types are ignored.
func (m *Mouse) UpdateRawMove(payload []byte) error {
	if len(payload) > RawMouseSize {
		return fmt.Errorf("%w: %d > %d bytes", ErrRawInputTooLarge, len(payload), RawMouseSize)
	}
	if len(payload) < RawHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrRawInputShort, len(payload))
	}
	if binary.LittleEndian.Uint32(payload) != RawTypeMouse {
		return nil
	}
	if len(payload) < RawMouseSize {
		return fmt.Errorf("%w: %d bytes", ErrRawInputShort, len(payload))
	}
	m.mov.X += int32(binary.LittleEndian.Uint32(payload[offLastX:]))
	m.mov.Y += int32(binary.LittleEndian.Uint32(payload[offLastY:]))
	return nil
}

// ReadRawMove fetches the record behind a MsgInput lParam from the platform
// and applies it. Call it from the window procedure.
func (m *Mouse) ReadRawMove(lParam uintptr) error {
	p, err := window.Current()
	if err != nil {
		return err
	}
	b, err := p.RawInput(lParam)
	if err != nil {
		return fmt.Errorf("facet(input): raw input: %w", err)
	}
	return m.UpdateRawMove(b)
}

// TakeMove returns the motion accumulated since the last call and resets
// it.
func (m *Mouse) TakeMove() window.Point {
	mv := m.mov
	m.mov = window.Point{}
	return mv
}

// UseRawMouse routes raw mouse input to w.
func (m *Mouse) UseRawMouse(w *window.Window) error {
	p, err := window.Current()
	if err != nil {
		return err
	}
	if err := p.RegisterRawMouse(w.Handle(), false); err != nil {
		return fmt.Errorf("facet(input): register raw mouse: %w", err)
	}
	m.target = w.Handle()
	slog.Debug("facet(input): raw mouse enabled", "window", uintptr(w.Handle()))
	return nil
}

// DisableRawMouse stops raw mouse input.
func (m *Mouse) DisableRawMouse() error {
	p, err := window.Current()
	if err != nil {
		return err
	}
	if err := p.RegisterRawMouse(0, true); err != nil {
		return fmt.Errorf("facet(input): unregister raw mouse: %w", err)
	}
	m.target = 0
	return nil
}

// RawTarget returns the window raw input was routed to, or 0.
func (m *Mouse) RawTarget() window.Handle { return m.target }

// EncodeRawMouse builds a raw mouse record with motion dx, dy.
func EncodeRawMouse(dx, dy int32) []byte {
	b := make([]byte, RawMouseSize)
	binary.LittleEndian.PutUint32(b[0:], RawTypeMouse)
	binary.LittleEndian.PutUint32(b[4:], RawMouseSize)
	binary.LittleEndian.PutUint32(b[offLastX:], uint32(dx))
	binary.LittleEndian.PutUint32(b[offLastY:], uint32(dy))
	return b
}
