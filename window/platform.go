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

// Package window holds the window-class and window configuration objects and
// the factories that turn them into platform windows. Every object is
// reference counted and exposes its facets through the ref package; the
// operating system itself sits behind the Platform interface installed with
// Init.
package window

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
)

// ErrNoPlatform is returned by every factory until Init installs a Platform.
var ErrNoPlatform = errors.New("facet(window): no platform installed")

// Handle is an opaque platform value: a window, icon, cursor, brush or menu.
type Handle uintptr

// Proc is a window procedure.
type Proc func(w Handle, msg uint32, wParam, lParam uintptr) uintptr

// UseDefault lets the platform pick a position or size.
const UseDefault int32 = math.MinInt32

const (
	// ArrowCursor is the stock arrow cursor resource.
	ArrowCursor Handle = 32512
	// WindowColor is the stock window background brush.
	WindowColor Handle = 5 + 1
)

// ShowCmd selects how Platform.Show changes visibility.
type ShowCmd int32

const (
	ShowHide     ShowCmd = 0
	ShowNormal   ShowCmd = 1
	ShowVisible  ShowCmd = 5
	ShowMinimize ShowCmd = 6
)

// Rect is a rectangle in screen or client coordinates.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Width returns Right-Left.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Point is a screen position.
type Point struct {
	X, Y int32
}

// ClassSpec is what the platform needs to register a window class.
type ClassSpec struct {
	Name       string `validate:"required,max=256"`
	Proc       Proc   `validate:"required"`
	Style      uint32
	ClsExtra   int32 `validate:"gte=0,lte=40"`
	WndExtra   int32 `validate:"gte=0,lte=40"`
	Icon       Handle
	Cursor     Handle
	Background Handle
	IconSm     Handle
	MenuName   string `validate:"max=256"`
}

// WindowSpec is what the platform needs to create a window.
type WindowSpec struct {
	ExStyle uint32
	Class   string `validate:"required"`
	Title   string
	Style   uint32
	X       int32
	Y       int32
	Width   int32 `validate:"eq=-2147483648|gte=0"`
	Height  int32 `validate:"eq=-2147483648|gte=0"`
	Parent  Handle
	Menu    Handle
	Param   uintptr
}

// Platform is the operating-system collaborator. Implementations must be
// safe for use from the goroutine running the frame loop.
type Platform interface {
	RegisterClass(spec ClassSpec) error
	UnregisterClass(name string) error
	// AdjustRect grows a client rectangle to the window rectangle that
	// contains it for the given styles.
	AdjustRect(r Rect, style uint32, menu bool, exStyle uint32) (Rect, error)
	CreateWindow(spec WindowSpec) (Handle, error)
	DestroyWindow(w Handle) error
	// WindowStyle reports the live styles of w and whether it has a menu.
	WindowStyle(w Handle) (style, exStyle uint32, menu bool, err error)
	SetTitle(w Handle, title string) error
	Show(w Handle, cmd ShowCmd) error
	Update(w Handle) error
	SetPos(w Handle, x, y int32) error
	SetSize(w Handle, width, height int32) error
	WindowRect(w Handle) (Rect, error)
	ClientRect(w Handle) (Rect, error)
	KeyboardState(dst *[256]byte) error
	CursorPos() (Point, error)
	// RegisterRawMouse routes raw mouse input to target. remove stops it.
	RegisterRawMouse(target Handle, remove bool) error
	// RawInput returns the raw input record behind the lParam of a MsgInput
	// message. It is valid only while that message is being dispatched.
	RawInput(lParam uintptr) ([]byte, error)
}

var (
	platform atomic.Pointer[Platform]
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Init installs p and returns the previous platform. A nil p uninstalls.
func Init(p Platform) Platform {
	var prev *Platform
	if p == nil {
		prev = platform.Swap(nil)
	} else {
		prev = platform.Swap(&p)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

// Current returns the installed platform or ErrNoPlatform.
func Current() (Platform, error) {
	p := platform.Load()
	if p == nil {
		return nil, ErrNoPlatform
	}
	return *p, nil
}

func validateSpec(kind string, spec any) error {
	if err := validate.Struct(spec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			slog.Debug("facet(window): rejected spec", "kind", kind, "field", verrs[0].Field(), "tag", verrs[0].Tag())
		}
		return fmt.Errorf("facet(window): invalid %s: %w", kind, err)
	}
	return nil
}
