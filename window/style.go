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
	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/ref"
)

var (
	// ClassStyleFacet identifies class style builders.
	ClassStyleFacet = facet.MustRegister[*ClassStyle](apis.NewFacet("window.class_style"))
	// StyleFacet identifies window style builders.
	StyleFacet = facet.MustRegister[*Style](apis.NewFacet("window.style"))
	// ExStyleFacet identifies extended window style builders.
	ExStyleFacet = facet.MustRegister[*ExStyle](apis.NewFacet("window.ex_style"))

	classStyleImpl = apis.NewFacet("window.class_style.impl", apis.Hidden())
	styleImpl      = apis.NewFacet("window.style.impl", apis.Hidden())
	exStyleImpl    = apis.NewFacet("window.ex_style.impl", apis.Hidden())

	classStyleChain = ref.CopyChain(ClassStyleFacet, classStyleImpl)
	styleChain      = ref.CopyChain(StyleFacet, styleImpl)
	exStyleChain    = ref.CopyChain(ExStyleFacet, exStyleImpl)
)

// ClassStyle accumulates class style bits. Builders are not safe for
// concurrent mutation.
type ClassStyle struct {
	ref.Copyable
	v uint32
}

// NewClassStyle returns an empty builder with count 1.
func NewClassStyle() *ClassStyle {
	return newClassStyle(0)
}

func newClassStyle(v uint32) *ClassStyle {
	s := &ClassStyle{v: v}
	s.InitCopyable(s, classStyleChain, s.dup)
	return s
}

func (s *ClassStyle) dup() (apis.Ref, error) {
	return newClassStyle(s.v), nil
}

// Value returns the accumulated bits.
func (s *ClassStyle) Value() uint32 { return s.v }

func (s *ClassStyle) Clear() *ClassStyle { s.v = 0; return s }

func (s *ClassStyle) set(bits uint32) *ClassStyle { s.v |= bits; return s }

func (s *ClassStyle) VRedraw() *ClassStyle         { return s.set(ClassVRedraw) }
func (s *ClassStyle) HRedraw() *ClassStyle         { return s.set(ClassHRedraw) }
func (s *ClassStyle) DblClks() *ClassStyle         { return s.set(ClassDblClks) }
func (s *ClassStyle) OwnDC() *ClassStyle           { return s.set(ClassOwnDC) }
func (s *ClassStyle) ClassDC() *ClassStyle         { return s.set(ClassClassDC) }
func (s *ClassStyle) ParentDC() *ClassStyle        { return s.set(ClassParentDC) }
func (s *ClassStyle) NoClose() *ClassStyle         { return s.set(ClassNoClose) }
func (s *ClassStyle) SaveBits() *ClassStyle        { return s.set(ClassSaveBits) }
func (s *ClassStyle) ByteAlignClient() *ClassStyle { return s.set(ClassByteAlignClient) }
func (s *ClassStyle) ByteAlignWindow() *ClassStyle { return s.set(ClassByteAlignWindow) }
func (s *ClassStyle) GlobalClass() *ClassStyle     { return s.set(ClassGlobalClass) }
func (s *ClassStyle) DropShadow() *ClassStyle      { return s.set(ClassDropShadow) }

// Style accumulates window style bits.
type Style struct {
	ref.Copyable
	v uint32
}

// NewStyle returns an empty builder with count 1.
func NewStyle() *Style {
	return newStyle(0)
}

func newStyle(v uint32) *Style {
	s := &Style{v: v}
	s.InitCopyable(s, styleChain, s.dup)
	return s
}

func (s *Style) dup() (apis.Ref, error) {
	return newStyle(s.v), nil
}

func (s *Style) Value() uint32 { return s.v }

func (s *Style) Clear() *Style { s.v = 0; return s }

func (s *Style) set(bits uint32) *Style { s.v |= bits; return s }

func (s *Style) Border() *Style           { return s.set(StyleBorder) }
func (s *Style) Caption() *Style          { return s.set(StyleCaption) }
func (s *Style) Child() *Style            { return s.set(StyleChild) }
func (s *Style) ChildWindow() *Style      { return s.set(StyleChildWindow) }
func (s *Style) ClipChildren() *Style     { return s.set(StyleClipChildren) }
func (s *Style) ClipSiblings() *Style     { return s.set(StyleClipSiblings) }
func (s *Style) Disabled() *Style         { return s.set(StyleDisabled) }
func (s *Style) DLGFrame() *Style         { return s.set(StyleDLGFrame) }
func (s *Style) Group() *Style            { return s.set(StyleGroup) }
func (s *Style) HScroll() *Style          { return s.set(StyleHScroll) }
func (s *Style) Iconic() *Style           { return s.set(StyleIconic) }
func (s *Style) Maximize() *Style         { return s.set(StyleMaximize) }
func (s *Style) MaximizeBox() *Style      { return s.set(StyleMaximizeBox) }
func (s *Style) Minimize() *Style         { return s.set(StyleMinimize) }
func (s *Style) MinimizeBox() *Style      { return s.set(StyleMinimizeBox) }
func (s *Style) Overlapped() *Style       { return s.set(StyleOverlapped) }
func (s *Style) OverlappedWindow() *Style { return s.set(StyleOverlappedWindow) }
func (s *Style) PopUp() *Style            { return s.set(StylePopUp) }
func (s *Style) PopUpWindow() *Style      { return s.set(StylePopUpWindow) }
func (s *Style) SizeBox() *Style          { return s.set(StyleSizeBox) }
func (s *Style) SysMenu() *Style          { return s.set(StyleSysMenu) }
func (s *Style) TabStop() *Style          { return s.set(StyleTabStop) }
func (s *Style) ThickFrame() *Style       { return s.set(StyleThickFrame) }
func (s *Style) Tiled() *Style            { return s.set(StyleTiled) }
func (s *Style) TiledWindow() *Style      { return s.set(StyleTiledWindow) }
func (s *Style) Visible() *Style          { return s.set(StyleVisible) }
func (s *Style) VScroll() *Style          { return s.set(StyleVScroll) }

// ExStyle accumulates extended window style bits.
type ExStyle struct {
	ref.Copyable
	v uint32
}

// NewExStyle returns an empty builder with count 1.
func NewExStyle() *ExStyle {
	return newExStyle(0)
}

func newExStyle(v uint32) *ExStyle {
	s := &ExStyle{v: v}
	s.InitCopyable(s, exStyleChain, s.dup)
	return s
}

func (s *ExStyle) dup() (apis.Ref, error) {
	return newExStyle(s.v), nil
}

func (s *ExStyle) Value() uint32 { return s.v }

func (s *ExStyle) Clear() *ExStyle { s.v = 0; return s }

func (s *ExStyle) set(bits uint32) *ExStyle { s.v |= bits; return s }

func (s *ExStyle) AcceptFiles() *ExStyle      { return s.set(ExStyleAcceptFiles) }
func (s *ExStyle) AppWindow() *ExStyle        { return s.set(ExStyleAppWindow) }
func (s *ExStyle) ClientEdge() *ExStyle       { return s.set(ExStyleClientEdge) }
func (s *ExStyle) Composited() *ExStyle       { return s.set(ExStyleComposited) }
func (s *ExStyle) ContextHelp() *ExStyle      { return s.set(ExStyleContextHelp) }
func (s *ExStyle) ControlParent() *ExStyle    { return s.set(ExStyleControlParent) }
func (s *ExStyle) DLGModalFrame() *ExStyle    { return s.set(ExStyleDLGModalFrame) }
func (s *ExStyle) Layered() *ExStyle          { return s.set(ExStyleLayered) }
func (s *ExStyle) LayoutRTL() *ExStyle        { return s.set(ExStyleLayoutRTL) }
func (s *ExStyle) Left() *ExStyle             { return s.set(ExStyleLeft) }
func (s *ExStyle) LeftScrollBar() *ExStyle    { return s.set(ExStyleLeftScrollBar) }
func (s *ExStyle) LTRReading() *ExStyle       { return s.set(ExStyleLTRReading) }
func (s *ExStyle) MDIChild() *ExStyle         { return s.set(ExStyleMDIChild) }
func (s *ExStyle) NoActivate() *ExStyle       { return s.set(ExStyleNoActivate) }
func (s *ExStyle) NoInheritLayout() *ExStyle  { return s.set(ExStyleNoInheritLayout) }
func (s *ExStyle) NoParentNotify() *ExStyle   { return s.set(ExStyleNoParentNotify) }
func (s *ExStyle) NoRedirectBitmap() *ExStyle { return s.set(ExStyleNoRedirectionBitmap) }
func (s *ExStyle) OverlappedWindow() *ExStyle { return s.set(ExStyleOverlappedWindow) }
func (s *ExStyle) PaletteWindow() *ExStyle    { return s.set(ExStylePaletteWindow) }
func (s *ExStyle) Right() *ExStyle            { return s.set(ExStyleRight) }
func (s *ExStyle) RightScrollBar() *ExStyle   { return s.set(ExStyleRightScrollBar) }
func (s *ExStyle) RTLReading() *ExStyle       { return s.set(ExStyleRTLReading) }
func (s *ExStyle) StaticEdge() *ExStyle       { return s.set(ExStyleStaticEdge) }
func (s *ExStyle) ToolWindow() *ExStyle       { return s.set(ExStyleToolWindow) }
func (s *ExStyle) TopMost() *ExStyle          { return s.set(ExStyleTopMost) }
func (s *ExStyle) Transparent() *ExStyle      { return s.set(ExStyleTransparent) }
func (s *ExStyle) WindowEdge() *ExStyle       { return s.set(ExStyleWindowEdge) }
