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

// Class style bits.
const (
	ClassVRedraw         uint32 = 0x0001
	ClassHRedraw         uint32 = 0x0002
	ClassDblClks         uint32 = 0x0008
	ClassOwnDC           uint32 = 0x0020
	ClassClassDC         uint32 = 0x0040
	ClassParentDC        uint32 = 0x0080
	ClassNoClose         uint32 = 0x0200
	ClassSaveBits        uint32 = 0x0800
	ClassByteAlignClient uint32 = 0x1000
	ClassByteAlignWindow uint32 = 0x2000
	ClassGlobalClass     uint32 = 0x4000
	ClassDropShadow      uint32 = 0x00020000
)

// Window style bits.
const (
	StyleOverlapped   uint32 = 0x00000000
	StylePopUp        uint32 = 0x80000000
	StyleChild        uint32 = 0x40000000
	StyleMinimize     uint32 = 0x20000000
	StyleVisible      uint32 = 0x10000000
	StyleDisabled     uint32 = 0x08000000
	StyleClipSiblings uint32 = 0x04000000
	StyleClipChildren uint32 = 0x02000000
	StyleMaximize     uint32 = 0x01000000
	StyleBorder       uint32 = 0x00800000
	StyleDLGFrame     uint32 = 0x00400000
	StyleCaption      uint32 = StyleBorder | StyleDLGFrame
	StyleVScroll      uint32 = 0x00200000
	StyleHScroll      uint32 = 0x00100000
	StyleSysMenu      uint32 = 0x00080000
	StyleThickFrame   uint32 = 0x00040000
	StyleGroup        uint32 = 0x00020000
	StyleTabStop      uint32 = 0x00010000
	StyleMinimizeBox  uint32 = 0x00020000
	StyleMaximizeBox  uint32 = 0x00010000

	StyleTiled       = StyleOverlapped
	StyleIconic      = StyleMinimize
	StyleSizeBox     = StyleThickFrame
	StyleChildWindow = StyleChild

	StyleOverlappedWindow = StyleOverlapped | StyleCaption | StyleSysMenu | StyleThickFrame | StyleMinimizeBox | StyleMaximizeBox
	StyleTiledWindow      = StyleOverlappedWindow
	StylePopUpWindow      = StylePopUp | StyleBorder | StyleSysMenu
)

// Extended window style bits.
const (
	ExStyleDLGModalFrame       uint32 = 0x00000001
	ExStyleNoParentNotify      uint32 = 0x00000004
	ExStyleTopMost             uint32 = 0x00000008
	ExStyleAcceptFiles         uint32 = 0x00000010
	ExStyleTransparent         uint32 = 0x00000020
	ExStyleMDIChild            uint32 = 0x00000040
	ExStyleToolWindow          uint32 = 0x00000080
	ExStyleWindowEdge          uint32 = 0x00000100
	ExStyleClientEdge          uint32 = 0x00000200
	ExStyleContextHelp         uint32 = 0x00000400
	ExStyleRight               uint32 = 0x00001000
	ExStyleLeft                uint32 = 0x00000000
	ExStyleRTLReading          uint32 = 0x00002000
	ExStyleLTRReading          uint32 = 0x00000000
	ExStyleLeftScrollBar       uint32 = 0x00004000
	ExStyleRightScrollBar      uint32 = 0x00000000
	ExStyleControlParent       uint32 = 0x00010000
	ExStyleStaticEdge          uint32 = 0x00020000
	ExStyleAppWindow           uint32 = 0x00040000
	ExStyleLayered             uint32 = 0x00080000
	ExStyleNoInheritLayout     uint32 = 0x00100000
	ExStyleNoRedirectionBitmap uint32 = 0x00200000
	ExStyleLayoutRTL           uint32 = 0x00400000
	ExStyleComposited          uint32 = 0x02000000
	ExStyleNoActivate          uint32 = 0x08000000

	ExStyleOverlappedWindow = ExStyleWindowEdge | ExStyleClientEdge
	ExStylePaletteWindow    = ExStyleWindowEdge | ExStyleToolWindow | ExStyleTopMost
)

// Messages delivered to a Proc.
const (
	MsgCreate    uint32 = 0x0001
	MsgDestroy   uint32 = 0x0002
	MsgSize      uint32 = 0x0005
	MsgClose     uint32 = 0x0010
	MsgQuit      uint32 = 0x0012
	MsgInput     uint32 = 0x00FF
	MsgKeyDown   uint32 = 0x0100
	MsgKeyUp     uint32 = 0x0101
	MsgMouseMove uint32 = 0x0200
)
