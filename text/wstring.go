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

package text

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/ref"
)

// ErrOddLength is returned by DecodeWString for a payload that is not a
// whole number of UTF-16 code units.
var ErrOddLength = errors.New("facet(text): odd-length UTF-16 payload")

var (
	// WStringFacet identifies wide (UTF-16) string holders.
	WStringFacet = facet.MustRegister[*WString](apis.NewFacet("text.wstring"))
	wstringChain = ref.CopyChain(WStringFacet)

	utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// WString holds an immutable sequence of UTF-16 code units, the form
// platform text APIs expect.
type WString struct {
	ref.Copyable
	u []uint16
}

// NewWString encodes s to UTF-16. Invalid UTF-8 is replaced with U+FFFD.
func NewWString(s string) *WString {
	b, err := utf16le.NewEncoder().String(s)
	if err != nil {
		return nil
	}
	return newWString(unitsLE([]byte(b)))
}

// NewWStringUnits copies units verbatim.
func NewWStringUnits(units []uint16) *WString {
	return newWString(append([]uint16(nil), units...))
}

// DecodeWString builds a holder from a UTF-16LE payload.
func DecodeWString(b []byte) (*WString, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddLength, len(b))
	}
	return newWString(unitsLE(b)), nil
}

func newWString(u []uint16) *WString {
	w := &WString{u: u}
	w.InitCopyable(w, wstringChain, w.dup)
	return w
}

func (w *WString) dup() (apis.Ref, error) {
	return NewWStringUnits(w.u), nil
}

// Size returns the length in code units.
func (w *WString) Size() int {
	return len(w.u)
}

// Units returns a copy of the held code units.
func (w *WString) Units() []uint16 {
	return append([]uint16(nil), w.u...)
}

// Bytes returns the UTF-16LE encoding.
func (w *WString) Bytes() []byte {
	out := make([]byte, 2*len(w.u))
	for i, u := range w.u {
		binary.LittleEndian.PutUint16(out[2*i:], u)
	}
	return out
}

// String decodes to UTF-8. Unpaired surrogates become U+FFFD.
func (w *WString) String() string {
	s, err := utf16le.NewDecoder().Bytes(w.Bytes())
	if err != nil {
		return ""
	}
	return string(s)
}

func unitsLE(b []byte) []uint16 {
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return u
}
