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

// Package text provides copyable, reference-counted string holders.
package text

import (
	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/ref"
)

var (
	// StringFacet identifies narrow (byte) string holders.
	StringFacet = facet.MustRegister[*String](apis.NewFacet("text.string"))
	stringChain = ref.CopyChain(StringFacet)
)

// String holds an immutable byte string. The bytes are not required to be
// valid UTF-8.
type String struct {
	ref.Copyable
	b []byte
}

// NewString copies s into a new holder with count 1.
func NewString(s string) *String {
	return newString([]byte(s))
}

// NewStringN copies the first n bytes of b. n is clamped to len(b); a
// negative n yields an empty holder.
func NewStringN(b []byte, n int) *String {
	n = max(0, min(n, len(b)))
	return newString(append([]byte(nil), b[:n]...))
}

func newString(b []byte) *String {
	s := &String{b: b}
	s.InitCopyable(s, stringChain, s.dup)
	return s
}

func (s *String) dup() (apis.Ref, error) {
	return NewStringN(s.b, len(s.b)), nil
}

// Size returns the length in bytes.
func (s *String) Size() int {
	return len(s.b)
}

func (s *String) String() string {
	return string(s.b)
}

// Bytes returns a copy of the held bytes.
func (s *String) Bytes() []byte {
	return append([]byte(nil), s.b...)
}
