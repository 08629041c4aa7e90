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

// Package handle provides Handle, the owning reference to a counted object.
//
// A Handle owns exactly one count of the object it holds. Copying is explicit
// (Clone, Share, Assign: one increment each) and moving is explicit (Move,
// Take: no count change). Handles are not safe for concurrent mutation.
package handle

import (
	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
)

// noCopy makes go vet's copylocks check flag value copies of a Handle.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle owns one reference to a T. The zero value is a null handle.
type Handle[T apis.Ref] struct {
	_   noCopy
	ptr T
	ok  bool
}

// Adopt takes ownership of raw without incrementing. A nil raw yields a
// null handle.
func Adopt[T apis.Ref](raw T) *Handle[T] {
	h := &Handle[T]{}
	h.set(raw)
	return h
}

// Share returns a new owner of raw: the count is incremented.
func Share[T apis.Ref](raw T) *Handle[T] {
	h := Adopt(raw)
	if h.ok {
		h.ptr.Inc()
	}
	return h
}

// Clone returns an independent owner of the same object.
func (h *Handle[T]) Clone() *Handle[T] {
	return Share(h.Get())
}

// Move transfers ownership to a new handle and leaves h null.
func (h *Handle[T]) Move() *Handle[T] {
	n := &Handle[T]{ptr: h.ptr, ok: h.ok}
	h.clear()
	return n
}

// Reset releases the current reference and adopts raw.
func (h *Handle[T]) Reset(raw T) {
	old, had := h.ptr, h.ok
	h.set(raw)
	if had {
		old.Dec()
	}
}

// Assign makes h another owner of o's object. Assigning the object h
// already holds is a no-op.
func (h *Handle[T]) Assign(o *Handle[T]) {
	if o == h {
		return
	}
	if o != nil && o.ok && h.ok && same(o.ptr, h.ptr) {
		return
	}
	if o == nil || !o.ok {
		h.Close()
		return
	}
	o.ptr.Inc()
	h.Reset(o.ptr)
}

// Take moves o's reference into h, releasing h's previous one. o is left
// null.
func (h *Handle[T]) Take(o *Handle[T]) {
	if o == h || o == nil {
		return
	}
	ptr, ok := o.ptr, o.ok
	o.clear()
	if !ok {
		h.Close()
		return
	}
	h.Reset(ptr)
}

// Close drops the reference, if any. It is safe to call repeatedly.
func (h *Handle[T]) Close() {
	if h == nil || !h.ok {
		return
	}
	ptr := h.ptr
	h.clear()
	ptr.Dec()
}

// Get returns the raw object without changing the count. The zero T is
// returned for a null handle.
func (h *Handle[T]) Get() T {
	if h == nil {
		var zero T
		return zero
	}
	return h.ptr
}

// Valid reports whether h holds an object.
func (h *Handle[T]) Valid() bool {
	return h != nil && h.ok
}

// Count returns the object's count, or 0 for a null handle.
func (h *Handle[T]) Count() uint64 {
	if !h.Valid() {
		return 0
	}
	return h.ptr.Count()
}

// Equal reports whether both handles hold the same object address.
func (h *Handle[T]) Equal(o *Handle[T]) bool {
	return Same(h, o)
}

// Same reports whether a and b hold the same object address, regardless of
// the facet type each handle is narrowed to. Two null handles are equal.
func Same[A, B apis.Ref](a *Handle[A], b *Handle[B]) bool {
	if !a.Valid() || !b.Valid() {
		return a.Valid() == b.Valid()
	}
	return same(a.ptr, b.ptr)
}

// Query clears dst and asks src for the facet registered for T. On success
// dst owns the result.
func Query[T, S apis.Ref](dst *Handle[T], src *Handle[S], mode apis.Match) bool {
	dst.Close()
	if !src.Valid() {
		return false
	}
	var slot apis.Ref
	if !src.ptr.Query(&slot, facet.Of[T](), mode) {
		return false
	}
	return dst.adoptRef(slot)
}

// Copy clears dst and asks src for a duplicate carrying the facet registered
// for T. The source must support the copy capability.
func Copy[T, S apis.Ref](dst *Handle[T], src *Handle[S], mode apis.Match) bool {
	dst.Close()
	if !src.Valid() {
		return false
	}
	c, ok := any(src.ptr).(apis.Copyable)
	if !ok {
		return false
	}
	var slot apis.Ref
	if !c.Duplicate(&slot, facet.Of[T](), mode) {
		return false
	}
	return dst.adoptRef(slot)
}

func (h *Handle[T]) adoptRef(r apis.Ref) bool {
	t, ok := r.(T)
	if !ok {
		r.Dec()
		return false
	}
	h.set(t)
	return true
}

func (h *Handle[T]) set(raw T) {
	h.ptr = raw
	h.ok = !isNil(raw)
}

func (h *Handle[T]) clear() {
	var zero T
	h.ptr, h.ok = zero, false
}
