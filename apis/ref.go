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

package apis

// Counter is the Reference Kernel contract: one shared owner count per object.
//
// Any holder of a live reference may Inc (becoming an additional owner) or
// Dec (giving up its own ownership). No holder is privileged. Count updates
// are atomic; everything else on an object is unsynchronized.
type Counter interface {
	// Count returns the current owner count.
	Count() uint64
	// Inc adds an owner and returns the new count.
	Inc() uint64
	// Dec removes an owner and returns the new count. When the count reaches
	// zero the object is destroyed before Dec returns; the caller must not
	// touch it afterwards unless it knows another owner exists.
	Dec() uint64
	// Release destroys the object regardless of its count. Only for callers
	// that can prove sole ownership.
	Release() bool
}

// Ref is implemented by every object built on the Reference Kernel.
type Ref interface {
	Counter

	// Identity returns the object's most-derived declared facet.
	Identity() *Facet

	// Query walks the object's facet chain looking for want using mode.
	// On a match it increments the count, stores the object in *slot (when
	// slot is non-nil) and returns true. Otherwise *slot is left untouched.
	Query(slot *Ref, want *Facet, mode Match) bool
}

// Copyable is implemented by objects that support the Copy Capability.
type Copyable interface {
	Ref

	// Duplicate matches want like Query but stores a freshly allocated,
	// content-equal object (count 1) in *slot. On any failure it returns
	// false and leaves *slot untouched.
	Duplicate(slot *Ref, want *Facet, mode Match) bool
}
