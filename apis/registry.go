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

import "reflect"

// Registry maps Go facet types to facet identity tokens and keeps the facet
// namespace flat: no two distinct tokens may share a name.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register associates the (nearest named) type t with facet f.
	// Re-registering the same pair is a no-op; any other clash is an error.
	Register(t reflect.Type, f *Facet) error
	// Lookup returns the facet registered for t.
	Lookup(t reflect.Type) (f *Facet, ok bool)
	// LookupName returns the facet registered under name.
	LookupName(name string) (f *Facet, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (type, facet) association in a Registry snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Facet is the associated identity token.
	Facet *Facet
}
