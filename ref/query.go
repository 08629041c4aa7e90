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

package ref

import (
	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
)

// QueryAs asks src for the facet registered for T. On success the caller
// owns one reference to the result.
func QueryAs[T any](src apis.Ref, mode apis.Match) (T, bool) {
	var zero T
	if src == nil {
		return zero, false
	}
	var slot apis.Ref
	if !src.Query(&slot, facet.Of[T](), mode) {
		return zero, false
	}
	return narrow[T](slot)
}

// DuplicateAs asks src for a copy carrying the facet registered for T.
func DuplicateAs[T any](src apis.Copyable, mode apis.Match) (T, bool) {
	var zero T
	if src == nil {
		return zero, false
	}
	var slot apis.Ref
	if !src.Duplicate(&slot, facet.Of[T](), mode) {
		return zero, false
	}
	return narrow[T](slot)
}

// Supports reports whether src exposes want without taking a reference.
func Supports(src apis.Ref, want *apis.Facet, mode apis.Match) bool {
	return src != nil && src.Query(nil, want, mode)
}

// narrow converts an owned reference to T, dropping it when the registered
// type does not fit the object that answered.
func narrow[T any](r apis.Ref) (T, bool) {
	t, ok := r.(T)
	if !ok {
		r.Dec()
		var zero T
		return zero, false
	}
	return t, true
}
