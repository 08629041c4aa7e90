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

// Config carries read-only knobs that influence registration and facet
// resolution. It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// MaxUnwrap limits pointer unwrapping when a Go type is normalized to
	// the named type a facet is registered under.
	MaxUnwrap int

	// MaxChain limits the length of a facet chain at declaration. Walks
	// always cover the whole declared chain.
	MaxChain int

	// Match is the comparison mode used when a caller passes MatchDefault.
	Match Match

	// IncludeHidden lets name comparison match implementation-private
	// facets. When false, hidden facets only match by pointer.
	IncludeHidden bool
}
