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

// Resolver walks facet chains on behalf of the Interface Query Protocol.
type Resolver interface {
	// Resolve returns the first facet of chain, most-derived first, that
	// matches want under mode. It returns (nil, false) when none does.
	Resolve(chain Chain, want *Facet, mode Match, cfg Config) (*Facet, bool)
}
