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

// Strategy is a pluggable comparison step. A Resolver chains strategies in
// order (e.g., Hidden -> Pointer -> Name) and asks each one in turn.
type Strategy interface {
	// TryMatch compares a declared facet against the requested one.
	// It returns handled=false to fall through to the next strategy.
	TryMatch(declared, want *Facet, mode Match, cfg Config) (matched bool, handled bool)
}
