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

// Observer receives Reference Kernel lifecycle and protocol events.
// Implementations must be safe for concurrent use and must not block.
type Observer interface {
	// Created is called once per object after construction.
	Created(identity *Facet)
	// Destroyed is called once per object after its destroy routine ran.
	Destroyed(identity *Facet)
	// Queried reports the outcome of a Query call.
	Queried(want *Facet, mode Match, ok bool)
	// Duplicated reports the outcome of a Duplicate call.
	Duplicated(want *Facet, mode Match, ok bool)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) Created(*Facet)                 {}
func (NopObserver) Destroyed(*Facet)               {}
func (NopObserver) Queried(*Facet, Match, bool)    {}
func (NopObserver) Duplicated(*Facet, Match, bool) {}
