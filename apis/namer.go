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

// Namer identifies an entity kind by a stable, canonical name.
//
// Facet tokens and every object built on the Reference Kernel implement
// Namer: the name of an object is the name of its most-derived facet, so it
// is type-level and never depends on instance state.
//
// # Contract
//
//   - The returned name MUST be non-empty and deterministic for a given
//     concrete type.
//   - The implementation MUST be safe for concurrent calls and MUST NOT
//     block or perform I/O.
type Namer interface {
	// EntityName returns the canonical, type-level name for this entity.
	EntityName() string
}

// Identifier extends Namer with a per-instance identifier.
//
// EntityName describes what kind of object is involved; EntityID tells two
// instances of that kind apart in logs and diagnostics. The identifier is
// stable for the lifetime of the instance. A duplicate gets a new one.
type Identifier interface {
	Namer

	// EntityID returns a stable identifier for this instance.
	EntityID() string
}

// NamerFunc adapts a plain function to the Namer interface.
type NamerFunc func() string

// EntityName implements Namer for NamerFunc.
func (f NamerFunc) EntityName() string {
	return f()
}
