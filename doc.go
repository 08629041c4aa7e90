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

// Package facet provides the process-wide facet identity service that the
// reference kernel (package ref) and the owning handle (package handle) are
// built on.
//
// An object in this module is reference counted and exposes several facets:
// named capabilities such as "text.string" or "window.config". A consumer
// that holds a reference typed as one facet can ask the object for another
// facet at run time, without sharing Go type information with the producer.
// Facets are identified by tokens (*apis.Facet). Two comparison modes exist:
//
//   - apis.MatchPointer compares token pointers. It is the fast path and
//     only works when producer and consumer share the same token values.
//
//   - apis.MatchName compares token names byte for byte. It is the slow
//     path and works across independently built components.
//
// Implementation-private facets (apis.Hidden) are reachable by pointer only,
// unless the configuration sets IncludeHidden.
//
// # Design
//
// The core of the package is a read-mostly global snapshot (state). The
// snapshot holds:
//
//   - Config: the chain walk limits and defaults (apis.Config).
//
//   - Registry: a process-wide mapping from Go types to facet tokens, with
//     a flat, unique name space. Packages declare their facets at init:
//
//     var StringFacet = facet.MustRegister[*String](apis.NewFacet("text.string"))
//
//     and generic helpers look them up with facet.Of[T]().
//
//   - Resolver: walks a declared facet chain, most-derived first, and
//     decides per facet with a chain of strategies (hidden gate, pointer,
//     name). Every Query and Duplicate call goes through Resolve.
//
//   - Builder: constructs Registry and Resolver for a Config and migrates
//     registered facets across rebuilds.
//
//   - Observer: receives object lifecycle and query outcomes (see package
//     metrics).
//
// Readers load the snapshot atomically and never lock. Writers take a short
// build mutex, assemble a new snapshot and publish it with an atomic swap.
//
// # Pinning
//
// SetRegistry and SetResolver install a layer and pin it. Pinned layers are
// not rebuilt by SetConfig, SetBuilder or SetExt until UnpinRegistry or
// UnpinResolver is called.
//
// # Extension config
//
// The snapshot carries an opaque "ext" value owned by the embedding binary.
// The active Builder receives it on every rebuild.
package facet
