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
	"fmt"

	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
)

// Chain declares a facet chain for a non-copyable type. facets are given
// most-derived first; the base facet is appended. It panics when the chain
// exceeds the configured MaxChain, so declare chains at package level.
func Chain(facets ...*apis.Facet) apis.Chain {
	return declare(facets, apis.RefFacet)
}

// CopyChain declares a facet chain for a type supporting Duplicate. The
// copyable and base facets are appended.
func CopyChain(facets ...*apis.Facet) apis.Chain {
	return declare(facets, apis.CopyableFacet, apis.RefFacet)
}

func declare(facets []*apis.Facet, tail ...*apis.Facet) apis.Chain {
	out := make(apis.Chain, 0, len(facets)+len(tail))
	for _, f := range facets {
		if f == nil {
			panic("facet(ref): nil facet in chain")
		}
		out = append(out, f)
	}
	out = append(out, tail...)
	if limit := facet.Config().MaxChain; limit > 0 && len(out) > limit {
		panic(fmt.Sprintf("facet(ref): chain %v longer than MaxChain %d", out.Names(), limit))
	}
	return out
}
