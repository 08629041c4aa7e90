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

package resolver

import (
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/config"
)

// New constructs an apis.Resolver that tries the given strategies in order
// for every declared facet. Nil strategies are ignored. The returned resolver
// is safe for concurrent use provided strategies themselves are.
func New(strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Resolve walks the whole declared chain most-derived first. Its length was
// bounded by MaxChain when it was declared, so a later, smaller MaxChain
// never hides the base facets. For each facet the first strategy that
// handles the pair decides it. MatchDefault takes cfg.Match. A nil want
// never matches.
func (r chain) Resolve(declared apis.Chain, want *apis.Facet, mode apis.Match, cfg apis.Config) (*apis.Facet, bool) {
	if want == nil {
		return nil, false
	}
	if mode == apis.MatchDefault {
		mode = cfg.Match
	}
	if mode == apis.MatchDefault {
		mode = config.DefaultMatch
	}
	for _, f := range declared {
		if f == nil {
			continue
		}
		for _, s := range r.strats {
			if matched, handled := s.TryMatch(f, want, mode, cfg); handled {
				if matched {
					return f, true
				}
				break
			}
		}
	}
	return nil, false
}
