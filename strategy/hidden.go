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

package strategy

import (
	"dirpx.dev/facet/apis"
)

// NewHiddenStrategy creates an apis.Strategy that keeps implementation-private
// facets out of name matching.
func NewHiddenStrategy() apis.Strategy {
	return &hiddenStrategy{}
}

// hiddenStrategy stops the chain for hidden declared facets under name
// matching unless cfg.IncludeHidden is set. Only the exact token can reach
// a hidden facet in that case.
type hiddenStrategy struct{}

// Ensure hiddenStrategy implements apis.Strategy.
var _ apis.Strategy = (*hiddenStrategy)(nil)

func (*hiddenStrategy) TryMatch(declared, want *apis.Facet, mode apis.Match, cfg apis.Config) (bool, bool) {
	if !declared.IsHidden() || mode != apis.MatchName || cfg.IncludeHidden {
		return false, false
	}
	return declared == want, true
}
