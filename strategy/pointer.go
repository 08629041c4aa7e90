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

// NewPointerStrategy creates an apis.Strategy for apis.MatchPointer.
func NewPointerStrategy() apis.Strategy {
	return &pointerStrategy{}
}

// pointerStrategy is the fast path: token identity.
type pointerStrategy struct{}

// Ensure pointerStrategy implements apis.Strategy.
var _ apis.Strategy = (*pointerStrategy)(nil)

// TryMatch handles pointer mode only; other modes fall through.
func (*pointerStrategy) TryMatch(declared, want *apis.Facet, mode apis.Match, _ apis.Config) (bool, bool) {
	if mode != apis.MatchPointer {
		return false, false
	}
	return declared == want, true
}
