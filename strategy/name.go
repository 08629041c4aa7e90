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

// NewNameStrategy creates an apis.Strategy for apis.MatchName.
func NewNameStrategy() apis.Strategy {
	return &nameStrategy{}
}

// nameStrategy compares token names byte for byte. It is what lets a
// consumer built against its own copy of a token reach the producer's facet.
type nameStrategy struct{}

// Ensure nameStrategy implements apis.Strategy.
var _ apis.Strategy = (*nameStrategy)(nil)

func (*nameStrategy) TryMatch(declared, want *apis.Facet, mode apis.Match, _ apis.Config) (bool, bool) {
	if mode != apis.MatchName {
		return false, false
	}
	if declared == want {
		return true, true
	}
	return declared.Name() == want.Name(), true
}
