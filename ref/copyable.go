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
	"log/slog"

	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
)

// DupFunc returns a fresh object with count 1 and deep-copied state.
type DupFunc func() (apis.Ref, error)

// Copyable is Object plus the copy capability. Concrete types embed it and
// call InitCopyable instead of Init.
type Copyable struct {
	Object
	dup DupFunc
}

// Ensure *Copyable implements apis.Copyable.
var _ apis.Copyable = (*Copyable)(nil)

// InitCopyable prepares c. dup builds the deep copy returned by Duplicate.
func (c *Copyable) InitCopyable(self apis.Copyable, chain apis.Chain, dup DupFunc, opts ...Option) {
	var s apis.Ref = c
	if self != nil {
		s = self
	}
	if len(chain) == 0 {
		chain = CopyChain()
	}
	c.dup = dup
	c.Init(s, chain, opts...)
}

// Duplicate matches want against the declared chain and, on success, stores
// a freshly built copy in *slot. A nil slot only checks support. Any error
// or panic from the duplicate function yields false with *slot untouched.
// apis.MatchDefault compares with the configured mode.
func (c *Copyable) Duplicate(slot *apis.Ref, want *apis.Facet, mode apis.Match) bool {
	mode = facet.Mode(mode)
	_, ok := facet.Resolve(c.chain, want, mode)
	if ok && slot != nil {
		var r apis.Ref
		if r, ok = c.duplicate(); ok {
			*slot = r
		}
	}
	facet.Observer().Duplicated(want, mode, ok)
	return ok
}

func (c *Copyable) duplicate() (out apis.Ref, ok bool) {
	if c.dup == nil {
		return nil, false
	}
	var r apis.Ref
	defer func() {
		if p := recover(); p != nil {
			slog.Error("facet(ref): duplicate panicked", "facet", c.Identity().Name(), "panic", p)
			if r != nil {
				r.Release()
			}
			out, ok = nil, false
		}
	}()
	r, err := c.dup()
	if err != nil {
		slog.Debug("facet(ref): duplicate failed", "facet", c.Identity().Name(), "error", err)
		if r != nil {
			r.Release()
		}
		return nil, false
	}
	if r == nil {
		return nil, false
	}
	return r, true
}
