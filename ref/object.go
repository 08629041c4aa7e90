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

// Package ref implements the reference kernel: intrusive atomic reference
// counting with synchronous destruction, and facet queries over a declared
// chain.
package ref

import (
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
)

func init() {
	facet.MustRegister[*Object](apis.RefFacet)
}

// Object is the reference kernel. Concrete types embed it by value and call
// Init once before the object is shared:
//
//	type Thing struct {
//		ref.Object
//		// state
//	}
//
//	func NewThing() *Thing {
//		t := &Thing{}
//		t.Init(t, thingChain, ref.WithDestroy(t.free))
//		return t
//	}
//
// An Object must not be copied after Init.
type Object struct {
	count   atomic.Uint64
	dead    atomic.Bool
	chain   apis.Chain
	self    apis.Ref
	destroy func()
	id      uuid.UUID
}

// Ensure *Object implements apis.Ref and apis.Identifier.
var (
	_ apis.Ref        = (*Object)(nil)
	_ apis.Identifier = (*Object)(nil)
)

// Option configures an Object at Init.
type Option func(*Object)

// WithCount sets the initial owner count. The default is 1.
func WithCount(n uint64) Option {
	return func(o *Object) {
		o.count.Store(n)
	}
}

// WithDestroy sets the routine run exactly once when the object dies.
func WithDestroy(fn func()) Option {
	return func(o *Object) {
		o.destroy = fn
	}
}

// New returns a bare object exposing only the base facet.
func New(opts ...Option) *Object {
	o := &Object{}
	o.Init(nil, nil, opts...)
	return o
}

// Init prepares o. self is the outer object handed out by Query (nil means
// o itself); chain is the declared facet chain built with Chain or
// CopyChain (nil means the base facet only).
func (o *Object) Init(self apis.Ref, chain apis.Chain, opts ...Option) {
	if self == nil {
		self = o
	}
	if len(chain) == 0 {
		chain = Chain()
	}
	o.self = self
	o.chain = chain
	o.id = uuid.New()
	o.count.Store(1)
	for _, opt := range opts {
		opt(o)
	}
	facet.Observer().Created(o.Identity())
}

func (o *Object) Count() uint64 {
	return o.count.Load()
}

func (o *Object) Inc() uint64 {
	return o.count.Add(1)
}

// Dec removes an owner. Reaching zero destroys the object before Dec
// returns. Dec at zero is a contract violation; it is ignored and reports 0.
func (o *Object) Dec() uint64 {
	for {
		c := o.count.Load()
		if c == 0 {
			slog.Warn("facet(ref): decrement of dead object", "facet", o.Identity().Name(), "id", o.id.String())
			return 0
		}
		if o.count.CompareAndSwap(c, c-1) {
			if c == 1 {
				o.teardown()
			}
			return c - 1
		}
	}
}

// Release destroys the object regardless of its count. It reports whether
// this call performed the destruction.
func (o *Object) Release() bool {
	o.count.Store(0)
	return o.teardown()
}

// Identity returns the most-derived declared facet.
func (o *Object) Identity() *apis.Facet {
	if len(o.chain) == 0 {
		return apis.RefFacet
	}
	return o.chain[0]
}

// Facets returns the declared chain, most-derived first.
func (o *Object) Facets() apis.Chain {
	return o.chain
}

// Query matches want against the declared chain. apis.MatchDefault compares
// with the configured mode.
func (o *Object) Query(slot *apis.Ref, want *apis.Facet, mode apis.Match) bool {
	mode = facet.Mode(mode)
	_, ok := facet.Resolve(o.chain, want, mode)
	facet.Observer().Queried(want, mode, ok)
	if !ok {
		return false
	}
	if slot != nil {
		o.Inc()
		*slot = o.self
	}
	return true
}

func (o *Object) EntityName() string {
	return o.Identity().Name()
}

func (o *Object) EntityID() string {
	return o.id.String()
}

// Alive reports whether the destroy routine has not run yet.
func (o *Object) Alive() bool {
	return !o.dead.Load()
}

func (o *Object) teardown() bool {
	if !o.dead.CompareAndSwap(false, true) {
		return false
	}
	if o.destroy != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("facet(ref): destroy panicked", "facet", o.Identity().Name(), "id", o.id.String(), "panic", r)
				}
			}()
			o.destroy()
		}()
	}
	facet.Observer().Destroyed(o.Identity())
	return true
}
