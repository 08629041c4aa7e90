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

package facet

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/builder"
	"dirpx.dev/facet/config"
)

// init publishes the default snapshot.
func init() {
	s := &state{cfg: config.DefaultConfig(), obs: apis.NopObserver{}}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil, nil)
	s.bld = b
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("facet: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("facet: builder returned nil resolver")
)

// Register binds type t (after pointer normalization) to facet f in the
// global registry.
func Register(t reflect.Type, f *apis.Facet) error {
	return st.Load().reg.Register(t, f)
}

// MustRegister binds T to f and returns f. It panics on any registration
// error and is meant for package-level facet declarations:
//
//	var StringFacet = facet.MustRegister[*String](apis.NewFacet("text.string"))
func MustRegister[T any](f *apis.Facet) *apis.Facet {
	if err := Register(reflect.TypeFor[T](), f); err != nil {
		panic(fmt.Errorf("facet: register %s as %q: %w", reflect.TypeFor[T](), f.Name(), err))
	}
	return f
}

// Of returns the facet registered for T, or nil.
func Of[T any]() *apis.Facet {
	return OfType(reflect.TypeFor[T]())
}

// OfType returns the facet registered for t, or nil.
func OfType(t reflect.Type) *apis.Facet {
	f, _ := st.Load().reg.Lookup(t)
	return f
}

// Named returns the token registered under name.
func Named(name string) (*apis.Facet, bool) {
	return st.Load().reg.LookupName(name)
}

// Facets returns the distinct registered facets sorted by name.
func Facets() []*apis.Facet {
	seen := make(map[*apis.Facet]struct{})
	var out []*apis.Facet
	for _, e := range st.Load().reg.Entries() {
		if _, ok := seen[e.Facet]; ok {
			continue
		}
		seen[e.Facet] = struct{}{}
		out = append(out, e.Facet)
	}
	slices.SortFunc(out, func(a, b *apis.Facet) int { return cmp.Compare(a.Name(), b.Name()) })
	return out
}

// Resolve walks chain for want with the global resolver and configuration.
// This is the single entry point every object's Query and Duplicate use.
// MatchDefault is replaced by the configured mode before the resolver runs.
func Resolve(chain apis.Chain, want *apis.Facet, mode apis.Match) (*apis.Facet, bool) {
	s := st.Load()
	return s.res.Resolve(chain, want, s.mode(mode), s.cfg)
}

// Mode returns mode, or the configured Config.Match for MatchDefault.
func Mode(mode apis.Match) apis.Match {
	return st.Load().mode(mode)
}

// Observer returns the global lifecycle observer. Never nil.
func Observer() apis.Observer {
	return st.Load().obs
}

// SetObserver installs o as the global lifecycle observer and returns the
// previous one. A nil o restores the no-op observer.
func SetObserver(o apis.Observer) apis.Observer {
	if o == nil {
		o = apis.NopObserver{}
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.obs = o
	st.Store(&next)
	return old.obs
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced. A nil reg or res is rebuilt with
// the (possibly new) builder and unpins that layer; a non-nil one pins it.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	if cfg != nil {
		next.cfg = *cfg
	}
	next.ext = ext
	if bld != nil {
		next.bld = bld
	}
	next.reg, next.preg = reg, reg != nil
	next.res, next.pres = res, res != nil
	next.rebuild(old)
	st.Store(&next)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg and rebuilds the
// unpinned layers.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.cfg = cfg
	next.rebuild(old)
	st.Store(&next)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg and pins it. The resolver is rebuilt unless pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.reg, next.preg = reg, true
	next.rebuild(old)
	st.Store(&next)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs res and pins it.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.res, next.pres = res, true
	st.Store(&next)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder installs b and rebuilds the unpinned layers with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.bld = b
	next.rebuild(old)
	st.Store(&next)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the
// builder. The default builder reads a builder.Extension; custom builders
// may define their own ext type.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.ext = ext
	next.rebuild(old)
	st.Store(&next)
}

// ExtAs returns the global extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops automatic registry rebuilds.
func PinRegistry() { setPins(ptr(true), nil) }

// UnpinRegistry allows automatic registry rebuilds again.
func UnpinRegistry() { setPins(ptr(false), nil) }

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops automatic resolver rebuilds.
func PinResolver() { setPins(nil, ptr(true)) }

// UnpinResolver allows automatic resolver rebuilds again.
func UnpinResolver() { setPins(nil, ptr(false)) }

func setPins(preg, pres *bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	if preg != nil {
		next.preg = *preg
	}
	if pres != nil {
		next.pres = *pres
	}
	st.Store(&next)
}

func ptr[T any](v T) *T { return &v }

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global snapshot.
// Immutable once published via st.Store; writers copy, modify, and swap.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the opaque extension payload handed to the builder.
	ext any
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// obs receives object lifecycle and query events.
	obs apis.Observer
	// preg indicates whether reg is pinned.
	preg bool
	// pres indicates whether res is pinned.
	pres bool
}

// rebuild rebuilds the unpinned layers of s from old using s.bld.
// It panics when the builder returns nil.
func (s *state) rebuild(old *state) {
	if !s.preg {
		s.reg = s.bld.BuildRegistry(s.cfg, old.reg, s.ext)
	}
	if !s.pres {
		s.res = s.bld.BuildResolver(s.cfg, s.reg, old.res, s.ext)
	}
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
}

func (s *state) mode(m apis.Match) apis.Match {
	if m != apis.MatchDefault {
		return m
	}
	if s.cfg.Match != apis.MatchDefault {
		return s.cfg.Match
	}
	return config.DefaultMatch
}
