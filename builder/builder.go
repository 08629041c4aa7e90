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

package builder

import (
	"log/slog"
	"reflect"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/registry"
	"dirpx.dev/facet/resolver"
	"dirpx.dev/facet/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// Extension is the ext value understood by the default builder. Install it
// with facet.SetExt; other ext values are ignored here and stay available to
// custom builders through facet.ExtAs.
type Extension struct {
	// Bindings are registered after the base facets and before entries
	// migrated from the previous registry.
	Bindings []apis.Entry
	// Strategies run ahead of the built-in ones, in order.
	Strategies []apis.Strategy
}

func extension(ext any) Extension {
	switch e := ext.(type) {
	case Extension:
		return e
	case *Extension:
		if e != nil {
			return *e
		}
	}
	return Extension{}
}

// BuildRegistry builds a registry for cfg, seeds it with the base contract
// facets and the Extension bindings, and migrates the entries of the
// previous registry, if any. Entries that no longer normalize under cfg are
// dropped with a warning.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, ext any) apis.Registry {
	nreg := registry.New(cfg)
	_ = nreg.Register(reflect.TypeFor[apis.Ref](), apis.RefFacet)
	_ = nreg.Register(reflect.TypeFor[apis.Copyable](), apis.CopyableFacet)
	for _, e := range extension(ext).Bindings {
		if err := nreg.Register(e.Type, e.Facet); err != nil {
			slog.Warn("facet: extension binding rejected",
				"type", typeName(e.Type), "facet", e.Facet.Name(), "error", err)
		}
	}
	if preg != nil {
		for _, e := range preg.Entries() {
			if err := nreg.Register(e.Type, e.Facet); err != nil {
				slog.Warn("facet: registry entry dropped on rebuild",
					"type", e.Type.String(), "facet", e.Facet.Name(), "error", err)
			}
		}
	}
	return nreg
}

// BuildResolver returns the Extension strategies followed by the standard
// chain: hidden facets first, then the pointer fast path, then the name slow
// path.
func (b *builder) BuildResolver(_ apis.Config, _ apis.Registry, _ apis.Resolver, ext any) apis.Resolver {
	strats := append([]apis.Strategy(nil), extension(ext).Strategies...)
	strats = append(strats,
		strategy.NewHiddenStrategy(),
		strategy.NewPointerStrategy(),
		strategy.NewNameStrategy(),
	)
	return resolver.New(strats...)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
