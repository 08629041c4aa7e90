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

package builder_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/builder"
	"dirpx.dev/facet/config"
	"dirpx.dev/facet/registry"
)

// userType is a plain named type carrying a facet.
type userType struct{}

var userFacet = apis.NewFacet("builder.user")

// TestBuildRegistry_Basic asserts that BuildRegistry returns a non-nil,
// working Registry seeded with the base contract facets.
func TestBuildRegistry_Basic(t *testing.T) {
	b := builder.New()

	// prev may be nil; this must still produce a valid registry.
	reg := b.BuildRegistry(config.DefaultConfig(), nil, nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}

	if f, ok := reg.Lookup(reflect.TypeFor[apis.Ref]()); !ok || f != apis.RefFacet {
		t.Fatalf("apis.Ref not seeded: got (%v,%v)", f, ok)
	}
	if f, ok := reg.Lookup(reflect.TypeFor[apis.Copyable]()); !ok || f != apis.CopyableFacet {
		t.Fatalf("apis.Copyable not seeded: got (%v,%v)", f, ok)
	}

	tt := reflect.TypeOf(userType{})
	if err := reg.Register(tt, userFacet); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if got, ok := reg.Lookup(tt); !ok || got != userFacet {
		t.Fatalf("Lookup mismatch: ok=%v got=%v", ok, got)
	}
}

// TestBuildRegistry_Migrates verifies entries survive a rebuild.
func TestBuildRegistry_Migrates(t *testing.T) {
	b := builder.New()
	prev := registry.New(config.DefaultConfig())
	if err := prev.Register(reflect.TypeOf(&userType{}), userFacet); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	next := b.BuildRegistry(config.NewConfig(config.WithMatch(apis.MatchName)), prev, nil)
	if got, ok := next.Lookup(reflect.TypeOf(userType{})); !ok || got != userFacet {
		t.Fatalf("entry not migrated: ok=%v got=%v", ok, got)
	}
	if got, ok := next.LookupName("builder.user"); !ok || got != userFacet {
		t.Fatalf("name not migrated: ok=%v got=%v", ok, got)
	}
}

// TestBuildResolver_Order verifies the strategy order: hidden gate, pointer,
// name.
func TestBuildResolver_Order(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	res := b.BuildResolver(cfg, b.BuildRegistry(cfg, nil, nil), nil, nil)
	if res == nil {
		t.Fatal("BuildResolver returned nil")
	}

	impl := apis.NewFacet("builder.user.impl", apis.Hidden())
	chain := apis.Chain{impl, userFacet, apis.RefFacet}

	if got, ok := res.Resolve(chain, userFacet, apis.MatchPointer, cfg); !ok || got != userFacet {
		t.Fatalf("pointer: got (%v,%v)", got, ok)
	}
	if got, ok := res.Resolve(chain, apis.NewFacet("ref"), apis.MatchName, cfg); !ok || got != apis.RefFacet {
		t.Fatalf("name: got (%v,%v)", got, ok)
	}
	if _, ok := res.Resolve(chain, apis.NewFacet("builder.user.impl"), apis.MatchName, cfg); ok {
		t.Fatalf("hidden facet matched by name")
	}
	if got, ok := res.Resolve(chain, impl, apis.MatchPointer, cfg); !ok || got != impl {
		t.Fatalf("hidden by pointer: got (%v,%v)", got, ok)
	}
}

// aliasStrategy matches one extra name against a declared facet.
type aliasStrategy struct {
	alias    string
	declared *apis.Facet
}

func (a aliasStrategy) TryMatch(declared, want *apis.Facet, _ apis.Match, _ apis.Config) (bool, bool) {
	if want.Name() != a.alias || declared != a.declared {
		return false, false
	}
	return true, true
}

func TestBuildResolver_ExtensionStrategiesRunFirst(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	ext := builder.Extension{Strategies: []apis.Strategy{aliasStrategy{alias: "builder.legacy", declared: userFacet}}}

	res := b.BuildResolver(cfg, b.BuildRegistry(cfg, nil, ext), nil, &ext)
	chain := apis.Chain{userFacet, apis.RefFacet}

	if got, ok := res.Resolve(chain, apis.NewFacet("builder.legacy"), apis.MatchPointer, cfg); !ok || got != userFacet {
		t.Fatalf("alias: got (%v,%v), want (user,true)", got, ok)
	}
	if got, ok := res.Resolve(chain, apis.RefFacet, apis.MatchPointer, cfg); !ok || got != apis.RefFacet {
		t.Fatalf("built-ins after extension: got (%v,%v)", got, ok)
	}

	plain := b.BuildResolver(cfg, b.BuildRegistry(cfg, nil, nil), nil, "unrelated ext")
	if _, ok := plain.Resolve(chain, apis.NewFacet("builder.legacy"), apis.MatchPointer, cfg); ok {
		t.Fatalf("alias matched without the extension")
	}
}

func TestBuildRegistry_ExtensionBindings(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	other := apis.NewFacet("builder.other")
	ext := builder.Extension{Bindings: []apis.Entry{
		{Type: reflect.TypeFor[userType](), Facet: userFacet},
		{Type: reflect.TypeFor[*userType](), Facet: other},
	}}

	reg := b.BuildRegistry(cfg, nil, ext)
	if f, ok := reg.Lookup(reflect.TypeFor[userType]()); !ok || f != userFacet {
		t.Fatalf("binding: got (%v,%v)", f, ok)
	}
	if _, ok := reg.LookupName("builder.other"); ok {
		t.Fatalf("conflicting binding should be rejected")
	}
	if f, ok := reg.Lookup(reflect.TypeFor[apis.Ref]()); !ok || f != apis.RefFacet {
		t.Fatalf("base facet: got (%v,%v)", f, ok)
	}
}

// TestBuildResolver_Concurrency_Smoke hammers the resolver in parallel to ensure
// it is safe to call Resolve concurrently after being built.
func TestBuildResolver_Concurrency_Smoke(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	res := b.BuildResolver(cfg, b.BuildRegistry(cfg, nil, nil), nil, nil)
	chain := apis.Chain{userFacet, apis.CopyableFacet, apis.RefFacet}
	wants := []*apis.Facet{userFacet, apis.RefFacet, apis.NewFacet("ref.copyable")}
	modes := []apis.Match{apis.MatchPointer, apis.MatchName}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				_, _ = res.Resolve(chain, wants[(i+id)%len(wants)], modes[i%len(modes)], cfg)
			}
		}(w)
	}

	wg.Wait()
}

// Compile-time check: builder.New() must satisfy apis.Builder.
var _ apis.Builder = builder.New()
