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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/config"
	uref "dirpx.dev/facet/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("facet(registry): nil reflect.Type provided")
	// ErrNilFacet is returned when a nil facet token is provided.
	ErrNilFacet = errors.New("facet(registry): nil facet provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different facet.
	ErrConflictingRegistration = errors.New("facet(registry): conflicting type registration")
	// ErrDuplicateName indicates that another facet token already owns the name.
	// The facet namespace is flat; names must be unique across the process.
	ErrDuplicateName = errors.New("facet(registry): facet name already taken")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// types maps normalized reflect.Type to its facet.
	types sync.Map // map[reflect.Type]*apis.Facet
	// names maps facet name to the token that owns it.
	names sync.Map // map[string]*apis.Facet
	// count tracks the number of registered types.
	count int
}

// Register associates the nearest named type of t with facet f.
// It is idempotent for the same (type,facet) pair. One facet may be bound to
// several types, but one name may only ever belong to one token.
func (r *registry) Register(t reflect.Type, f *apis.Facet) error {
	if t == nil {
		return ErrNilType
	}
	if f == nil {
		return ErrNilFacet
	}

	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.types.Load(b); ok {
		if old.(*apis.Facet) == f {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.types.Load(b); ok {
		if old.(*apis.Facet) == f {
			return nil
		}
		return ErrConflictingRegistration
	}
	if owner, ok := r.names.Load(f.Name()); ok && owner.(*apis.Facet) != f {
		return ErrDuplicateName
	}

	r.names.Store(f.Name(), f)
	r.types.Store(b, f)
	r.count++
	return nil
}

// Lookup returns the facet for a type if present.
func (r *registry) Lookup(t reflect.Type) (*apis.Facet, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.types.Load(nt); ok {
		return v.(*apis.Facet), true
	}
	return nil, false
}

func (r *registry) LookupName(name string) (*apis.Facet, bool) {
	if v, ok := r.names.Load(name); ok {
		return v.(*apis.Facet), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.types.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:  key.(reflect.Type),
			Facet: value.(*apis.Facet),
		})
		return true
	})
	return entries
}

// Count returns the number of registered types.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types.Clear()
	r.names.Clear()
	r.count = 0
}
