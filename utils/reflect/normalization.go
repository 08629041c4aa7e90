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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("facet(reflect): nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type, after pointer
	// unwrapping, is not a named type (e.g. anonymous struct, func, any).
	ErrReflectTypeNotNamed = errors.New("facet(reflect): type is not named")
)

// Normalize strips up to cfg.MaxUnwrap pointer levels from t and returns the
// named type a facet can be registered under.
//
// Only pointers are unwrapped: a facet belongs to the object, and *Window and
// Window are the same object, while []Window is not. Interface types are
// returned as-is when named, which is how contract facets (apis.Ref) are keyed.
//
// A negative MaxUnwrap means DefaultMaxUnwrap; zero disables unwrapping.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap < 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}

	if t.Kind() == reflect.Pointer || t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}
