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

package apis

import (
	"errors"
	"strings"
)

// ErrUnknownMatch is returned when a match mode name cannot be parsed.
var ErrUnknownMatch = errors.New("facet(apis): unknown match mode")

var (
	// RefFacet is the base "untyped reference" facet. Every chain ends with it.
	RefFacet = NewFacet("ref")
	// CopyableFacet marks objects that support the Copy Capability.
	CopyableFacet = NewFacet("ref.copyable")
)

// Facet is the identity token of one independently queryable capability.
//
// A token compares two ways. Inside one compiled unit the pointer itself is
// the identity and comparing pointers is enough (MatchPointer). A unit built
// separately mints its own token for the same logical facet, so across units
// only the name is stable (MatchName). Names are therefore unique across the
// whole process; the registry rejects duplicates.
type Facet struct {
	name   string
	hidden bool
}

// FacetOption configures a Facet at declaration time.
type FacetOption func(*Facet)

// Hidden marks a facet as implementation-private. Hidden facets are matched
// by pointer only, unless Config.IncludeHidden is set.
func Hidden() FacetOption {
	return func(f *Facet) {
		f.hidden = true
	}
}

// NewFacet declares a facet identity token. It panics on an empty name:
// facets are declared in package variables and an empty name is a
// programming error.
func NewFacet(name string, opts ...FacetOption) *Facet {
	if strings.TrimSpace(name) == "" {
		panic("facet(apis): empty facet name")
	}
	f := &Facet{name: name}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the facet's canonical name, or "" for a nil token.
func (f *Facet) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// IsHidden reports whether the facet is implementation-private.
func (f *Facet) IsHidden() bool {
	return f != nil && f.hidden
}

// EntityName implements Namer.
func (f *Facet) EntityName() string { return f.Name() }

func (f *Facet) String() string {
	if f == nil {
		return "<nil facet>"
	}
	return f.name
}

// Match selects how a requested facet is compared against declared facets.
type Match uint8

const (
	// MatchDefault defers to Config.Match.
	MatchDefault Match = iota
	// MatchPointer compares token pointers. Valid only when producer and
	// consumer share the same token instances.
	MatchPointer
	// MatchName compares token names byte for byte.
	MatchName
)

func (m Match) String() string {
	switch m {
	case MatchDefault:
		return "default"
	case MatchPointer:
		return "pointer"
	case MatchName:
		return "name"
	default:
		return "unknown"
	}
}

// ParseMatch parses "pointer" or "name" (case-insensitive).
func ParseMatch(s string) (Match, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pointer", "ptr", "fast":
		return MatchPointer, nil
	case "name", "string", "slow":
		return MatchName, nil
	}
	return MatchDefault, ErrUnknownMatch
}

// Chain is the fixed, ordered facet list of a concrete object type, from the
// most-derived facet down to RefFacet.
type Chain []*Facet

// Head returns the most-derived facet, or nil for an empty chain.
func (c Chain) Head() *Facet {
	if len(c) == 0 {
		return nil
	}
	return c[0]
}

// Names returns the facet names in chain order.
func (c Chain) Names() []string {
	out := make([]string, len(c))
	for i, f := range c {
		out[i] = f.Name()
	}
	return out
}
