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

package config

import (
	"dirpx.dev/facet/apis"
)

const (
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// Facet types are at most a pointer or two away from their named type.
	DefaultMaxUnwrap = 4
	// DefaultMaxChain represents the default for MaxChain.
	DefaultMaxChain = 16
	// DefaultMatch represents the default for Match.
	// Callers inside one build share token instances, so pointer comparison is the default.
	DefaultMatch = apis.MatchPointer
	// DefaultIncludeHidden represents the default for IncludeHidden.
	DefaultIncludeHidden = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure limits are valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.MaxChain <= 0 {
		cfg.MaxChain = DefaultMaxChain
	}
	if cfg.Match == apis.MatchDefault {
		cfg.Match = DefaultMatch
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxUnwrap:     DefaultMaxUnwrap,
		MaxChain:      DefaultMaxChain,
		Match:         DefaultMatch,
		IncludeHidden: DefaultIncludeHidden,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMaxChain sets the MaxChain option.
// A non-positive value resets to the default.
func WithMaxChain(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxChain = DefaultMaxChain
			return
		}
		c.MaxChain = max
	}
}

// WithMatch sets the mode MatchDefault resolves to.
// MatchDefault itself resets to DefaultMatch.
func WithMatch(m apis.Match) Option {
	return func(c *apis.Config) {
		c.Match = m
	}
}

// WithIncludeHidden sets the IncludeHidden option.
func WithIncludeHidden(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeHidden = include
	}
}
