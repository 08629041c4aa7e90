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

package config_test

import (
	"testing"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if got.MaxChain != config.DefaultMaxChain {
		t.Fatalf("MaxChain = %d, want %d", got.MaxChain, config.DefaultMaxChain)
	}
	if got.Match != config.DefaultMatch {
		t.Fatalf("Match = %v, want %v", got.Match, config.DefaultMatch)
	}
	if got.IncludeHidden != config.DefaultIncludeHidden {
		t.Fatalf("IncludeHidden = %v, want %v", got.IncludeHidden, config.DefaultIncludeHidden)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithMatch(t *testing.T) {
	c := config.NewConfig(config.WithMatch(apis.MatchName))
	if c.Match != apis.MatchName {
		t.Fatalf("Match = %v, want name", c.Match)
	}
}

func TestWithMatch_DefaultResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMatch(apis.MatchDefault))
	if c.Match != config.DefaultMatch {
		t.Fatalf("Match = %v, want %v", c.Match, config.DefaultMatch)
	}
}

func TestWithIncludeHidden(t *testing.T) {
	c := config.NewConfig(config.WithIncludeHidden(true))
	if !c.IncludeHidden {
		t.Fatalf("IncludeHidden = %v, want true", c.IncludeHidden)
	}
}

func TestWithMaxUnwrap_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(-1))
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestWithMaxChain_NonPositive_ResetsToDefault(t *testing.T) {
	for _, v := range []int{0, -3} {
		c := config.NewConfig(config.WithMaxChain(v))
		if c.MaxChain != config.DefaultMaxChain {
			t.Fatalf("WithMaxChain(%d): MaxChain = %d, want default %d", v, c.MaxChain, config.DefaultMaxChain)
		}
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithMatch(apis.MatchName),
		config.WithMatch(apis.MatchPointer),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithMaxChain(3),
		config.WithMaxChain(9),
	)

	if c.Match != apis.MatchPointer {
		t.Errorf("Match = %v, want pointer (last option wins)", c.Match)
	}
	if c.MaxUnwrap != 5 {
		t.Errorf("MaxUnwrap = %d, want 5 (last option wins)", c.MaxUnwrap)
	}
	if c.MaxChain != 9 {
		t.Errorf("MaxChain = %d, want 9 (last option wins)", c.MaxChain)
	}
}

func TestNewConfig_Guardrails_MaxUnwrapZeroAllowed(t *testing.T) {
	// Only negative values are reset; zero means "do not unwrap".
	c := config.NewConfig(config.WithMaxUnwrap(0))
	if c.MaxUnwrap != 0 {
		t.Fatalf("MaxUnwrap = %d, want 0 (zero is allowed)", c.MaxUnwrap)
	}
}
