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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/config"
)

func TestParse_AllKeys(t *testing.T) {
	cfg, err := config.Parse([]byte(`
match: name
max_unwrap: 2
max_chain: 8
include_hidden: true
`))
	require.NoError(t, err)
	assert.Equal(t, apis.Config{MaxUnwrap: 2, MaxChain: 8, Match: apis.MatchName, IncludeHidden: true}, cfg)
}

func TestParse_EmptyDocumentIsDefault(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("max_chain: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxChain)
	assert.Equal(t, config.DefaultMaxUnwrap, cfg.MaxUnwrap)
	assert.Equal(t, config.DefaultMatch, cfg.Match)
}

func TestParse_UnknownMatch(t *testing.T) {
	_, err := config.Parse([]byte("match: fuzzy\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apis.ErrUnknownMatch))
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	_, err := config.Parse([]byte("matcher: name\n"))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match: pointer\ninclude_hidden: true\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, apis.MatchPointer, cfg.Match)
	assert.True(t, cfg.IncludeHidden)
}

func TestLoadOptional_MissingFile(t *testing.T) {
	cfg, err := config.LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	cfg, err = config.LoadOptional("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
