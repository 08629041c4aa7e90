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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/facet/apis"
)

// File is the on-disk (YAML) form of apis.Config. Absent keys keep defaults.
//
//	match: name
//	max_unwrap: 4
//	max_chain: 16
//	include_hidden: false
type File struct {
	Match         string `yaml:"match,omitempty"`
	MaxUnwrap     *int   `yaml:"max_unwrap,omitempty"`
	MaxChain      *int   `yaml:"max_chain,omitempty"`
	IncludeHidden *bool  `yaml:"include_hidden,omitempty"`
}

// Options converts the file form into functional options.
func (f File) Options() ([]Option, error) {
	var opts []Option
	if f.Match != "" {
		m, err := apis.ParseMatch(f.Match)
		if err != nil {
			return nil, fmt.Errorf("facet(config): match %q: %w", f.Match, err)
		}
		opts = append(opts, WithMatch(m))
	}
	if f.MaxUnwrap != nil {
		opts = append(opts, WithMaxUnwrap(*f.MaxUnwrap))
	}
	if f.MaxChain != nil {
		opts = append(opts, WithMaxChain(*f.MaxChain))
	}
	if f.IncludeHidden != nil {
		opts = append(opts, WithIncludeHidden(*f.IncludeHidden))
	}
	return opts, nil
}

// Parse decodes a YAML document into an apis.Config. Unknown keys are rejected.
// An empty document yields DefaultConfig.
func Parse(data []byte) (apis.Config, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return apis.Config{}, fmt.Errorf("facet(config): parse: %w", err)
	}
	opts, err := f.Options()
	if err != nil {
		return apis.Config{}, err
	}
	return NewConfig(opts...), nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("facet(config): read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional is like Load but returns DefaultConfig when path is empty or
// the file does not exist.
func LoadOptional(path string) (apis.Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}
