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

// Package cmd holds the facetctl cobra commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"dirpx.dev/facet"
	"dirpx.dev/facet/config"
)

// RootOptions holds the global flags.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	LogFormat  string // "text" | "json"
}

// DefaultConfigFile is read from the working directory when --config is not
// given.
const DefaultConfigFile = "facet.yaml"

// LogFormats lists the accepted --log-format values.
var LogFormats = []string{"text", "json"}

// NewRootCommand builds the facetctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "facetctl",
		Short:         "Inspect facets and drive the frame loop",
		Long:          "facetctl lists the registered facet identities and runs the frame loop on the headless window platform.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(LogFormats, opts.LogFormat) {
				return fmt.Errorf("invalid log format %q: must be one of %v", opts.LogFormat, LogFormats)
			}
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), opts))

			// An explicit --config must exist; the default file may not.
			load := config.LoadOptional
			path := DefaultConfigFile
			if opts.ConfigPath != "" {
				load, path = config.Load, opts.ConfigPath
			}
			cfg, err := load(path)
			if err != nil {
				return err
			}
			facet.SetConfig(cfg)
			slog.Debug("facetctl: config loaded", "path", path, "match", cfg.Match.String(), "max_chain", cfg.MaxChain)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "log format (text|json)")

	cmd.AddCommand(NewFacetsCommand(opts))
	cmd.AddCommand(NewLoopCommand(opts))

	return cmd
}

func newLogger(w io.Writer, opts *RootOptions) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	ho := &slog.HandlerOptions{Level: level}
	if opts.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, ho))
	}
	return slog.New(slog.NewTextHandler(w, ho))
}
