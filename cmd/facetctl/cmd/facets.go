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

package cmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dirpx.dev/facet"

	// Registered for their facets.
	_ "dirpx.dev/facet/fault"
	_ "dirpx.dev/facet/input"
	_ "dirpx.dev/facet/ref"
	_ "dirpx.dev/facet/text"
	_ "dirpx.dev/facet/window"
)

// FacetRow is one line of the facets listing.
type FacetRow struct {
	Name   string   `json:"name"`
	Hidden bool     `json:"hidden,omitempty"`
	Types  []string `json:"types"`
}

// NewFacetsCommand lists the registered facets.
func NewFacetsCommand(_ *RootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List registered facets sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := facetRows()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FACET\tTYPES")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%v\n", r.Name, r.Types)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func facetRows() []FacetRow {
	types := make(map[string][]string)
	for _, e := range facet.Registry().Entries() {
		types[e.Facet.Name()] = append(types[e.Facet.Name()], e.Type.String())
	}
	facets := facet.Facets()
	rows := make([]FacetRow, 0, len(facets))
	for _, f := range facets {
		ts := types[f.Name()]
		slices.Sort(ts)
		rows = append(rows, FacetRow{Name: f.Name(), Hidden: f.IsHidden(), Types: ts})
	}
	return rows
}
