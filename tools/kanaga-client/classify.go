// Copyright 2019 eBay Inc.
// Primary authors: Simon Fell, Diego Ongaro,
//                  Raymond Kroeker, and Sathish Kandasamy.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/ebay/kanaga/api"
	"github.com/ebay/kanaga/util/graphviz"
	"github.com/ebay/kanaga/util/table"
)

func classify(c *client, options *options) error {
	var res api.ClassifyResult
	if err := c.get("/v1/classify", &res); err != nil {
		return err
	}
	t := [][]string{{"Class", "Parents", "Equivalents", "Satisfiable"}}
	for _, info := range res.Classes {
		t = append(t, []string{
			info.IRI,
			strings.Join(info.Parents, ", "),
			strings.Join(info.Equivalents, ", "),
			fmt.Sprintf("%v", info.Satisfiable),
		})
	}
	table.PrettyPrint(os.Stdout, t, table.HeaderRow)
	if options.GraphFile != "" {
		gen := func(w io.Writer) { writeHierarchyDot(w, &res) }
		if err := graphviz.Create(options.GraphFile, gen, graphviz.Options{}); err != nil {
			return err
		}
		fmt.Printf("Wrote %v\n", options.GraphFile)
	}
	return nil
}

// writeHierarchyDot writes the hierarchy as a Graphviz digraph with an edge
// from each class up to each of its direct superclasses. Unsatisfiable
// classes come out red.
func writeHierarchyDot(w io.Writer, res *api.ClassifyResult) {
	fmt.Fprintln(w, "digraph hierarchy {")
	fmt.Fprintln(w, "  rankdir=BT;")
	for _, info := range res.Classes {
		if !info.Satisfiable {
			fmt.Fprintf(w, "  %q [color=red];\n", info.IRI)
		}
		for _, parent := range info.Parents {
			fmt.Fprintf(w, "  %q -> %q;\n", info.IRI, parent)
		}
	}
	fmt.Fprintln(w, "}")
}

func instances(c *client, options *options) error {
	var res api.InstancesResult
	if err := c.get("/v1/instances/"+url.PathEscape(options.Class), &res); err != nil {
		return err
	}
	fmtr.Printf("%d instances of %v\n", len(res.Instances), res.Class)
	for _, individual := range res.Instances {
		fmt.Println("  " + individual)
	}
	return nil
}
