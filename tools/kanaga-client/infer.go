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
	"net/url"
	"os"
	"time"

	"github.com/ebay/kanaga/api"
	"github.com/ebay/kanaga/util/table"
)

func infer(c *client) error {
	var res api.InferResult
	if err := c.postForm("/v1/infer", url.Values{}, &res); err != nil {
		return err
	}
	fmtr.Printf("Materialized %d facts in %d iterations (%d rule firings), taking %v\n",
		res.Facts, res.Iterations, len(res.Firings), res.Duration.Truncate(time.Millisecond))
	if res.Exhausted {
		fmt.Println("Warning: chaining stopped at the iteration bound before reaching a fixed point")
	}
	return nil
}

func dumpFacts(c *client) error {
	var res api.FactsResult
	if err := c.get("/v1/facts", &res); err != nil {
		return err
	}
	if !res.Current {
		fmt.Println("Note: the fact store is stale; run 'kanaga-client infer' to rebuild it")
	}
	t := [][]string{{"Subject", "Predicate", "Object", "Source"}}
	for _, f := range res.Facts {
		source := "ontology"
		if f.Inferred {
			source = f.Rule
		}
		t = append(t, []string{f.Subject, f.Predicate, f.Object, source})
	}
	table.PrettyPrint(os.Stdout, t, table.HeaderRow)
	fmtr.Printf("%d facts\n", len(res.Facts))
	return nil
}

func stats(c *client) error {
	text, err := c.getText("/v1/stats.txt")
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
