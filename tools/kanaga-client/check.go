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
	"strings"

	"github.com/ebay/kanaga/api"
)

func consistent(c *client) error {
	var res api.ConsistentResult
	if err := c.get("/v1/consistent", &res); err != nil {
		return err
	}
	switch {
	case res.Consistent:
		fmt.Println("Ontology is consistent")
	case len(res.Cycle) > 0:
		fmt.Printf("Ontology is NOT consistent: subclass cycle %v\n",
			strings.Join(res.Cycle, " -> "))
	case res.Unsatisfiable != "":
		fmt.Printf("Ontology is NOT consistent: class %v is unsatisfiable\n",
			res.Unsatisfiable)
	default:
		fmt.Println("Ontology is NOT consistent")
	}
	return nil
}

func satisfiable(c *client, options *options) error {
	var res api.SatisfiableResult
	err := c.postForm("/v1/satisfiable", url.Values{"expr": {options.Expr}}, &res)
	if err != nil {
		return err
	}
	fmt.Printf("%v: %v\n", res.Expr, res.Result)
	return nil
}

func subClassOf(c *client, options *options) error {
	var res api.SubClassOfResults
	err := c.postForm("/v1/subclassof", url.Values{
		"sub": {options.Sub},
		"sup": {options.Sup},
	}, &res)
	if err != nil {
		return err
	}
	if len(res.Results) != 1 {
		return fmt.Errorf("expected 1 result, got %d", len(res.Results))
	}
	if res.Results[0].IsSubClassOf {
		fmt.Printf("%v is a subclass of %v\n", options.Sub, options.Sup)
	} else {
		fmt.Printf("%v is not a subclass of %v\n", options.Sub, options.Sup)
	}
	return nil
}
