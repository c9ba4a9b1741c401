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
	"context"
	"errors"
	"math/rand"
	"net/url"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/ebay/kanaga/api"
	"github.com/ebay/kanaga/owl"
	"github.com/ebay/kanaga/util/parallel"
	"github.com/ebay/kanaga/util/random"
	"github.com/ebay/kanaga/util/table"
)

// bench hammers the subclassof endpoint with random pairs of named classes
// and reports latency percentiles. The first requests pay for classification;
// later ones mostly come out of the server's verdict cache.
func bench(ctx context.Context, c *client, options *options) error {
	if options.Num < 1 {
		return errors.New("-n must be at least 1")
	}
	if options.Workers < 1 {
		options.Workers = 1
	}
	var hierarchy api.ClassifyResult
	if err := c.get("/v1/classify", &hierarchy); err != nil {
		return err
	}
	classes := make([]string, 0, len(hierarchy.Classes))
	for _, info := range hierarchy.Classes {
		if info.IRI != owl.Thing && info.IRI != owl.Nothing {
			classes = append(classes, info.IRI)
		}
	}
	if len(classes) < 2 {
		return errors.New("the ontology needs at least 2 named classes to benchmark")
	}

	random.SeedMath()
	queries := make(chan [2]string, options.Num)
	for i := 0; i < options.Num; i++ {
		queries <- [2]string{
			classes[rand.Intn(len(classes))],
			classes[rand.Intn(len(classes))],
		}
	}
	close(queries)

	bar := pb.New(options.Num).Prefix("subclassof ")
	bar.SetMaxWidth(100)
	bar.ShowPercent = true
	bar.Start()

	var lock sync.Mutex
	latencies := make([]time.Duration, 0, options.Num)
	start := time.Now()
	err := parallel.InvokeN(ctx, options.Workers, func(ctx context.Context, worker int) error {
		for q := range queries {
			reqStart := time.Now()
			var res api.SubClassOfResults
			err := c.postForm("/v1/subclassof", url.Values{
				"sub": {q[0]},
				"sup": {q[1]},
			}, &res)
			if err != nil {
				return err
			}
			lock.Lock()
			latencies = append(latencies, time.Since(reqStart))
			lock.Unlock()
			bar.Increment()
		}
		return nil
	})
	elapsed := time.Since(start)
	bar.Finish()
	if err != nil {
		return err
	}

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	pct := func(p float64) time.Duration {
		return latencies[int(p*float64(len(latencies)-1))]
	}
	t := [][]string{
		{"Metric", "Value"},
		{"Requests", fmtr.Sprintf("%d", len(latencies))},
		{"Elapsed", elapsed.Truncate(time.Millisecond).String()},
		{"Throughput", fmtr.Sprintf("%.0f req/s", float64(len(latencies))/elapsed.Seconds())},
		{"p50 latency", pct(0.50).String()},
		{"p90 latency", pct(0.90).String()},
		{"p99 latency", pct(0.99).String()},
		{"Max latency", latencies[len(latencies)-1].String()},
	}
	table.PrettyPrint(os.Stdout, t, table.HeaderRow|table.RightJustify)
	return nil
}
