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

package cache

import (
	metricsutil "github.com/ebay/kanaga/util/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type cacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	clears    prometheus.Counter
}

var metrics cacheMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = cacheMetrics{
		hits: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      `The number of lookups answered from the cache.`,
		}),
		misses: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      `The number of lookups that found no entry.`,
		}),
		evictions: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help: `The number of entries dropped to stay within the size bound.

Evictions cost repeated reasoning work later but never change any verdict.
A high rate here means the bound is too small for the query mix.
`,
		}),
		clears: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "cache",
			Name:      "clears_total",
			Help: `The number of wholesale cache invalidations.

The cache is cleared every time the ontology's axiom set changes.
`,
		}),
	}
}
