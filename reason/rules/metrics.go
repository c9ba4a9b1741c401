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

package rules

import (
	metricsutil "github.com/ebay/kanaga/util/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type rulesMetrics struct {
	runs      prometheus.Counter
	exhausted prometheus.Counter

	iterations         prometheus.Summary
	firings            prometheus.Summary
	facts              prometheus.Summary
	runDurationSeconds prometheus.Summary
}

var metrics rulesMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = rulesMetrics{
		runs: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "rules",
			Name:      "runs_total",
			Help:      `The number of forward-chaining runs.`,
		}),
		exhausted: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "rules",
			Name:      "exhausted_total",
			Help: `The number of runs stopped at the iteration bound.

A run that exhausts its iterations left derivations on the table. The
materialized store is still sound, just incomplete. If this grows,
MaxIterations or TierCap is too small for the ontology.
`,
		}),
		iterations: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "rules",
			Name:       "iterations",
			Help:       `The match/fire cycles per run.`,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
		}),
		firings: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "rules",
			Name:       "firings",
			Help:       `The facts derived per run.`,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
		}),
		facts: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "rules",
			Name:       "facts",
			Help:       `The working-memory size per run, seeds included.`,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
		}),
		runDurationSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "rules",
			Name:       "run_duration_seconds",
			Help:       `The time one forward-chaining run takes.`,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
		}),
	}
}

func observe(applied *Applied) {
	metrics.runs.Inc()
	if applied.Exhausted {
		metrics.exhausted.Inc()
	}
	metrics.iterations.Observe(float64(applied.Iterations))
	metrics.firings.Observe(float64(len(applied.Firings)))
	metrics.facts.Observe(float64(applied.Facts))
	metrics.runDurationSeconds.Observe(applied.Duration.Seconds())
}
