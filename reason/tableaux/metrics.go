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

package tableaux

import (
	metricsutil "github.com/ebay/kanaga/util/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type tableauxMetrics struct {
	satisfiable   prometheus.Counter
	unsatisfiable prometheus.Counter
	aborted       prometheus.Counter

	nodesCreated         prometheus.Summary
	backtracks           prometheus.Summary
	checkDurationSeconds prometheus.Summary
}

var metrics tableauxMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = tableauxMetrics{
		satisfiable: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "tableaux",
			Name:      "satisfiable_total",
			Help:      `The number of checks that ended satisfiable.`,
		}),
		unsatisfiable: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "tableaux",
			Name:      "unsatisfiable_total",
			Help:      `The number of checks that ended unsatisfiable.`,
		}),
		aborted: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "tableaux",
			Name:      "aborted_total",
			Help: `The number of checks that gave up.

A check aborts when the completion graph outgrows the configured node
bound or the caller's context expires. Aborted checks prove nothing;
callers treat them as "not proven". A nonzero rate here usually means
MaxNodes is set too low for the ontology.
`,
		}),
		nodesCreated: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "tableaux",
			Name:       "nodes_created",
			Help:       `The completion-graph size per check.`,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
		}),
		backtracks: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "tableaux",
			Name:       "backtracks",
			Help:       `The union alternatives retried per check.`,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
		}),
		checkDurationSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "tableaux",
			Name:       "check_duration_seconds",
			Help:       `The time one satisfiability check takes.`,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
		}),
	}
}

func observe(result Result, stats Stats) {
	switch result {
	case Satisfiable:
		metrics.satisfiable.Inc()
	case Unsatisfiable:
		metrics.unsatisfiable.Inc()
	case Aborted:
		metrics.aborted.Inc()
	}
	metrics.nodesCreated.Observe(float64(stats.NodesCreated))
	metrics.backtracks.Observe(float64(stats.Backtracks))
	metrics.checkDurationSeconds.Observe(stats.Duration.Seconds())
}
