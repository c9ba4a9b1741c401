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

package classify

import (
	metricsutil "github.com/ebay/kanaga/util/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type classifyMetrics struct {
	subsumptionChecks    prometheus.Counter
	subsumptionFallbacks prometheus.Counter
	classifications      prometheus.Counter
	inconsistencies      prometheus.Counter
}

var metrics classifyMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = classifyMetrics{
		subsumptionChecks: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "classify",
			Name:      "subsumption_checks_total",
			Help:      `The number of IsSubClassOf calls, cache hits included.`,
		}),
		subsumptionFallbacks: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "classify",
			Name:      "subsumption_tableaux_fallbacks_total",
			Help: `The number of subsumption checks the declared graph could not settle.

These fall through to the tableaux engine, which costs orders of
magnitude more than the graph walk. A high ratio of fallbacks to checks
means the ontology leans on complex class expressions rather than
declared subclass axioms.
`,
		}),
		classifications: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "classify",
			Name:      "classifications_total",
			Help:      `The number of full-hierarchy classification runs.`,
		}),
		inconsistencies: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaga",
			Subsystem: "classify",
			Name:      "inconsistencies_total",
			Help:      `The number of consistency checks that found a problem.`,
		}),
	}
}
