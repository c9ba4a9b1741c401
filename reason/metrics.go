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

package reason

import (
	metricsutil "github.com/ebay/kanaga/util/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type reasonMetrics struct {
	consistentDurationSeconds  prometheus.Summary
	subsumptionDurationSeconds prometheus.Summary
	satisfiableDurationSeconds prometheus.Summary
	classifyDurationSeconds    prometheus.Summary
	instancesDurationSeconds   prometheus.Summary
	batchDurationSeconds       prometheus.Summary
	batchQueries               prometheus.Summary
}

var metrics reasonMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	objectives := map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001}
	metrics = reasonMetrics{
		consistentDurationSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "reason",
			Name:       "consistent_duration_seconds",
			Help:       `The time one IsConsistent call takes.`,
			Objectives: objectives,
		}),
		subsumptionDurationSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "reason",
			Name:       "subclassof_duration_seconds",
			Help:       `The time one IsSubClassOf call takes, cache hits included.`,
			Objectives: objectives,
		}),
		satisfiableDurationSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "reason",
			Name:       "satisfiable_duration_seconds",
			Help:       `The time one satisfiability call takes, cache hits included.`,
			Objectives: objectives,
		}),
		classifyDurationSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "reason",
			Name:       "classify_duration_seconds",
			Help:       `The time one full classification takes.`,
			Objectives: objectives,
		}),
		instancesDurationSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "reason",
			Name:       "instances_duration_seconds",
			Help:       `The time one InstancesOf call takes.`,
			Objectives: objectives,
		}),
		batchDurationSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "reason",
			Name:       "batch_subclassof_duration_seconds",
			Help:       `The time one BatchIsSubClassOf call takes, whole batch.`,
			Objectives: objectives,
		}),
		batchQueries: mr.NewSummary(prometheus.SummaryOpts{
			Namespace:  "kanaga",
			Subsystem:  "reason",
			Name:       "batch_subclassof_queries",
			Help:       `The batch sizes handed to BatchIsSubClassOf.`,
			Objectives: objectives,
		}),
	}
}
