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
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/ebay/kanaga/util/parallel"
	opentracing "github.com/opentracing/opentracing-go"
)

// SubClassQuery names one subsumption question for BatchIsSubClassOf.
type SubClassQuery struct {
	Sub string `json:"sub"`
	Sup string `json:"sup"`
}

// BatchIsSubClassOf answers many subsumption questions at once. Results are
// in input order regardless of how the work was scheduled. Batches below
// Options.ParallelThreshold run on the calling goroutine; larger ones fan
// out across Options.Workers, each query assigned to a worker by a hash of
// the pair so a repeated pair is answered by the verdict cache rather than
// raced on.
func (e *Engine) BatchIsSubClassOf(ctx context.Context, queries []SubClassQuery) ([]bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reason.batch_subclassof")
	defer span.Finish()
	span.SetTag("queries", len(queries))
	metrics.batchQueries.Observe(float64(len(queries)))
	defer e.observe(metrics.batchDurationSeconds, e.opts.Clock.Now())

	out := make([]bool, len(queries))
	if len(queries) < e.opts.ParallelThreshold || e.opts.Workers <= 1 {
		for i, q := range queries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = e.classifier.IsSubClassOf(ctx, q.Sub, q.Sup)
		}
		return out, nil
	}

	workers := e.opts.Workers
	err := parallel.InvokeN(ctx, workers, func(ctx context.Context, w int) error {
		for i := range queries {
			q := queries[i]
			if xxhash.Sum64String(q.Sub+"\x00"+q.Sup)%uint64(workers) != uint64(w) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = e.classifier.IsSubClassOf(ctx, q.Sub, q.Sup)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
