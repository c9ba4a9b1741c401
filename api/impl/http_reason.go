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

package impl

import (
	"net/http"

	"github.com/ebay/kanaga/api"
	"github.com/ebay/kanaga/owl/parser"
	"github.com/ebay/kanaga/reason"
	"github.com/ebay/kanaga/reason/classify"
	"github.com/ebay/kanaga/util/web"
	"github.com/julienschmidt/httprouter"
	opentracing "github.com/opentracing/opentracing-go"
)

// consistent serves GET /v1/consistent.
func (s *Server) consistent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	span, ctx := opentracing.StartSpanFromContext(r.Context(), "http consistent")
	defer span.Finish()
	res, err := s.engine.IsConsistent(ctx)
	if err != nil {
		web.Write(w, err)
		return
	}
	web.Write(w, res)
}

// subClassOf serves POST /v1/subclassof. The form may carry one sub/sup pair
// or several; results come back in the same order.
func (s *Server) subClassOf(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	span, ctx := opentracing.StartSpanFromContext(r.Context(), "http subclassof")
	defer span.Finish()
	if err := r.ParseForm(); err != nil {
		web.Write(w, web.NewError(http.StatusBadRequest, "Unable to parse POST data: %v", err))
		return
	}
	subs, sups := r.Form["sub"], r.Form["sup"]
	if len(subs) == 0 || len(subs) != len(sups) {
		web.Write(w, web.NewError(http.StatusBadRequest,
			"Need matching 'sub' and 'sup' params, got %d and %d", len(subs), len(sups)))
		return
	}
	queries := make([]reason.SubClassQuery, len(subs))
	for i := range subs {
		queries[i] = reason.SubClassQuery{Sub: subs[i], Sup: sups[i]}
	}
	span.SetTag("queries", len(queries))
	verdicts, err := s.engine.BatchIsSubClassOf(ctx, queries)
	if err != nil {
		web.Write(w, err)
		return
	}
	res := api.SubClassOfResults{Results: make([]api.SubClassOfResult, len(queries))}
	for i, q := range queries {
		res.Results[i] = api.SubClassOfResult{
			Sub:          q.Sub,
			Sup:          q.Sup,
			IsSubClassOf: verdicts[i],
		}
	}
	web.Write(w, res)
}

// satisfiable serves POST /v1/satisfiable. The 'expr' form param holds a
// class expression in the same text format as ontology files.
func (s *Server) satisfiable(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	span, ctx := opentracing.StartSpanFromContext(r.Context(), "http satisfiable")
	defer span.Finish()
	if err := r.ParseForm(); err != nil {
		web.Write(w, web.NewError(http.StatusBadRequest, "Unable to parse POST data: %v", err))
		return
	}
	expr := r.Form.Get("expr")
	if expr == "" {
		web.Write(w, web.NewError(http.StatusBadRequest, "Form param 'expr' must be specified"))
		return
	}
	concept, err := parser.ParseConcept(expr)
	if err != nil {
		web.Write(w, web.NewError(http.StatusBadRequest, "Unable to parse expression: %v", err))
		return
	}
	verdict, err := s.engine.CheckSatisfiable(ctx, concept)
	if err != nil {
		web.Write(w, err)
		return
	}
	web.Write(w, api.SatisfiableResult{Expr: expr, Result: verdict.String()})
}

// classify serves GET /v1/classify.
func (s *Server) classify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	span, ctx := opentracing.StartSpanFromContext(r.Context(), "http classify")
	defer span.Finish()
	h, err := s.engine.Classify(ctx)
	if err != nil {
		web.Write(w, err)
		return
	}
	res := api.ClassifyResult{Classes: make([]*classify.ClassInfo, 0, h.Len())}
	for _, iri := range h.Classes() {
		res.Classes = append(res.Classes, h.Info(iri))
	}
	web.Write(w, res)
}

// instances serves GET /v1/instances/:iri.
func (s *Server) instances(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	span, ctx := opentracing.StartSpanFromContext(r.Context(), "http instances")
	defer span.Finish()
	iri := p.ByName("iri")
	span.SetTag("class", iri)
	out, err := s.engine.InstancesOf(ctx, iri)
	if err != nil {
		web.Write(w, err)
		return
	}
	web.Write(w, api.InstancesResult{Class: iri, Instances: out})
}

// infer serves POST /v1/infer, running forward chaining to a fixed point.
func (s *Server) infer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	span, ctx := opentracing.StartSpanFromContext(r.Context(), "http infer")
	defer span.Finish()
	applied, err := s.engine.RunForwardChaining(ctx)
	if err != nil {
		web.Write(w, err)
		return
	}
	web.Write(w, applied)
}

// facts serves GET /v1/facts, returning the store from the last completed
// forward-chaining run.
func (s *Server) facts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	span, _ := opentracing.StartSpanFromContext(r.Context(), "http facts")
	defer span.Finish()
	facts, current := s.engine.MaterializedFacts()
	web.Write(w, api.FactsResult{Current: current, Facts: facts})
}

// stats serves GET /v1/stats.
func (s *Server) stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	web.Write(w, s.engine.Stats())
}
