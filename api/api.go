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

// Package api contains the types of the external HTTP API to Kanaga. Requests
// are form-encoded; responses are JSON. Where the reasoning engine already
// produces a type with a stable JSON form, this package aliases it rather
// than copying it field by field.
package api

import (
	"github.com/ebay/kanaga/reason"
	"github.com/ebay/kanaga/reason/classify"
	"github.com/ebay/kanaga/reason/rules"
)

// ConsistentResult is the response of GET /v1/consistent.
type ConsistentResult = classify.ConsistencyResult

// SubClassOfResult answers one subsumption question.
type SubClassOfResult struct {
	Sub          string `json:"sub"`
	Sup          string `json:"sup"`
	IsSubClassOf bool   `json:"isSubClassOf"`
}

// SubClassOfResults is the response of POST /v1/subclassof, in the same
// order as the request's sub/sup pairs.
type SubClassOfResults struct {
	Results []SubClassOfResult `json:"results"`
}

// SatisfiableResult is the response of POST /v1/satisfiable. Result is one of
// "satisfiable", "unsatisfiable", or "aborted"; aborted means the check
// outgrew the engine's configured bounds and proves nothing.
type SatisfiableResult struct {
	Expr   string `json:"expr"`
	Result string `json:"result"`
}

// ClassifyResult is the response of GET /v1/classify. Classes holds every
// classified class in the hierarchy's canonical order.
type ClassifyResult struct {
	Classes []*classify.ClassInfo `json:"classes"`
}

// InstancesResult is the response of GET /v1/instances/:iri.
type InstancesResult struct {
	Class     string   `json:"class"`
	Instances []string `json:"instances"`
}

// InferResult is the response of POST /v1/infer.
type InferResult = rules.Applied

// FactsResult is the response of GET /v1/facts. Current is false when the
// ontology has changed since the last forward-chaining run, or when no run
// has completed yet.
type FactsResult struct {
	Current bool         `json:"current"`
	Facts   []rules.Fact `json:"facts"`
}

// StatsResult is the response of GET /v1/stats.
type StatsResult = reason.EngineStats
