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

// Package config contains the configuration for a Kanaga server. The
// configuration is typically loaded from a JSON file on disk.
package config

// Kanaga describes the configuration for a Kanaga server.
type Kanaga struct {
	// The path of the ontology file the server loads at startup, in the frame
	// text format understood by the owl/parser package. Required on API
	// servers.
	OntologyFile string `json:"ontologyFile"`

	// If non-nil, the configuration for distributed tracing (OpenTracing). If
	// nil, the server will not collect traces.
	Tracing *Tracing `json:"tracing,omitempty"`

	// Configuration for API servers. Ignored for other processes.
	API *API `json:"api,omitempty"`

	// If non-nil, tuning knobs for the reasoning engine. If nil, the engine
	// runs with its built-in defaults.
	Reasoning *Reasoning `json:"reasoning,omitempty"`
}

// A Locator specifies how to find endpoints to communicate with. For this
// purpose, an endpoint is a particular port on a server or service.
type Locator struct {
	// Must be "static" (for now).
	Type string `json:"type"`

	// Required for static locators; ignored otherwise. The host:port endpoints
	// that the locator will return. These are assumed to be TCP ports.
	Addresses []string `json:"addresses,omitempty"`
}

// Tracing contains configuration related to distributed execution tracing.
type Tracing struct {
	// Must be "jaeger" (for now).
	Type string `json:"type"`

	// Endpoints that accept jaeger.thrift over HTTP directly from clients.
	Locator Locator `json:"locator"`
}

// API contains configuration specific to the API servers.
type API struct {
	// The host:port or :port on which to serve HTTP requests. Required.
	HTTPAddress string `json:"httpAddress"`

	// If non-empty, the host:port or :port on which to serve Prometheus metrics
	// over HTTP. If empty (or unset), the metrics will not be served.
	MetricsAddress string `json:"metricsAddress,omitempty"`
}

// Reasoning contains tuning knobs for the reasoning engine. Every field is
// optional; a zero value selects the engine's built-in default.
type Reasoning struct {
	// The maximum number of nodes a single satisfiability check may create
	// before it gives up and reports an aborted verdict.
	MaxNodes int `json:"maxNodes,omitempty"`

	// If true, satisfiability checks skip the blocking test that guarantees
	// termination on cyclic ontologies. Only useful for experiments.
	DisableBlocking bool `json:"disableBlocking,omitempty"`

	// If true, union alternatives are tried simplest-first rather than in
	// declaration order.
	HeuristicUnionOrder bool `json:"heuristicUnionOrder,omitempty"`

	// The batch size at which subsumption checks fan out across workers.
	ParallelThreshold int `json:"parallelThreshold,omitempty"`

	// The number of goroutines used for fanned-out checks. Zero means the
	// number of CPUs.
	Workers int `json:"workers,omitempty"`

	// The maximum number of passes a forward-chaining run may take to reach
	// its fixed-point.
	MaxIterations int `json:"maxIterations,omitempty"`

	// The maximum number of derivations per rule tier per pass during forward
	// chaining.
	TierCap int `json:"tierCap,omitempty"`

	// The maximum number of verdicts the result cache will hold.
	CacheEntries int `json:"cacheEntries,omitempty"`
}
