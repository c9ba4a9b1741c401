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
	_ "net/http/pprof" // enable pprof endpoints
	"time"

	"github.com/ebay/kanaga/config"
	"github.com/ebay/kanaga/owl"
	"github.com/ebay/kanaga/reason"
	"github.com/ebay/kanaga/reason/cache"
	"github.com/ebay/kanaga/reason/rules"
	"github.com/ebay/kanaga/reason/tableaux"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// New returns a new instance of the API server, which exposes the reasoning
// engine over HTTP for consumers of the Kanaga system to use. The returned
// Server instance will not start handling traffic until a subsequent call to
// Server.Run()
func New(cfg *config.Kanaga, ontology *owl.Ontology) *Server {
	s := &Server{
		cfg:      cfg,
		ontology: ontology,
	}
	s.engine = reason.New(ontology, reasonOptions(cfg.Reasoning))
	return s
}

// Server is an implementation of the external HTTP interface to Kanaga
type Server struct {
	cfg      *config.Kanaga
	ontology *owl.Ontology
	engine   *reason.Engine
}

// reasonOptions expands the optional config section into engine options. A
// nil section selects the engine's built-in defaults.
func reasonOptions(cfg *config.Reasoning) reason.Options {
	if cfg == nil {
		return reason.Options{}
	}
	return reason.Options{
		Tableaux: tableaux.Options{
			MaxNodes:            cfg.MaxNodes,
			DisableBlocking:     cfg.DisableBlocking,
			HeuristicUnionOrder: cfg.HeuristicUnionOrder,
		},
		Cache: cache.Options{
			MaxEntries: cfg.CacheEntries,
		},
		Rules: rules.Options{
			MaxIterations: cfg.MaxIterations,
			TierCap:       cfg.TierCap,
		},
		ParallelThreshold: cfg.ParallelThreshold,
		Workers:           cfg.Workers,
	}
}

// Run will start listening for HTTP requests.
// This function will block until the server is shutdown.
func (s *Server) Run() error {
	s.startMetricsServer()

	m := httprouter.New()

	m.GET("/v1/consistent", s.consistent)
	m.POST("/v1/subclassof", s.subClassOf)
	m.POST("/v1/satisfiable", s.satisfiable)
	m.GET("/v1/classify", s.classify)
	m.GET("/v1/instances/:iri", s.instances)
	m.POST("/v1/infer", s.infer)
	m.GET("/v1/facts", s.facts)
	m.GET("/v1/stats", s.stats)
	m.GET("/v1/stats.txt", s.statsTable)

	m.POST("/profile", s.profile)
	m.POST("/logLevel", s.setLogLevel)

	m.NotFound = http.DefaultServeMux
	logger := func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("[API] %v %v", r.Method, r.URL)
		start := time.Now()
		m.ServeHTTP(w, r)
		metrics.requestDurationSeconds.Observe(time.Since(start).Seconds())
	}
	return http.ListenAndServe(s.cfg.API.HTTPAddress, http.HandlerFunc(logger))
}

func (s *Server) startMetricsServer() {
	if s.cfg.API.MetricsAddress == "" {
		log.Warnf("Cannot start HTTP server for metrics as 'metricsAddress' configuration not set")
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	log.Infof("Starting HTTP server for metrics on %v", s.cfg.API.MetricsAddress)
	go func() {
		err := http.ListenAndServe(s.cfg.API.MetricsAddress, nil)
		if err != nil {
			log.WithError(err).Panic("Failed to start HTTP server for Prometheus endpoint")
		}
	}()
}
