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

// Command kanaga-api runs a Kanaga API server daemon.
package main

import (
	"flag"
	"io/ioutil"
	"os"

	api "github.com/ebay/kanaga/api/impl"
	"github.com/ebay/kanaga/config"
	"github.com/ebay/kanaga/owl/parser"
	"github.com/ebay/kanaga/util/debuglog"
	"github.com/ebay/kanaga/util/signals"
	"github.com/ebay/kanaga/util/tracing"
	log "github.com/sirupsen/logrus"
)

func main() {
	debuglog.Configure(debuglog.Options{})
	cfgFile := flag.String("cfg", "config.json", "config file")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}
	if cfg.API == nil {
		log.Fatal("api field missing in config")
	}
	if cfg.OntologyFile == "" {
		log.Fatal("ontologyFile field missing in config")
	}
	log.Infof("Using config: %+v", cfg)

	tracer, err := tracing.New("kanaga-api", cfg.Tracing)
	if err != nil {
		log.Fatalf("Unable to initialize distributed tracing: %v", err)
	}
	defer tracer.Close()

	src, err := ioutil.ReadFile(cfg.OntologyFile)
	if err != nil {
		log.Fatalf("Unable to read ontology file: %v", err)
	}
	ontology, err := parser.ParseOntology(string(src))
	if err != nil {
		log.Fatalf("Unable to parse ontology %v: %v", cfg.OntologyFile, err)
	}

	apiServer := api.New(cfg, ontology)
	go func() {
		log.Infof("Server::Run returned %v", apiServer.Run())
		os.Exit(-1)
	}()

	signals.WaitForQuit()
	log.Info("Kanaga API server exiting")
}
