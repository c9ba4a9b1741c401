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

// Command kc provides command line access to the Kanaga HTTP API
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	docopt "github.com/docopt/docopt-go"
	"github.com/ebay/kanaga/config"
	"github.com/ebay/kanaga/util/debuglog"
	"github.com/ebay/kanaga/util/tracing"
	opentracing "github.com/opentracing/opentracing-go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var fmtr = message.NewPrinter(language.English)

const usage = `kanaga-client is a command-line tool for calling the Kanaga API service.

Usage:
  kanaga-client [--api=HOST -t=DUR --trace=HOST] consistent
  kanaga-client [--api=HOST -t=DUR --trace=HOST] satisfiable EXPR
  kanaga-client [--api=HOST -t=DUR --trace=HOST] subclassof SUB SUP
  kanaga-client [--api=HOST -t=DUR --trace=HOST] classify [--graph=FILE]
  kanaga-client [--api=HOST -t=DUR --trace=HOST] instances CLASS
  kanaga-client [--api=HOST -t=DUR --trace=HOST] infer
  kanaga-client [--api=HOST -t=DUR --trace=HOST] facts
  kanaga-client [--api=HOST -t=DUR --trace=HOST] stats
  kanaga-client [--api=HOST -t=DUR --trace=HOST] bench [-n=NUM -w=NUM]

Options:
  --api=HOST               Host and port of Kanaga API server to connect to [default: localhost:9988]
  -t=DUR, --timeout=DUR    Timeout for calls to the Kanaga API server [default: 10s]
  --trace=HOST             Send OpenTracing traces to this collector.
  --graph=FILE             Render the class hierarchy with Graphviz into FILE (.pdf, .png, or .svg).
  -n=NUM, --num=NUM        Number of subsumption checks to run [default: 1000]
  -w=NUM, --workers=NUM    Number of concurrent requests to make [default: 4]

Examples:
  # Check that the loaded ontology is consistent.
  kanaga-client consistent

  # Check whether a class expression can have members.
  kanaga-client satisfiable "student and not person"

  # Ask whether one class subsumes another.
  kanaga-client subclassof gradStudent person

  # Compute the class hierarchy and render it as a diagram.
  kanaga-client classify --graph=hierarchy.pdf

  # Materialize rule entailments, then dump the resulting facts.
  kanaga-client infer
  kanaga-client facts
`

type options struct {
	Server string `docopt:"--api"`
	// Timeout is never zero; it's set to 1 hour if the user passes 0s.
	Timeout          time.Duration
	TimeoutString    string `docopt:"--timeout"`
	TracingCollector string `docopt:"--trace"`

	Consistent bool

	Satisfiable bool
	Expr        string `docopt:"EXPR"`

	SubClassOf bool   `docopt:"subclassof"`
	Sub        string `docopt:"SUB"`
	Sup        string `docopt:"SUP"`

	Classify  bool
	GraphFile string `docopt:"--graph"`

	Instances bool
	Class     string `docopt:"CLASS"`

	Infer bool
	Facts bool
	Stats bool

	Bench   bool
	Num     int `docopt:"--num"`
	Workers int `docopt:"--workers"`
}

func parseArgs() *options {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Error parsing command-line arguments: %v", err)
	}
	var options options
	err = opts.Bind(&options)
	if err != nil {
		log.Fatalf("Error binding command-line arguments: %v\nfrom: %+v", err, opts)
	}
	if options.TimeoutString != "" {
		options.Timeout, err = time.ParseDuration(options.TimeoutString)
		if err != nil {
			log.Fatalf("Unable to parse timeout value: %v", err)
		}
	}
	if options.Timeout == 0 {
		options.Timeout = time.Hour
	}
	return &options
}

func main() {
	debuglog.Configure(debuglog.Options{})
	options := parseArgs()
	ctx := context.Background()

	if options.TracingCollector != "" {
		tracer, err := tracing.New("kanaga-client", &config.Tracing{
			Type: "jaeger",
			Locator: config.Locator{
				Type:      "static",
				Addresses: []string{options.TracingCollector},
			},
		})
		if err != nil {
			log.WithError(err).Warn("Could not initialize OpenTracing tracer")
		} else {
			defer tracer.Close()
		}
	}
	span, ctx := opentracing.StartSpanFromContext(ctx, "kanaga-client run")
	defer span.Finish()

	client := newClient(options)
	fmt.Println()

	switch {
	case options.Consistent:
		if err := consistent(client); err != nil {
			log.Fatalf("Error executing consistent: %v", err)
		}
	case options.Satisfiable:
		if err := satisfiable(client, options); err != nil {
			log.Fatalf("Error executing satisfiable: %v", err)
		}
	case options.SubClassOf:
		if err := subClassOf(client, options); err != nil {
			log.Fatalf("Error executing subclassof: %v", err)
		}
	case options.Classify:
		if err := classify(client, options); err != nil {
			log.Fatalf("Error executing classify: %v", err)
		}
	case options.Instances:
		if err := instances(client, options); err != nil {
			log.Fatalf("Error executing instances: %v", err)
		}
	case options.Infer:
		if err := infer(client); err != nil {
			log.Fatalf("Error executing infer: %v", err)
		}
	case options.Facts:
		if err := dumpFacts(client); err != nil {
			log.Fatalf("Error executing facts: %v", err)
		}
	case options.Stats:
		if err := stats(client); err != nil {
			log.Fatalf("Error executing stats: %v", err)
		}
	case options.Bench:
		if err := bench(ctx, client, options); err != nil {
			log.Fatalf("Error executing bench: %v", err)
		}
	default:
		log.Fatalf("command not implemented")
	}
}

// client calls the HTTP endpoints of a Kanaga API server.
type client struct {
	http *http.Client
	base string
}

func newClient(options *options) *client {
	return &client{
		http: &http.Client{Timeout: options.Timeout},
		base: "http://" + options.Server,
	}
}

func (c *client) get(path string, out interface{}) error {
	res, err := c.http.Get(c.base + path)
	if err != nil {
		return err
	}
	return decodeJSON(res, out)
}

func (c *client) getText(path string) (string, error) {
	res, err := c.http.Get(c.base + path)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned %v: %s", res.Status, strings.TrimSpace(string(body)))
	}
	return string(body), nil
}

func (c *client) postForm(path string, form url.Values, out interface{}) error {
	res, err := c.http.PostForm(c.base+path, form)
	if err != nil {
		return err
	}
	return decodeJSON(res, out)
}

func decodeJSON(res *http.Response, out interface{}) error {
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		body, _ := ioutil.ReadAll(res.Body)
		return fmt.Errorf("server returned %v: %s", res.Status, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(res.Body).Decode(out)
}
