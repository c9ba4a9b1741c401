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
	"time"

	"github.com/ebay/kanaga/util/profiling"
	"github.com/ebay/kanaga/util/table"
	"github.com/ebay/kanaga/util/web"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func (s *Server) profile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	dur, err := parseDuration(r, "d", nil)
	if err != nil {
		web.Write(w, err)
		return
	}
	err = profiling.CPUProfileForDuration("prof.cpu", dur)
	if err != nil {
		web.Write(w, err)
		return
	}
	time.Sleep(dur)
	web.Write(w, "Profiling Complete\n")
}

func (s *Server) setLogLevel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	levelName := r.URL.Query().Get("l")
	level, err := log.ParseLevel(levelName)
	if err != nil {
		web.WriteError(w, http.StatusBadRequest, "Unable to parse level name: %s, %v", levelName, err)
		return
	}
	log.SetLevel(level)
	w.WriteHeader(http.StatusNoContent)
}

// statsTable serves GET /v1/stats.txt, the same counters as /v1/stats but as
// a table for humans.
func (s *Server) statsTable(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats := s.engine.Stats()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	p := message.NewPrinter(language.English)
	st := [][]string{
		{"Counter", "Value"},
		{"Ontology revision", p.Sprintf("%d", stats.Revision)},
		{"Cache entries", p.Sprintf("%d", stats.Cache.Entries)},
		{"Cache hits", p.Sprintf("%d", stats.Cache.Hits)},
		{"Cache misses", p.Sprintf("%d", stats.Cache.Misses)},
		{"Cache evictions", p.Sprintf("%d", stats.Cache.Evictions)},
		{"Cache clears", p.Sprintf("%d", stats.Cache.Clears)},
		{"Cache hit rate", p.Sprintf("%.3f", stats.CacheHitRate)},
		{"Tableaux checks", p.Sprintf("%d", stats.Tableaux.Checks)},
		{"Tableaux nodes created", p.Sprintf("%d", stats.Tableaux.NodesCreated)},
		{"Tableaux rules applied", p.Sprintf("%d", stats.Tableaux.RulesApplied)},
		{"Tableaux backtracks", p.Sprintf("%d", stats.Tableaux.Backtracks)},
		{"Last classify took", stats.ClassifyDuration.Truncate(time.Microsecond).String()},
	}
	if stats.Chaining != nil {
		st = append(st,
			[]string{"Chaining facts", p.Sprintf("%d", stats.Chaining.Facts)},
			[]string{"Chaining firings", p.Sprintf("%d", len(stats.Chaining.Firings))},
			[]string{"Chaining iterations", p.Sprintf("%d", stats.Chaining.Iterations)},
		)
	}
	table.PrettyPrint(w, st, table.HeaderRow|table.RightJustify)
}
