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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ebay/kanaga/api"
	"github.com/ebay/kanaga/config"
	"github.com/ebay/kanaga/owl"
	"github.com/ebay/kanaga/owl/parser"
	"github.com/ebay/kanaga/reason/classify"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const academicSrc = `# A small academic ontology for handler tests.
Class: student
    SubClassOf: person

Class: gradStudent
    SubClassOf: student

Class: robot
    DisjointWith: person

Individual: ada
    Types: gradStudent
`

func testServer(t *testing.T) *Server {
	ontology, err := parser.ParseOntology(academicSrc)
	require.NoError(t, err)
	cfg := &config.Kanaga{
		OntologyFile: "academic.owl",
		API:          &config.API{HTTPAddress: ":0"},
	}
	return New(cfg, ontology)
}

func get(h httprouter.Handle, target string, p httprouter.Params) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil), p)
	return rec
}

func postForm(h httprouter.Handle, target string, form url.Values) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h(rec, req, nil)
	return rec
}

func Test_Consistent(t *testing.T) {
	assert := assert.New(t)
	s := testServer(t)
	rec := get(s.consistent, "/v1/consistent", nil)
	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal("application/json", rec.Header().Get("Content-Type"))
	var res api.ConsistentResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(res.Consistent)
}

func Test_SubClassOf(t *testing.T) {
	assert := assert.New(t)
	s := testServer(t)
	rec := postForm(s.subClassOf, "/v1/subclassof", url.Values{
		"sub": {"gradStudent", "robot"},
		"sup": {"person", "person"},
	})
	assert.Equal(http.StatusOK, rec.Code)
	var res api.SubClassOfResults
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Results, 2)
	assert.Equal(api.SubClassOfResult{
		Sub: "gradStudent", Sup: "person", IsSubClassOf: true,
	}, res.Results[0])
	assert.Equal(api.SubClassOfResult{
		Sub: "robot", Sup: "person", IsSubClassOf: false,
	}, res.Results[1])
}

func Test_SubClassOf_BadParams(t *testing.T) {
	assert := assert.New(t)
	s := testServer(t)
	rec := postForm(s.subClassOf, "/v1/subclassof", url.Values{"sub": {"a"}})
	assert.Equal(http.StatusBadRequest, rec.Code)
	assert.Equal("Need matching 'sub' and 'sup' params, got 1 and 0\n", rec.Body.String())

	rec = postForm(s.subClassOf, "/v1/subclassof", url.Values{})
	assert.Equal(http.StatusBadRequest, rec.Code)
	assert.Equal("Need matching 'sub' and 'sup' params, got 0 and 0\n", rec.Body.String())
}

func Test_Satisfiable(t *testing.T) {
	assert := assert.New(t)
	s := testServer(t)
	rec := postForm(s.satisfiable, "/v1/satisfiable", url.Values{"expr": {"student"}})
	assert.Equal(http.StatusOK, rec.Code)
	var res api.SatisfiableResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(api.SatisfiableResult{Expr: "student", Result: "satisfiable"}, res)

	rec = postForm(s.satisfiable, "/v1/satisfiable", url.Values{"expr": {"student and not student"}})
	assert.Equal(http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(api.SatisfiableResult{Expr: "student and not student", Result: "unsatisfiable"}, res)
}

func Test_Satisfiable_BadExpr(t *testing.T) {
	assert := assert.New(t)
	s := testServer(t)
	rec := postForm(s.satisfiable, "/v1/satisfiable", url.Values{})
	assert.Equal(http.StatusBadRequest, rec.Code)
	assert.Equal("Form param 'expr' must be specified\n", rec.Body.String())

	rec = postForm(s.satisfiable, "/v1/satisfiable", url.Values{"expr": {"student and"}})
	assert.Equal(http.StatusBadRequest, rec.Code)
	assert.Contains(rec.Body.String(), "Unable to parse expression: parser: ")
}

func Test_Classify(t *testing.T) {
	assert := assert.New(t)
	s := testServer(t)
	rec := get(s.classify, "/v1/classify", nil)
	assert.Equal(http.StatusOK, rec.Code)
	var res api.ClassifyResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	byIRI := make(map[string]*classify.ClassInfo, len(res.Classes))
	for _, info := range res.Classes {
		byIRI[info.IRI] = info
	}
	require.Contains(t, byIRI, "gradStudent")
	assert.Equal([]string{"student"}, byIRI["gradStudent"].Parents)
	assert.True(byIRI["gradStudent"].Satisfiable)
	require.Contains(t, byIRI, owl.Thing)
	require.Contains(t, byIRI, owl.Nothing)
	assert.False(byIRI[owl.Nothing].Satisfiable)
}

func Test_Instances(t *testing.T) {
	assert := assert.New(t)
	s := testServer(t)
	params := httprouter.Params{{Key: "iri", Value: "person"}}
	rec := get(s.instances, "/v1/instances/person", params)
	assert.Equal(http.StatusOK, rec.Code)
	var res api.InstancesResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal("person", res.Class)
	assert.Equal([]string{"ada"}, res.Instances)

	params = httprouter.Params{{Key: "iri", Value: "robot"}}
	rec = get(s.instances, "/v1/instances/robot", params)
	assert.Equal(http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(res.Instances)
}

func Test_InferAndFacts(t *testing.T) {
	assert := assert.New(t)
	s := testServer(t)

	rec := get(s.facts, "/v1/facts", nil)
	assert.Equal(http.StatusOK, rec.Code)
	var before api.FactsResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &before))
	assert.False(before.Current)
	assert.Empty(before.Facts)

	rec = postForm(s.infer, "/v1/infer", url.Values{})
	assert.Equal(http.StatusOK, rec.Code)
	var applied api.InferResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &applied))
	assert.False(applied.Exhausted)
	assert.True(applied.Facts > 0)

	rec = get(s.facts, "/v1/facts", nil)
	var after api.FactsResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.True(after.Current)
	assert.Len(after.Facts, applied.Facts)
}

func Test_Stats(t *testing.T) {
	assert := assert.New(t)
	s := testServer(t)
	// The declared graph is silent on robot vs person, so this lands in the
	// tableaux engine and moves its counters.
	rec := postForm(s.subClassOf, "/v1/subclassof", url.Values{
		"sub": {"robot"},
		"sup": {"person"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(s.stats, "/v1/stats", nil)
	assert.Equal(http.StatusOK, rec.Code)
	var res api.StatsResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(res.Revision > 0)
	assert.True(res.Tableaux.Checks > 0)

	rec = get(s.statsTable, "/v1/stats.txt", nil)
	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal("text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(rec.Body.String(), "Ontology revision")
	assert.Contains(rec.Body.String(), "Tableaux checks")
}
