// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SYNSEARCH.
//
//  SYNSEARCH is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SYNSEARCH is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SYNSEARCH.  If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"synsearch/corpus"
	"synsearch/rdb"
	"synsearch/results"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	queries   []rdb.Query
	numCached int
	result    results.SerializableResult
	userError bool
	noAnswer  bool
}

func (p *fakePublisher) PublishQuery(query rdb.Query) (<-chan *rdb.WorkerResult, error) {
	p.queries = append(p.queries, query)
	ans := make(chan *rdb.WorkerResult, 1)
	if !p.noAnswer {
		wr, err := rdb.CreateWorkerResult(p.result, p.userError)
		if err != nil {
			return nil, err
		}
		ans <- wr
	}
	close(ans)
	return ans, nil
}

func (p *fakePublisher) CacheResult(
	fn func(rdb.Query) (<-chan *rdb.WorkerResult, error),
	query rdb.Query,
) (<-chan *rdb.WorkerResult, error) {
	p.numCached++
	return fn(query)
}

func newTestEngine(t *testing.T, pub *fakePublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	for i := 1; i <= 2; i++ {
		id := strconv.Itoa(i)
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, id+corpus.RawFileSuffix), []byte("The cat sleeps."), 0644))
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, id+corpus.MetaFileSuffix), []byte(`{}`), 0644))
	}
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "2"+corpus.CoNLLUFileSuffix), []byte("\n"), 0644))
	manager, err := corpus.NewManager(dir)
	require.NoError(t, err)

	actions := NewActions(manager, pub)
	engine := gin.New()
	engine.GET("/articles", actions.Articles)
	engine.GET("/pos-freqs/:articleId", actions.POSFreqs)
	engine.GET("/pattern-search", actions.PatternSearch)
	engine.POST("/tools/analyze/:articleId", actions.Analyze)
	return engine
}

func doRequest(engine *gin.Engine, method, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestArticles(t *testing.T) {
	engine := newTestEngine(t, &fakePublisher{})
	w := doRequest(engine, http.MethodGet, "/articles")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"annotated": [2], "numArticles": 2}`, w.Body.String())
}

func TestPatternSearch(t *testing.T) {
	pub := &fakePublisher{result: &results.PatternSearch{}}
	engine := newTestEngine(t, pub)
	w := doRequest(engine, http.MethodGet, "/pattern-search?root=VERB&rel=nsubj&child=NOUN&article=2")
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, pub.queries, 1)
	assert.Equal(t, 1, pub.numCached)
	assert.Equal(t, rdb.FuncPatternSearch, pub.queries[0].Func)

	var args rdb.PatternSearchArgs
	require.NoError(t, json.Unmarshal(pub.queries[0].Args, &args))
	assert.Equal(t, "VERB,nsubj,NOUN", args.Pattern.String())
	assert.Equal(t, []int{2}, args.ArticleIDs)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "patternSearch", resp["resultType"])
}

func TestPatternSearchIncompletePattern(t *testing.T) {
	pub := &fakePublisher{result: &results.PatternSearch{}}
	engine := newTestEngine(t, pub)
	w := doRequest(engine, http.MethodGet, "/pattern-search?root=VERB&child=NOUN")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, pub.queries)
}

func TestPatternSearchInvalidArticle(t *testing.T) {
	pub := &fakePublisher{result: &results.PatternSearch{}}
	engine := newTestEngine(t, pub)
	w := doRequest(engine, http.MethodGet, "/pattern-search?root=VERB&rel=nsubj&child=NOUN&article=x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doRequest(engine, http.MethodGet, "/pattern-search?root=VERB&rel=nsubj&child=NOUN&article=9")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, pub.queries)
}

func TestPatternSearchTimeout(t *testing.T) {
	pub := &fakePublisher{noAnswer: true}
	engine := newTestEngine(t, pub)
	w := doRequest(engine, http.MethodGet, "/pattern-search?root=VERB&rel=nsubj&child=NOUN")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestPOSFreqs(t *testing.T) {
	pub := &fakePublisher{result: &results.POSFreqs{ArticleID: 1, NumTokens: 3}}
	engine := newTestEngine(t, pub)
	w := doRequest(engine, http.MethodGet, "/pos-freqs/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(
		t,
		`{"articleId": 1, "numTokens": 3, "freqs": [], "resultType": "posFreqs"}`,
		w.Body.String(),
	)
	assert.Equal(t, 0, pub.numCached)
}

func TestPOSFreqsUnknownArticle(t *testing.T) {
	pub := &fakePublisher{result: &results.POSFreqs{}}
	engine := newTestEngine(t, pub)
	w := doRequest(engine, http.MethodGet, "/pos-freqs/5")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(engine, http.MethodGet, "/pos-freqs/0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, pub.queries)
}

func TestPOSFreqsWorkerErrors(t *testing.T) {
	pub := &fakePublisher{
		result:    &results.POSFreqs{ArticleID: 1, Error: errors.New("not annotated")},
		userError: true,
	}
	engine := newTestEngine(t, pub)
	w := doRequest(engine, http.MethodGet, "/pos-freqs/1")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	pub.userError = false
	w = doRequest(engine, http.MethodGet, "/pos-freqs/1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAnalyze(t *testing.T) {
	pub := &fakePublisher{result: &results.Analyze{ArticleID: 1, NumSentences: 1, NumTokens: 3}}
	engine := newTestEngine(t, pub)
	w := doRequest(engine, http.MethodPost, "/tools/analyze/1")
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, pub.queries, 1)
	assert.Equal(t, rdb.FuncAnalyze, pub.queries[0].Func)
}
