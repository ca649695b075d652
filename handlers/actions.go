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
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"synsearch/depgraph"
	"synsearch/merror"
	"synsearch/rdb"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type articlesResponse struct {
	Annotated   []int `json:"annotated"`
	NumArticles int   `json:"numArticles"`
}

func parseArticleID(v string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || id < 1 {
		return 0, merror.InputError{Msg: fmt.Sprintf("invalid article ID `%s`", v)}
	}
	return id, nil
}

// Articles lists IDs of articles with an annotation available
func (a *Actions) Articles(ctx *gin.Context) {
	ans := articlesResponse{
		Annotated:   []int{},
		NumArticles: a.manager.NumArticles(),
	}
	for _, art := range a.manager.Articles() {
		if fs.PathExists(art.CoNLLUPath()) {
			ans.Annotated = append(ans.Annotated, art.ID)
		}
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// POSFreqs returns a frequency distribution of parts of speech
// within a single article.
func (a *Actions) POSFreqs(ctx *gin.Context) {
	art, ok := a.getArticleOrFail(ctx)
	if !ok {
		return
	}
	query, err := rdb.NewQuery(rdb.FuncPOSFreqs, rdb.POSFreqsArgs{ArticleID: art.ID})
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	result, ok := a.publishAndWait(ctx, query, false)
	if !ok {
		return
	}
	uniresp.WriteRawJSONResponse(ctx.Writer, result.Value)
}

// PatternSearch searches annotated articles for occurrences
// of a syntactic pattern specified by `root`, `rel` and `child`
// arguments. Optionally, the search can be limited to articles
// specified via (repeated) `article` argument.
func (a *Actions) PatternSearch(ctx *gin.Context) {
	pattern := depgraph.Pattern{
		RootPos:  ctx.Query("root"),
		Rel:      ctx.Query("rel"),
		ChildPos: ctx.Query("child"),
	}
	if err := pattern.Validate(); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	args := rdb.PatternSearchArgs{Pattern: pattern}
	for _, v := range ctx.QueryArray("article") {
		id, err := parseArticleID(v)
		if err != nil {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
			return
		}
		if _, ok := a.manager.Article(id); !ok {
			uniresp.RespondWithErrorJSON(
				ctx, fmt.Errorf("article %d not found", id), http.StatusNotFound)
			return
		}
		args.ArticleIDs = append(args.ArticleIDs, id)
	}
	query, err := rdb.NewQuery(rdb.FuncPatternSearch, args)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	result, ok := a.publishAndWait(ctx, query, true)
	if !ok {
		return
	}
	uniresp.WriteRawJSONResponse(ctx.Writer, result.Value)
}

// Analyze (re)runs the analyzer for a single article
func (a *Actions) Analyze(ctx *gin.Context) {
	art, ok := a.getArticleOrFail(ctx)
	if !ok {
		return
	}
	query, err := rdb.NewQuery(rdb.FuncAnalyze, rdb.AnalyzeArgs{ArticleID: art.ID})
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	result, ok := a.publishAndWait(ctx, query, false)
	if !ok {
		return
	}
	uniresp.WriteRawJSONResponse(ctx.Writer, result.Value)
}
