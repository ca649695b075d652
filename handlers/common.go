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

	"synsearch/corpus"
	"synsearch/merror"
	"synsearch/rdb"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type queryPublisher interface {
	PublishQuery(query rdb.Query) (<-chan *rdb.WorkerResult, error)
	CacheResult(
		fn func(rdb.Query) (<-chan *rdb.WorkerResult, error),
		query rdb.Query,
	) (<-chan *rdb.WorkerResult, error)
}

type Actions struct {
	manager  *corpus.Manager
	radapter queryPublisher
}

func HandleWorkerError(ctx *gin.Context, result *rdb.WorkerResult) bool {
	if err := result.Err(); err != nil {
		if result.HasUserError {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer,
				uniresp.NewActionErrorFrom(err),
				http.StatusBadRequest,
			)

		} else {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer,
				uniresp.NewActionErrorFrom(err),
				http.StatusInternalServerError,
			)
		}
		return false
	}
	return true
}

// publishAndWait sends a query to workers and waits for its result.
// In case of any error, a proper HTTP response is written and
// false is returned.
func (a *Actions) publishAndWait(ctx *gin.Context, query rdb.Query, useCache bool) (*rdb.WorkerResult, bool) {
	var wait <-chan *rdb.WorkerResult
	var err error
	if useCache {
		wait, err = a.radapter.CacheResult(a.radapter.PublishQuery, query)

	} else {
		wait, err = a.radapter.PublishQuery(query)
	}
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return nil, false
	}
	result, ok := <-wait
	if !ok || result == nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			merror.TimeoutError{Msg: fmt.Sprintf("no result received for %s", query.Func)},
			http.StatusGatewayTimeout,
		)
		return nil, false
	}
	if !HandleWorkerError(ctx, result) {
		return nil, false
	}
	return result, true
}

func (a *Actions) getArticleOrFail(ctx *gin.Context) (*corpus.Article, bool) {
	id, err := parseArticleID(ctx.Param("articleId"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return nil, false
	}
	art, ok := a.manager.Article(id)
	if !ok {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("article %d not found", id), http.StatusNotFound)
		return nil, false
	}
	return art, true
}

func NewActions(manager *corpus.Manager, radapter queryPublisher) *Actions {
	return &Actions{
		manager:  manager,
		radapter: radapter,
	}
}
