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

package worker

import (
	"context"
	"errors"
	"os"

	"synsearch/corpus"
	"synsearch/freqs"
	"synsearch/merror"
	"synsearch/pipeline"
	"synsearch/rdb"
	"synsearch/results"
)

// isUserError tells whether an error is caused by invalid
// query arguments (and not by a failure of the worker)
func isUserError(err error) bool {
	var inpErr merror.InputError
	var nfErr pipeline.ErrArticleNotFound
	return errors.As(err, &inpErr) || errors.As(err, &nfErr) || errors.Is(err, os.ErrNotExist)
}

func (w *Worker) patternSearch(ctx context.Context, args rdb.PatternSearchArgs) *results.PatternSearch {
	report, err := w.searchPipeline.Run(ctx, args.Pattern, args.ArticleIDs, false)
	return &results.PatternSearch{Report: report, Error: err}
}

func (w *Worker) posFreqs(args rdb.POSFreqsArgs) *results.POSFreqs {
	ans := &results.POSFreqs{ArticleID: args.ArticleID}
	counts, err := w.freqsPipeline.Run([]int{args.ArticleID})
	if err != nil {
		ans.Error = err
		return ans
	}
	artCounts := counts[args.ArticleID]
	for _, v := range artCounts {
		ans.NumTokens += int64(v)
	}
	ans.Freqs = freqs.Distribution(artCounts)
	return ans
}

func (w *Worker) analyze(ctx context.Context, args rdb.AnalyzeArgs) *results.Analyze {
	ans := &results.Analyze{ArticleID: args.ArticleID}
	art, ok := w.manager.Article(args.ArticleID)
	if !ok {
		ans.Error = pipeline.ErrArticleNotFound{ID: args.ArticleID}
		return ans
	}
	articles := []*corpus.Article{art}
	if err := w.textPipeline.Clean(articles); err != nil {
		ans.Error = err
		return ans
	}
	if err := w.textPipeline.Annotate(ctx, articles); err != nil {
		ans.Error = err
		return ans
	}
	ans.NumSentences = len(art.Annotation.Sentences)
	ans.NumTokens = art.Annotation.NumTokens()
	return ans
}
