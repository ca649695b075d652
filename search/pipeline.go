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

package search

import (
	"context"
	"errors"

	"synsearch/depgraph"
	"synsearch/document"
	"synsearch/merror"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type docResult struct {
	articleID int
	matches   SentenceMatches
	skipped   []SkippedSentence
}

// Searcher runs pattern search over annotated documents.
// It holds no state between individual runs.
type Searcher struct {
	numWorkers int
}

func searchSentence(sent document.Sentence, pattern depgraph.Pattern) ([]*depgraph.TreeNode, error) {
	graph, err := depgraph.Build(sent)
	if err != nil {
		return nil, err
	}
	found := depgraph.Find(graph, pattern)
	ans := make([]*depgraph.TreeNode, 0, len(found))
	for _, m := range found {
		tree, err := depgraph.Materialize(graph, sent, m.RootID)
		if err != nil {
			return nil, err
		}
		ans = append(ans, tree)
	}
	return ans, nil
}

func skipKind(err error) (string, bool) {
	var mErr merror.MalformedSentenceError
	if errors.As(err, &mErr) {
		return SkipReasonMalformed, true
	}
	var cErr merror.CyclicDependencyError
	if errors.As(err, &cErr) {
		return SkipReasonCyclic, true
	}
	return "", false
}

func searchDocument(
	ctx context.Context,
	doc *document.Document,
	pattern depgraph.Pattern,
) (docResult, error) {
	ans := docResult{
		articleID: doc.ArticleID,
		matches:   make(SentenceMatches),
	}
	for i, sent := range doc.Sentences {
		if err := ctx.Err(); err != nil {
			return ans, err
		}
		trees, err := searchSentence(sent, pattern)
		if err != nil {
			kind, ok := skipKind(err)
			if !ok {
				return ans, err
			}
			log.Warn().
				Err(err).
				Int("articleId", doc.ArticleID).
				Int("sentence", i).
				Msg("skipping sentence")
			ans.skipped = append(
				ans.skipped,
				SkippedSentence{
					ArticleID: doc.ArticleID,
					Sentence:  i,
					Kind:      kind,
					Reason:    err.Error(),
				},
			)
			continue
		}
		if len(trees) > 0 {
			ans.matches[i] = trees
		}
	}
	return ans, nil
}

// Run searches all the sentences of all the documents for the pattern.
// Malformed sentences are skipped and listed in the report. An invalid
// pattern is reported (as merror.InputError) before any processing starts.
func (s *Searcher) Run(
	ctx context.Context,
	docs []*document.Document,
	pattern depgraph.Pattern,
) (*MatchReport, error) {
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	partial := make([]docResult, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.numWorkers)
	for i, doc := range docs {
		if doc == nil {
			continue
		}
		g.Go(func() error {
			res, err := searchDocument(gctx, doc, pattern)
			if err != nil {
				return err
			}
			partial[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ans := newMatchReport(pattern)
	for _, res := range partial {
		ans.Skipped = append(ans.Skipped, res.skipped...)
		if len(res.matches) == 0 {
			continue
		}
		art, ok := ans.Articles[res.articleID]
		if !ok {
			ans.Articles[res.articleID] = res.matches
			continue
		}
		for sentIdx, trees := range res.matches {
			art[sentIdx] = append(art[sentIdx], trees...)
		}
	}
	log.Debug().
		Str("pattern", pattern.String()).
		Int("numDocs", len(docs)).
		Int("numMatches", ans.NumMatches()).
		Int("numSkipped", len(ans.Skipped)).
		Msg("pattern search finished")
	return ans, nil
}

func NewSearcher(conf *Conf) *Searcher {
	numWorkers := DfltNumWorkers
	if conf != nil && conf.NumWorkers > 0 {
		numWorkers = conf.NumWorkers
	}
	return &Searcher{numWorkers: numWorkers}
}
