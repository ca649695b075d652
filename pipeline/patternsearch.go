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

package pipeline

import (
	"context"

	"synsearch/analyzer"
	"synsearch/corpus"
	"synsearch/depgraph"
	"synsearch/search"

	"github.com/rs/zerolog/log"
)

// PatternSearch searches annotated articles for a syntactic pattern.
type PatternSearch struct {
	manager     *corpus.Manager
	analyzer    analyzer.Analyzer
	searcher    *search.Searcher
	maxArticles int
}

// Run searches articles with the provided IDs (or all the articles).
// In case storeResults is true, each article's matches are written
// to its meta file.
func (p *PatternSearch) Run(
	ctx context.Context,
	pattern depgraph.Pattern,
	ids []int,
	storeResults bool,
) (*search.MatchReport, error) {
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	articles, err := SelectArticles(p.manager, ids, p.maxArticles)
	if err != nil {
		return nil, err
	}
	docs, err := LoadDocuments(p.analyzer, articles)
	if err != nil {
		return nil, err
	}
	report, err := p.searcher.Run(ctx, docs, pattern)
	if err != nil {
		return nil, err
	}
	if !storeResults {
		return report, nil
	}
	for _, art := range articles {
		matches, ok := report.Articles[art.ID]
		if !ok {
			matches = search.SentenceMatches{}
		}
		if err := art.UpdateMeta(corpus.MetaKeyPatternMatches, matches); err != nil {
			return nil, err
		}
	}
	log.Info().
		Str("pattern", pattern.String()).
		Int("numArticles", len(articles)).
		Msg("stored pattern matches")
	return report, nil
}

func NewPatternSearch(
	manager *corpus.Manager,
	anl analyzer.Analyzer,
	searcher *search.Searcher,
	maxArticles int,
) *PatternSearch {
	return &PatternSearch{
		manager:     manager,
		analyzer:    anl,
		searcher:    searcher,
		maxArticles: maxArticles,
	}
}
