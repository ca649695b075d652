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
	"synsearch/analyzer"
	"synsearch/corpus"
	"synsearch/freqs"

	"github.com/rs/zerolog/log"
)

// POSFrequency counts parts of speech in annotated articles
// and stores the counts into the articles' meta files.
type POSFrequency struct {
	manager  *corpus.Manager
	analyzer analyzer.Analyzer
}

// Run processes the articles with the provided IDs (or all the articles
// in case no ID is specified) and returns their POS counts.
func (p *POSFrequency) Run(ids []int) (map[int]map[string]int, error) {
	articles, err := SelectArticles(p.manager, ids, 0)
	if err != nil {
		return nil, err
	}
	ans := make(map[int]map[string]int, len(articles))
	for _, art := range articles {
		doc, err := p.analyzer.Deserialize(art)
		if err != nil {
			return nil, err
		}
		counts := freqs.Count(doc)
		if err := art.UpdateMeta(corpus.MetaKeyPOSFrequencies, counts); err != nil {
			return nil, err
		}
		ans[art.ID] = counts
		log.Debug().
			Int("articleId", art.ID).
			Int("numTags", len(counts)).
			Msg("stored POS frequencies")
	}
	return ans, nil
}

func NewPOSFrequency(manager *corpus.Manager, anl analyzer.Analyzer) *POSFrequency {
	return &POSFrequency{
		manager:  manager,
		analyzer: anl,
	}
}
