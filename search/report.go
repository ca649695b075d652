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
	"synsearch/depgraph"

	"github.com/bytedance/sonic"
)

const (
	SkipReasonMalformed = "malformedSentence"
	SkipReasonCyclic    = "cyclicDependency"
)

// SentenceMatches maps sentence indexes (starting from zero)
// to trees of matches found in respective sentences.
type SentenceMatches map[int][]*depgraph.TreeNode

// SkippedSentence identifies a sentence which could not be searched.
type SkippedSentence struct {
	ArticleID int    `json:"articleId"`
	Sentence  int    `json:"sentence"`
	Kind      string `json:"kind"`
	Reason    string `json:"reason"`
}

// MatchReport is a result of a pattern search over a set of documents.
// Only articles (and sentences) with at least one match are present.
type MatchReport struct {
	Pattern  depgraph.Pattern        `json:"pattern"`
	Articles map[int]SentenceMatches `json:"articles"`
	Skipped  []SkippedSentence       `json:"skipped"`
}

// Get returns matches found in a specific sentence of an article
func (r *MatchReport) Get(articleID, sentence int) []*depgraph.TreeNode {
	art, ok := r.Articles[articleID]
	if !ok {
		return nil
	}
	return art[sentence]
}

func (r *MatchReport) NumMatches() int {
	var ans int
	for _, art := range r.Articles {
		for _, m := range art {
			ans += len(m)
		}
	}
	return ans
}

// ToJSON encodes the report with map keys sorted so repeated
// encoding of the same report produces identical output.
func (r *MatchReport) ToJSON() ([]byte, error) {
	return sonic.ConfigStd.Marshal(r)
}

func newMatchReport(pattern depgraph.Pattern) *MatchReport {
	return &MatchReport{
		Pattern:  pattern,
		Articles: make(map[int]SentenceMatches),
		Skipped:  []SkippedSentence{},
	}
}
