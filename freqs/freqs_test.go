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

package freqs

import (
	"testing"

	"synsearch/document"

	"github.com/stretchr/testify/assert"
)

func testDoc() *document.Document {
	return &document.Document{
		ArticleID: 1,
		Sentences: []document.Sentence{
			{Tokens: []document.Token{
				{ID: 1, Pos: "DET"}, {ID: 2, Pos: "NOUN"}, {ID: 3, Pos: "VERB"},
			}},
			{Tokens: []document.Token{
				{ID: 1, Pos: "NOUN"}, {ID: 2, Pos: "VERB"}, {ID: 3, Pos: "NOUN"},
			}},
		},
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, map[string]int{"DET": 1, "NOUN": 3, "VERB": 2}, Count(testDoc()))
}

func TestCountEmptyDoc(t *testing.T) {
	assert.Empty(t, Count(&document.Document{}))
}

func TestCountAll(t *testing.T) {
	ans := CountAll([]*document.Document{testDoc(), testDoc()})
	assert.Equal(t, map[string]int{"DET": 2, "NOUN": 6, "VERB": 4}, ans)
}

func TestDistribution(t *testing.T) {
	ans := Distribution(map[string]int{"VERB": 1, "NOUN": 2, "ADJ": 1})
	assert.Len(t, ans, 3)
	assert.Equal(t, "NOUN", ans[0].Pos)
	assert.Equal(t, int64(2), ans[0].Freq)
	assert.InDelta(t, 500000.0, ans[0].IPM, 0.1)
	assert.Equal(t, "ADJ", ans[1].Pos)
	assert.Equal(t, "VERB", ans[2].Pos)
}

func TestDistributionCut(t *testing.T) {
	ans := Distribution(map[string]int{"VERB": 1, "NOUN": 2, "ADJ": 1})
	assert.Len(t, ans.Cut(2), 2)
	assert.Len(t, ans.Cut(10), 3)
}
