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
	"sort"

	"synsearch/document"
)

// Count returns numbers of occurrences of individual
// parts of speech in all the tokens of a document.
func Count(doc *document.Document) map[string]int {
	ans := make(map[string]int)
	for _, sent := range doc.Sentences {
		for _, tok := range sent.Tokens {
			ans[tok.Pos]++
		}
	}
	return ans
}

// CountAll sums POS frequencies of multiple documents.
func CountAll(docs []*document.Document) map[string]int {
	ans := make(map[string]int)
	for _, doc := range docs {
		for pos, v := range Count(doc) {
			ans[pos] += v
		}
	}
	return ans
}

// POSFreqItem is a frequency of a single part of speech
// along with its relative frequency (instances per million tokens).
type POSFreqItem struct {
	Pos  string  `json:"pos"`
	Freq int64   `json:"freq"`
	IPM  float32 `json:"ipm"`
}

type POSFreqItemList []*POSFreqItem

// Cut makes the list at most maxItems long (i.e. in case
// the list is shorter, no error is triggered)
func (flist POSFreqItemList) Cut(maxItems int) POSFreqItemList {
	if len(flist) > maxItems {
		return flist[:maxItems]
	}
	return flist
}

// Distribution converts raw counts into a list sorted by frequency
// (descending). Items with the same frequency are sorted by their
// tag so the output is stable.
func Distribution(counts map[string]int) POSFreqItemList {
	var total int64
	for _, v := range counts {
		total += int64(v)
	}
	ans := make(POSFreqItemList, 0, len(counts))
	for pos, v := range counts {
		item := &POSFreqItem{Pos: pos, Freq: int64(v)}
		if total > 0 {
			item.IPM = float32(v) / float32(total) * 1e6
		}
		ans = append(ans, item)
	}
	sort.Slice(ans, func(i, j int) bool {
		if ans[i].Freq != ans[j].Freq {
			return ans[i].Freq > ans[j].Freq
		}
		return ans[i].Pos < ans[j].Pos
	})
	return ans
}
