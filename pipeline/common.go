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

// Package pipeline runs corpus-wide operations: text cleaning
// and annotation, POS frequency counting and pattern search.
// Results are stored along with the articles.
package pipeline

import (
	"fmt"

	"synsearch/analyzer"
	"synsearch/corpus"
	"synsearch/document"
)

// SelectArticles returns articles with the provided IDs. In case
// no IDs are provided, all the corpus articles are returned (possibly
// limited to the first `limit` articles).
func SelectArticles(manager *corpus.Manager, ids []int, limit int) ([]*corpus.Article, error) {
	if len(ids) == 0 {
		ans := manager.Articles()
		if limit > 0 && len(ans) > limit {
			ans = ans[:limit]
		}
		return ans, nil
	}
	ans := make([]*corpus.Article, 0, len(ids))
	for _, id := range ids {
		art, ok := manager.Article(id)
		if !ok {
			return nil, ErrArticleNotFound{ID: id}
		}
		ans = append(ans, art)
	}
	return ans, nil
}

// LoadDocuments deserializes annotations of the articles.
func LoadDocuments(anl analyzer.Analyzer, articles []*corpus.Article) ([]*document.Document, error) {
	ans := make([]*document.Document, len(articles))
	for i, art := range articles {
		doc, err := anl.Deserialize(art)
		if err != nil {
			return nil, fmt.Errorf("failed to load annotated document: %w", err)
		}
		ans[i] = doc
	}
	return ans, nil
}

type ErrArticleNotFound struct {
	ID int
}

func (err ErrArticleNotFound) Error() string {
	return fmt.Sprintf("article %d not found", err.ID)
}
