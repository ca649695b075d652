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
	"time"

	"synsearch/analyzer"
	"synsearch/corpus"
	"synsearch/document"

	"github.com/czcorpus/cnc-gokit/fs"
)

type cachedDoc struct {
	doc   *document.Document
	mtime time.Time
}

// DocCache keeps deserialized article annotations in memory.
// An entry is valid as long as the modification time of the
// respective CoNLL-U file does not change.
type DocCache struct {
	data map[int]cachedDoc
}

func (dc *DocCache) Get(article *corpus.Article) (*document.Document, bool) {
	v, ok := dc.data[article.ID]
	if !ok {
		return nil, false
	}
	mtime, err := fs.GetFileMtime(article.CoNLLUPath())
	if err != nil || !mtime.Equal(v.mtime) {
		delete(dc.data, article.ID)
		return nil, false
	}
	return v.doc, true
}

func (dc *DocCache) Set(article *corpus.Article, doc *document.Document) {
	mtime, err := fs.GetFileMtime(article.CoNLLUPath())
	if err != nil {
		return
	}
	dc.data[article.ID] = cachedDoc{doc: doc, mtime: mtime}
}

func (dc *DocCache) Len() int {
	return len(dc.data)
}

func NewDocCache() *DocCache {
	return &DocCache{
		data: make(map[int]cachedDoc),
	}
}

// ---------

// cachingAnalyzer wraps an analyzer and reuses already
// deserialized annotations
type cachingAnalyzer struct {
	analyzer.Analyzer
	cache *DocCache
}

func (a *cachingAnalyzer) Deserialize(article *corpus.Article) (*document.Document, error) {
	if doc, ok := a.cache.Get(article); ok {
		return doc, nil
	}
	doc, err := a.Analyzer.Deserialize(article)
	if err != nil {
		return nil, err
	}
	a.cache.Set(article, doc)
	return doc, nil
}

func (a *cachingAnalyzer) Serialize(article *corpus.Article) error {
	if err := a.Analyzer.Serialize(article); err != nil {
		return err
	}
	a.cache.Set(article, article.Annotation)
	return nil
}

// NewCachingAnalyzer adds in-memory caching of annotations to an analyzer
func NewCachingAnalyzer(anl analyzer.Analyzer, cache *DocCache) analyzer.Analyzer {
	return &cachingAnalyzer{
		Analyzer: anl,
		cache:    cache,
	}
}
