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

// Package analyzer wraps external morpho-syntactic analyzers
// producing CoNLL-U annotated texts.
package analyzer

import (
	"context"

	"synsearch/corpus"
	"synsearch/document"
)

// Analyzer is a capability the rest of the application depends on.
// Concrete analyzers (an external UDPipe process, a test double, ...)
// can be swapped freely.
type Analyzer interface {

	// Analyze annotates the provided texts. The returned documents
	// are in the same order as the texts; their ArticleID is zero.
	Analyze(ctx context.Context, texts []string) ([]*document.Document, error)

	// Serialize stores the article's Annotation
	Serialize(article *corpus.Article) error

	// Deserialize loads a previously stored annotation of the article
	Deserialize(article *corpus.Article) (*document.Document, error)
}
